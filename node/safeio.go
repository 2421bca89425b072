package node

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// maxTxIDFileBytes bounds a -txs-file list. One id is 64 hex chars plus a
// newline, so this allows well over ten thousand ids.
const maxTxIDFileBytes = 1 << 20

// readTxIDFile reads path through an fs.FS rooted at its directory and
// refuses files over maxTxIDFileBytes.
func readTxIDFile(path string) ([]byte, error) {
	return readBoundedFile(os.DirFS(filepath.Dir(path)), filepath.Base(path), maxTxIDFileBytes)
}

func readBoundedFile(fsys fs.FS, name string, limit int64) ([]byte, error) {
	if name == "." || !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid file name: %q", name)
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", name)
	}
	if info.Size() > limit {
		return nil, fmt.Errorf("%s is %d bytes, limit %d", name, info.Size(), limit)
	}
	b, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("%s exceeds %d bytes", name, limit)
	}
	return b, nil
}
