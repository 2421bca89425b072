package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// CachePath returns the default cache file location under datadir:
//
//	datadir/cache/txs.db
func CachePath(datadir string) string {
	return filepath.Join(datadir, "cache", "txs.db")
}

func ensureDir(path string) error {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}
