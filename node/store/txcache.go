// Package store persists raw daemon payloads so repeated audits of the same
// transactions do not need the network.
package store

import (
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketTxHex = []byte("tx_hex_by_hash")

// TxCache maps a transaction id to the hex blob the daemon returned for it.
type TxCache struct {
	path string
	db   *bolt.DB
}

func Open(path string) (*TxCache, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("cache path required")
	}
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	bdb, err := bolt.Open(path, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("open bbolt: %w", err)
	}
	if err := bdb.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketTxHex); err != nil {
			return fmt.Errorf("create bucket %s: %w", string(bucketTxHex), err)
		}
		return nil
	}); err != nil {
		_ = bdb.Close()
		return nil, err
	}
	return &TxCache{path: path, db: bdb}, nil
}

func (c *TxCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *TxCache) Path() string { return c.path }

// Get returns the cached hex for hash. ok is false when nothing is stored.
func (c *TxCache) Get(hash string) (string, bool, error) {
	key, err := cacheKey(hash)
	if err != nil {
		return "", false, err
	}
	var out []byte
	err = c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketTxHex).Get(key)
		if v == nil {
			return nil
		}
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return "", false, err
	}
	if out == nil {
		return "", false, nil
	}
	return string(out), true, nil
}

func (c *TxCache) Put(hash string, txHex string) error {
	key, err := cacheKey(hash)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTxHex).Put(key, []byte(txHex))
	})
}

// Keys are the raw 32-byte ids so differently-cased hex maps to one entry.
func cacheKey(hash string) ([]byte, error) {
	b, err := hex.DecodeString(hash)
	if err != nil || len(b) != 32 {
		return nil, fmt.Errorf("cache: invalid tx hash %q", hash)
	}
	return b, nil
}
