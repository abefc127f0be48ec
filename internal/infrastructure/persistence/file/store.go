// Package file provides a file-backed key-value store: one JSON blob per
// key under a data directory. Writes go through a temp file and rename so a
// failed save never corrupts the previously stored value.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/ports/outbound"
)

// Store implements outbound.KeyValueStore on the local filesystem.
type Store struct {
	dir    string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewStore creates the data directory if needed and returns a store over it.
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir, logger: logger.Named("file-store")}, nil
}

// Get reads the blob stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, outbound.ErrKeyNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// Put atomically replaces the blob stored under key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("stage %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("stage %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("stage %s: %w", key, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit %s: %w", key, err)
	}
	return nil
}

// Delete removes the blob stored under key. Missing keys are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Ping reports whether the data directory is usable.
func (s *Store) Ping(ctx context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}

// path maps a key to a file name; key separators become dashes so storage
// keys like "mealforge:meal-plans" stay one flat file each.
func (s *Store) path(key string) string {
	name := strings.NewReplacer(":", "-", "/", "-").Replace(key)
	return filepath.Join(s.dir, name+".json")
}
