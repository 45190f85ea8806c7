// Package externs persists per-module interface metadata in the output tree.
package externs

import (
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/swapnilraj/purescript-native/internal/adapters/codegen"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCacheSize bounds the number of metadata files kept in memory.
const DefaultCacheSize = 512

var _ ports.ExternsStore = (*Store)(nil)

type entry struct {
	modTime time.Time
	size    int64
	data    []byte
}

// Store implements ports.ExternsStore using one externs.json per module directory.
// Reads are served from an LRU cache as long as the file's mtime and size match.
type Store struct {
	layout domain.Layout
	cache  *lru.Cache[string, entry]
}

// NewStore creates a new Store for layout.
func NewStore(layout domain.Layout, size int) (*Store, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, entry](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create externs cache")
	}
	return &Store{layout: layout, cache: cache}, nil
}

// Path returns the metadata file of name.
func (s *Store) Path(name domain.ModuleName) string {
	return s.layout.Artifacts(name).Externs
}

// Read returns the persisted metadata of name.
func (s *Store) Read(name domain.ModuleName) ([]byte, error) {
	path := s.Path(name)

	info, err := os.Stat(path)
	if err != nil {
		s.cache.Remove(path)
		return nil, zerr.With(domain.CannotReadFile(path, err), "module", name.String())
	}

	if e, ok := s.cache.Get(path); ok && e.modTime.Equal(info.ModTime()) && e.size == info.Size() {
		return e.data, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		s.cache.Remove(path)
		return nil, zerr.With(domain.CannotReadFile(path, err), "module", name.String())
	}

	s.cache.Add(path, entry{modTime: info.ModTime(), size: info.Size(), data: data})
	return data, nil
}

// Write persists data verbatim and refreshes the cache.
func (s *Store) Write(name domain.ModuleName, data []byte) error {
	path := s.Path(name)
	if err := codegen.WriteFile(path, data); err != nil {
		s.cache.Remove(path)
		return err
	}

	// The file is written. If it cannot be stat'ed the cache stays cold and
	// the next Read reports the failure.
	info, err := os.Stat(path)
	if err != nil {
		s.cache.Remove(path)
		return nil
	}
	s.cache.Add(path, entry{modTime: info.ModTime(), size: info.Size(), data: append([]byte(nil), data...)})
	return nil
}
