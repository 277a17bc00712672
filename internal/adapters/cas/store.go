// Package cas implements a content addressable snapshot store for extracted styles.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore using one JSON file per stylefile.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore creates a new Store using the default directory.
func NewStore() (*Store, error) {
	return newStoreWithDir(domain.DefaultStorePath())
}

// NewStoreWithDir creates a new Store rooted at dir.
func NewStoreWithDir(dir string) (*Store, error) {
	return newStoreWithDir(dir)
}

func newStoreWithDir(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "dir", dir)
	}
	return &Store{dir: filepath.Clean(dir)}, nil
}

// Get retrieves the snapshot for a given stylefile path.
// It returns nil, nil if the snapshot is not found.
func (s *Store) Get(stylefile string) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.path(stylefile)
	//nolint:gosec // Path is derived from a hash of the stylefile path
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}
	return &snap, nil
}

// Put stores the snapshot for a given stylefile path.
func (s *Store) Put(stylefile string, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	path := s.path(stylefile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}

// path maps a stylefile to its snapshot file.
func (s *Store) path(stylefile string) string {
	key := strconv.FormatUint(xxhash.Sum64String(filepath.Clean(stylefile)), 16)
	return filepath.Join(s.dir, key+".json")
}
