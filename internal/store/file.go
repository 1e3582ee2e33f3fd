package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"bizfinder/internal/models"
)

// FileStore keeps the known-ID set in a local CSV file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the CSV file at path.
// The file is created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the set; a missing file is an empty set.
func (s *FileStore) Load(_ context.Context) (models.IDSet, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewIDSet(), nil
		}
		return nil, eris.Wrapf(err, "store: open %s", s.path)
	}
	defer f.Close() //nolint:errcheck

	return decodeIDs(f)
}

// Save rewrites the file with ids. The new content is written to a temporary
// file in the same directory and renamed over the old one.
func (s *FileStore) Save(_ context.Context, ids models.IDSet) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return eris.Wrapf(err, "store: create temp file in %s", dir)
	}
	tmpName := tmp.Name()

	if err := encodeIDs(tmp, ids); err != nil {
		tmp.Close()        //nolint:errcheck
		os.Remove(tmpName) //nolint:errcheck
		return eris.Wrap(err, "store: write ids")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return eris.Wrap(err, "store: close temp file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return eris.Wrapf(err, "store: replace %s", s.path)
	}
	return nil
}
