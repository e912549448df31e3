package expense

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Store persists a Collection into a single JSON file.
//
// It is not safe for concurrent use by several processes: two invocations
// racing a Load then Save lose one of the updates.
type Store struct {
	path string
	log  *slog.Logger
}

// NewStore returns a Store backed by the file at path. The file does not need to exist.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		log:  slog.Default().With("component", "store", "path", path),
	}
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }

// Load reads the whole collection. A missing file is an empty collection.
func (s *Store) Load() (Collection, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("expenses file does not exist, starting with an empty collection")
		return Collection{}, nil
	}
	if err != nil {
		return nil, &StorageReadError{Path: s.path, Err: err}
	}

	c, err := DecodeCollection(bytes.NewReader(data))
	if err != nil {
		return nil, &StorageReadError{Path: s.path, Err: err}
	}
	if err := Validate(c); err != nil {
		return nil, &StorageReadError{Path: s.path, Err: err}
	}
	s.log.Debug("loaded expenses", "count", len(c))
	return c, nil
}

// Save replaces the file content with c. It writes a temporary file in the
// same directory and renames it, so readers never observe a partial file.
func (s *Store) Save(c Collection) (err error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageWriteError{Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &StorageWriteError{Path: s.path, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := EncodeCollection(tmp, c); err != nil {
		return &StorageWriteError{Path: s.path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &StorageWriteError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageWriteError{Path: s.path, Err: err}
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return &StorageWriteError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return &StorageWriteError{Path: s.path, Err: err}
	}
	s.log.Debug("saved expenses", "count", len(c))
	return nil
}
