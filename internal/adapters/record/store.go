// Package record persists build records as JSON next to the staged artifacts.
package record

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildRecordStore = (*Store)(nil)

// Store implements ports.BuildRecordStore with one JSON file per staging directory.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Path returns the record file for a staging directory.
func Path(dir string) string {
	return filepath.Join(filepath.Clean(dir), domain.RecordFileName)
}

// Get reads the record of dir. A missing file yields nil, nil.
func (s *Store) Get(dir string) (*domain.BuildRecord, error) {
	path := Path(dir)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrRecordReadFailed, zerr.With(zerr.Wrap(err, "failed to read build record"), "path", path))
	}

	if len(data) == 0 {
		return nil, nil
	}

	var rec domain.BuildRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Join(domain.ErrRecordReadFailed, zerr.With(zerr.Wrap(err, "failed to unmarshal build record"), "path", path))
	}
	return &rec, nil
}

// Put replaces the record of dir.
func (s *Store) Put(dir string, rec domain.BuildRecord) error {
	path := Path(dir)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrRecordWriteFailed, zerr.Wrap(err, "failed to marshal build record"))
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrRecordWriteFailed, zerr.Wrap(err, "failed to create directory for build record"))
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrRecordWriteFailed, zerr.With(zerr.Wrap(err, "failed to write build record"), "path", path))
	}
	return nil
}
