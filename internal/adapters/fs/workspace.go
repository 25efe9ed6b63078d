package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace on the local filesystem.
//
// Errors keep the underlying *fs.PathError in their chain so callers can
// recover the errno.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// EnsureDir creates path and any missing parents.
func (w *Workspace) EnsureDir(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// ReadFile reads the file at path.
func (w *Workspace) ReadFile(path string) ([]byte, error) {
	//nolint:gosec // Path is built from the staging layout
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return data, nil
}

// WriteFile replaces the content of path, keeping its mode when it already exists.
func (w *Workspace) WriteFile(path string, data []byte) error {
	perm := iofs.FileMode(domain.FilePerm)
	info, err := os.Stat(path)
	switch {
	case err == nil:
		perm = info.Mode().Perm()
	case !errors.Is(err, iofs.ErrNotExist):
		return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}

// Move renames src to dst, replacing dst if it exists.
func (w *Workspace) Move(src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		err = zerr.Wrap(err, "failed to move file")
		err = zerr.With(err, "src", src)
		return zerr.With(err, "dst", dst)
	}
	return nil
}
