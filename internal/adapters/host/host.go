// Package host reports facts about the machine the builder runs on.
package host

import (
	"os"
	"runtime"

	"go.trai.ch/wdabuild/internal/core/ports"
)

var _ ports.Host = (*Host)(nil)

// Host implements ports.Host for the current process.
type Host struct{}

// New creates a new Host.
func New() *Host {
	return &Host{}
}

// Platform returns runtime.GOOS.
func (h *Host) Platform() string {
	return runtime.GOOS
}

// WorkingDir returns the current working directory.
func (h *Host) WorkingDir() (string, error) {
	return os.Getwd()
}

// TempDir returns the system temporary directory.
func (h *Host) TempDir() string {
	return os.TempDir()
}

// IsWritable reports whether the current user may create entries in dir.
func (h *Host) IsWritable(dir string) bool {
	return writable(dir)
}
