package ports

// Workspace defines the filesystem operations performed by a build.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// EnsureDir creates path and its parents. An existing directory is not an error.
	EnsureDir(path string) error
	// ReadFile reads the whole file.
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the file content.
	WriteFile(path string, data []byte) error
	// Move renames src to dst.
	Move(src, dst string) error
}
