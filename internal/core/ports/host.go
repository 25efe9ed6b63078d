package ports

// Host describes the machine the builder runs on.
//
//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Host interface {
	// Platform returns the operating system name, matching runtime.GOOS.
	Platform() string
	WorkingDir() (string, error)
	TempDir() string
	// IsWritable reports whether the current user may create files in dir.
	IsWritable(dir string) bool
}
