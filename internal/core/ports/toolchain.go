package ports

import (
	"context"

	"go.trai.ch/wdabuild/internal/core/domain"
)

//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks

// FetchRequest describes a package manager install into a directory.
type FetchRequest struct {
	Tool    string
	Dir     string
	Package string
	Version string
	Env     map[string]string
}

// PackageFetcher installs a package with the package manager.
type PackageFetcher interface {
	Fetch(ctx context.Context, req FetchRequest) (domain.ProcessResult, error)
}

// NativeBuildRequest describes one xcodebuild invocation.
type NativeBuildRequest struct {
	Tool            string
	ProjectDir      string
	Project         string
	Scheme          string
	Destination     string
	DerivedDataPath string
	TeamID          string
	Env             map[string]string
}

// NativeBuilder runs the native build tool.
//
// Success of the returned result is judged by the caller from its output.
type NativeBuilder interface {
	Build(ctx context.Context, req NativeBuildRequest) (domain.ProcessResult, error)
}

// ArchiveRequest describes a compressed tarball of Entry taken from Dir.
type ArchiveRequest struct {
	Tool   string
	Dir    string
	Entry  string
	Output string
	Env    map[string]string
}

// Archiver creates compressed archives.
type Archiver interface {
	Archive(ctx context.Context, req ArchiveRequest) (domain.ProcessResult, error)
}

// ToolchainDetector reports the installed native toolchain version.
type ToolchainDetector interface {
	// DetectVersion returns the version string, e.g. "15.2".
	DetectVersion(ctx context.Context, tool string, env map[string]string) (string, error)
}
