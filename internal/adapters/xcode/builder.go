package xcode

import (
	"context"

	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports"
)

var _ ports.NativeBuilder = (*Builder)(nil)

// Builder implements ports.NativeBuilder with xcodebuild.
type Builder struct {
	executor ports.Executor
}

// NewBuilder creates a new Builder.
func NewBuilder(executor ports.Executor) *Builder {
	return &Builder{executor: executor}
}

// Build runs xcodebuild in req.ProjectDir with automatic provisioning for req.TeamID.
func (b *Builder) Build(ctx context.Context, req ports.NativeBuildRequest) (domain.ProcessResult, error) {
	return b.executor.Run(ctx, domain.Command{
		Name: req.Tool,
		Args: BuildArgs(req),
		Dir:  req.ProjectDir,
		Env:  req.Env,
	})
}

// BuildArgs returns the xcodebuild argument list for req.
func BuildArgs(req ports.NativeBuildRequest) []string {
	return []string{
		"-project", req.Project,
		"-derivedDataPath", req.DerivedDataPath,
		"-allowProvisioningUpdates",
		"-scheme", req.Scheme,
		"-destination", req.Destination,
		"DEVELOPMENT_TEAM=" + req.TeamID,
	}
}
