// Package tar creates compressed tarballs with the system tar tool.
package tar

import (
	"context"

	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports"
)

var _ ports.Archiver = (*Archiver)(nil)

// Archiver implements ports.Archiver using `tar -czf`.
type Archiver struct {
	executor ports.Executor
}

// NewArchiver creates a new Archiver.
func NewArchiver(executor ports.Executor) *Archiver {
	return &Archiver{executor: executor}
}

// Archive writes req.Entry, relative to req.Dir, into the gzip tarball req.Output.
func (a *Archiver) Archive(ctx context.Context, req ports.ArchiveRequest) (domain.ProcessResult, error) {
	return a.executor.Run(ctx, domain.Command{
		Name: req.Tool,
		Args: []string{"-czf", req.Output, req.Entry},
		Dir:  req.Dir,
		Env:  req.Env,
	})
}
