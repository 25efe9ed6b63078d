// Package npm fetches packages with the npm package manager.
package npm

import (
	"context"

	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports"
)

var _ ports.PackageFetcher = (*Fetcher)(nil)

// Fetcher implements ports.PackageFetcher using npm.
type Fetcher struct {
	executor ports.Executor
}

// NewFetcher creates a new Fetcher.
func NewFetcher(executor ports.Executor) *Fetcher {
	return &Fetcher{executor: executor}
}

// Fetch initializes a package.json in req.Dir and installs req.Package@req.Version into it.
// The returned stdout covers both invocations.
func (f *Fetcher) Fetch(ctx context.Context, req ports.FetchRequest) (domain.ProcessResult, error) {
	initResult, err := f.executor.Run(ctx, domain.Command{
		Name: req.Tool,
		Args: []string{"init", "--yes", "--force"},
		Dir:  req.Dir,
		Env:  req.Env,
	})
	if err != nil {
		return initResult, err
	}

	result, err := f.executor.Run(ctx, domain.Command{
		Name: req.Tool,
		Args: []string{"i", req.Package + "@" + req.Version, "--save"},
		Dir:  req.Dir,
		Env:  req.Env,
	})
	result.Stdout = initResult.Stdout + result.Stdout
	return result, err
}
