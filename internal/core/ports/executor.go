// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/wdabuild/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the command to completion and captures its output.
	//
	// A command that exits with a non-zero status returns the captured result
	// together with an error wrapping *domain.ProcessError.
	Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error)
}
