// Package shell provides the external command executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"sort"
	"strings"

	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
//
// Output is buffered in memory and returned once the command exits; it is
// never streamed, since callers inspect stdout to judge success.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes the command with the inherited environment plus cmd.Env.
func (e *Executor) Run(ctx context.Context, command domain.Command) (domain.ProcessResult, error) {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...) //nolint:gosec // arguments are built by adapters
	cmd.Dir = command.Dir
	cmd.Env = resolveEnvironment(os.Environ(), command.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if e.logger != nil {
		e.logger.Debug("running: " + command.String())
	}

	err := cmd.Run()
	result := domain.ProcessResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		result.ExitCode = -1
		return result, errors.Join(domain.ErrCommandStartFailed, err)
	}

	result.ExitCode = exitErr.ExitCode()
	procErr := &domain.ProcessError{
		Command:  command.String(),
		ExitCode: result.ExitCode,
		Stderr:   result.Stderr,
	}
	return result, zerr.With(zerr.Wrap(procErr, domain.ErrCommandFailed.Error()), "exit_code", result.ExitCode)
}

// resolveEnvironment merges overrides into the system environment.
// Later entries win; the result is sorted for reproducible invocations.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}
