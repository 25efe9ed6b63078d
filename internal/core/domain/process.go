package domain

import (
	"fmt"
	"strings"
)

// Command is an external program invocation with a structured argument list.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env holds overrides applied on top of the inherited environment.
	Env map[string]string
}

// String renders the command line for logs. It is never passed to a shell.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// ProcessResult is the captured outcome of a finished command.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ProcessError reports a command that ran and exited with a non-zero status.
type ProcessError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\n" + stderr
	}
	return msg
}
