package domain

import (
	"errors"
	"syscall"
)

const (
	// ExitSuccess is returned when both artifacts were delivered.
	ExitSuccess = 0
	// ExitFatal is the generic failure code.
	ExitFatal = 13
)

// ExitCode maps an error to the process exit status.
//
// A failed external command propagates its own exit code and a failed
// filesystem operation propagates its errno. Anything else is ExitFatal.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var procErr *ProcessError
	if errors.As(err, &procErr) && procErr.ExitCode > 0 {
		return procErr.ExitCode
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}

	return ExitFatal
}
