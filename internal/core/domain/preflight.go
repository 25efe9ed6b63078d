package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// SupportedPlatform is the only GOOS the builder runs on.
const SupportedPlatform = "darwin"

// Preflight is the result of the host checks performed before any side effect.
type Preflight struct {
	Platform string
	WorkDir  string
	// WorkDirErr is set when the working directory could not be resolved.
	WorkDirErr error
	Writable   bool
}

// PlatformErr returns nil when the host platform is supported.
// It ignores the working directory fields, which are only resolved on a supported host.
func (p Preflight) PlatformErr() error {
	if p.Platform != SupportedPlatform {
		return errors.Join(ErrUnsupportedPlatform,
			zerr.With(zerr.New("host platform is "+p.Platform), "platform", p.Platform))
	}
	return nil
}

// Err returns nil when every requirement is satisfied.
func (p Preflight) Err() error {
	if err := p.PlatformErr(); err != nil {
		return err
	}
	if p.WorkDirErr != nil {
		// The cause is flattened to text so an errno from getwd does not become the exit code.
		return errors.Join(ErrWorkingDirUnavailable,
			zerr.With(zerr.New(p.WorkDirErr.Error()), "reason", p.WorkDirErr.Error()))
	}
	if !p.Writable {
		return errors.Join(ErrWorkingDirNotWritable,
			zerr.With(zerr.New("no write access to "+p.WorkDir), "path", p.WorkDir))
	}
	return nil
}
