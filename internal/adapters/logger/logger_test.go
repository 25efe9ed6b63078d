package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wdabuild/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewWithWriter(buf), buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	lg.Info("info message")
	lg.Warn("careful")
	lg.Error(errors.New("broken"))

	assert.Equal(t, "info message\n! careful\n✗ Error: broken\n", buf.String())
}

func TestLogger_SetVerbose(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetVerbose(true)
	lg.Debug("shown")
	lg.SetVerbose(false)
	lg.Debug("hidden")

	assert.Equal(t, "● shown\n", buf.String())
}

func TestLogger_SetOutput(t *testing.T) {
	lg, first := newTestLogger(t)
	lg.SetVerbose(true)

	second := new(bytes.Buffer)
	lg.SetOutput(second)
	lg.Debug("moved")

	assert.Empty(t, first.String())
	assert.Equal(t, "● moved\n", second.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestFormatError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, "Error: boom", logger.FormatError(errors.New("boom")))
	})

	t.Run("multiline plain error", func(t *testing.T) {
		got := logger.FormatError(errors.New("npm exited with code 1\nERR! 404"))
		assert.Equal(t, "Error: npm exited with code 1\n       ERR! 404", got)
	})

	t.Run("zerr chain", func(t *testing.T) {
		err := zerr.Wrap(errors.New("permission denied"), "failed to create staging directory")
		got := logger.FormatError(err)
		require.Contains(t, got, "Error: failed to create staging directory")
		assert.Contains(t, got, "Caused by:")
		assert.Contains(t, got, "→ permission denied")
	})
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := new(bytes.Buffer)

	log := slog.New(logger.NewPrettyHandler(buf, nil)).With("step", "fetch").WithGroup("npm")
	log.Info("done", "code", 0)

	assert.Equal(t, "done npm.step=fetch npm.code=0\n", buf.String())
}
