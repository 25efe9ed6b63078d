// Package app implements the application layer for wdabuild.
package app

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/wdabuild/internal/adapters/telemetry"
	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes one build with fully resolved settings.
type Runner interface {
	Run(ctx context.Context, settings domain.Settings, stdout io.Writer) (*domain.BuildRecord, error)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	runner       Runner
	renderer     ports.Renderer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger, runner Runner, renderer ports.Renderer) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		runner:       runner,
		renderer:     renderer,
	}
}

// BuildOptions carries the command line flags of a build.
// Zero values leave the settings file value in place.
type BuildOptions struct {
	ConfigPath string
	// ConfigRequired makes a missing settings file an error.
	ConfigRequired bool
	TeamID         string
	WDAVersion     string
	Verbose        bool
	StrictPatch    bool
	StagingRoot    string
}

// Build resolves the settings and runs the build, writing artifact paths to stdout.
func (a *App) Build(ctx context.Context, opts BuildOptions, stdout io.Writer) error {
	settings, err := a.configLoader.Load(opts.ConfigPath, opts.ConfigRequired)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	settings = opts.apply(settings)

	a.logger.SetVerbose(settings.Verbose)

	tp := setupOTel(a.renderer)
	defer func() {
		_ = tp.Shutdown(ctx)
	}()

	rec, err := a.runner.Run(ctx, settings, stdout)
	if err != nil {
		return err
	}

	a.logger.Debug(fmt.Sprintf("build %s delivered %d artifacts", rec.Fingerprint, len(rec.Artifacts)))
	return nil
}

func (o BuildOptions) apply(s domain.Settings) domain.Settings {
	if o.TeamID != "" {
		s.TeamID = o.TeamID
	}
	if o.WDAVersion != "" {
		s.WDAVersion = o.WDAVersion
	}
	if o.StagingRoot != "" {
		s.StagingRoot = o.StagingRoot
	}
	s.Verbose = s.Verbose || o.Verbose
	s.StrictPatch = s.StrictPatch || o.StrictPatch
	return s
}

// setupOTel installs a global provider whose spans are rendered as step progress.
func setupOTel(renderer ports.Renderer) *sdktrace.TracerProvider {
	tp := telemetry.NewTracerProvider(renderer)

	otel.SetTracerProvider(tp)
	return tp
}
