// Package orchestrator runs the WebDriverAgent build as a sequence of steps.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Step names, in execution order.
const (
	StepPreflight = "preflight"
	StepIdentity  = "identity"
	StepStage     = "stage"
	StepFetch     = "fetch"
	StepPatch     = "patch"
	StepBuild     = "build"
	StepArchive   = "archive"
	StepRelocate  = "relocate"
)

// Orchestrator builds WebDriverAgent and delivers its archives to the working directory.
type Orchestrator struct {
	host      ports.Host
	detector  ports.ToolchainDetector
	hasher    ports.Hasher
	workspace ports.Workspace
	fetcher   ports.PackageFetcher
	builder   ports.NativeBuilder
	archiver  ports.Archiver
	records   ports.BuildRecordStore
	tracer    ports.Tracer
	logger    ports.Logger
	now       func() time.Time
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock replaces time.Now as the source of the artifact date.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// New creates a new Orchestrator with the given dependencies.
func New(
	host ports.Host,
	detector ports.ToolchainDetector,
	hasher ports.Hasher,
	workspace ports.Workspace,
	fetcher ports.PackageFetcher,
	builder ports.NativeBuilder,
	archiver ports.Archiver,
	records ports.BuildRecordStore,
	tracer ports.Tracer,
	logger ports.Logger,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		host:      host,
		detector:  detector,
		hasher:    hasher,
		workspace: workspace,
		fetcher:   fetcher,
		builder:   builder,
		archiver:  archiver,
		records:   records,
		tracer:    tracer,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// run holds the state shared by the steps of one build.
type run struct {
	o        *Orchestrator
	settings domain.Settings
	env      map[string]string
	stdout   io.Writer
	date     time.Time

	workDir     string
	identity    domain.BuildIdentity
	fingerprint string
	layout      domain.StagingLayout
	artifacts   []domain.Artifact
}

// Run executes every step in order and stops at the first failure.
// The final artifact paths, and tool output when verbose, are written to stdout.
// Staging is never cleaned up, whatever the outcome.
func (o *Orchestrator) Run(ctx context.Context, settings domain.Settings, stdout io.Writer) (*domain.BuildRecord, error) {
	if settings.TeamID == "" {
		return nil, domain.ErrMissingTeamID
	}

	r := &run{
		o:        o,
		settings: settings,
		env:      settings.ProcessEnv(),
		stdout:   stdout,
		date:     o.now(),
	}

	steps := []struct {
		name string
		fn   func(ctx context.Context, span ports.Span) error
	}{
		{StepPreflight, r.preflight},
		{StepIdentity, r.deriveIdentity},
		{StepStage, r.stage},
		{StepFetch, r.fetch},
		{StepPatch, r.patch},
		{StepBuild, r.build},
		{StepArchive, r.archive},
		{StepRelocate, r.relocate},
	}

	for _, step := range steps {
		if err := o.step(ctx, step.name, step.fn); err != nil {
			return nil, err
		}
	}

	return r.record(), nil
}

func (o *Orchestrator) step(ctx context.Context, name string, fn func(context.Context, ports.Span) error) error {
	ctx, span := o.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (r *run) preflight(_ context.Context, span ports.Span) error {
	pf := domain.Preflight{Platform: r.o.host.Platform()}
	span.SetAttribute("wdabuild.platform", pf.Platform)
	if err := pf.PlatformErr(); err != nil {
		return err
	}

	pf.WorkDir, pf.WorkDirErr = r.o.host.WorkingDir()
	if pf.WorkDirErr == nil {
		pf.Writable = r.o.host.IsWritable(pf.WorkDir)
	}
	if err := pf.Err(); err != nil {
		return err
	}

	r.workDir = pf.WorkDir
	return nil
}

func (r *run) deriveIdentity(ctx context.Context, span ports.Span) error {
	version, err := r.o.detector.DetectVersion(ctx, r.settings.Tools.Xcodebuild, r.env)
	if err != nil {
		r.o.logger.Warn("could not detect Xcode version, building without it: " + firstLine(err.Error()))
		version = ""
	}

	r.identity = domain.BuildIdentity{
		TeamID:           r.settings.TeamID,
		WDAVersion:       r.settings.WDAVersion,
		ToolchainVersion: version,
	}
	r.fingerprint = r.o.hasher.Fingerprint(r.identity)

	span.SetAttribute("wdabuild.identity", r.identity.String())
	span.SetAttribute("wdabuild.fingerprint", r.fingerprint)
	r.o.logger.Debug(fmt.Sprintf("build %s has fingerprint %s", r.identity, r.fingerprint))
	return nil
}

func (r *run) stage(_ context.Context, span ports.Span) error {
	root := r.settings.StagingRoot
	if root == "" {
		root = domain.DefaultStagingRoot(r.o.host.TempDir())
	}
	r.layout = domain.NewStagingLayout(root, r.identity, r.fingerprint)
	span.SetAttribute("wdabuild.staging_dir", r.layout.Dir)

	if err := r.o.workspace.EnsureDir(r.layout.Dir); err != nil {
		return errors.Join(domain.ErrStagingCreateFailed, err)
	}

	prev, err := r.o.records.Get(r.layout.Dir)
	switch {
	case err != nil:
		r.o.logger.Debug("ignoring unreadable build record: " + firstLine(err.Error()))
	case prev != nil:
		r.o.logger.Debug("reusing staging directory last built at " + prev.BuiltAt.Format(time.RFC3339))
	}
	return nil
}

func (r *run) fetch(ctx context.Context, _ ports.Span) error {
	res, err := r.o.fetcher.Fetch(ctx, ports.FetchRequest{
		Tool:    r.settings.Tools.NPM,
		Dir:     r.layout.Dir,
		Package: domain.PackageName,
		Version: r.settings.WDAVersion,
		Env:     r.env,
	})
	if err != nil {
		return errors.Join(domain.ErrFetchFailed, err)
	}
	r.echo(res.Stdout)
	return nil
}

func (r *run) patch(_ context.Context, span ports.Span) error {
	data, err := r.o.workspace.ReadFile(r.layout.ProjectFile)
	if err != nil {
		return errors.Join(domain.ErrPatchReadFailed, err)
	}

	patched, report := domain.PatchProject(string(data), r.settings.TeamID)
	span.SetAttribute("wdabuild.patch.provisioning", report.Provisioning)
	span.SetAttribute("wdabuild.patch.team", report.Team)

	if !report.Complete() {
		if r.settings.StrictPatch {
			detail := zerr.New(fmt.Sprintf("replaced %d provisioning and %d team tokens", report.Provisioning, report.Team))
			detail = zerr.With(detail, "provisioning", report.Provisioning)
			return errors.Join(domain.ErrPatchTokenMissing, zerr.With(detail, "team", report.Team))
		}
		r.o.logger.Warn(fmt.Sprintf("project file was only partially patched (provisioning: %d, team: %d)",
			report.Provisioning, report.Team))
	}

	if err := r.o.workspace.WriteFile(r.layout.ProjectFile, []byte(patched)); err != nil {
		return errors.Join(domain.ErrPatchWriteFailed, err)
	}
	return nil
}

func (r *run) build(ctx context.Context, _ ports.Span) error {
	if err := r.o.workspace.EnsureDir(r.layout.DerivedDataDir); err != nil {
		return errors.Join(domain.ErrDerivedDataCreateFailed, err)
	}

	res, err := r.o.builder.Build(ctx, ports.NativeBuildRequest{
		Tool:            r.settings.Tools.Xcodebuild,
		ProjectDir:      r.layout.PackageDir,
		Project:         domain.ProjectName,
		Scheme:          r.settings.Scheme,
		Destination:     r.settings.Destination,
		DerivedDataPath: r.layout.DerivedDataDir,
		TeamID:          r.settings.TeamID,
		Env:             r.env,
	})
	if err != nil {
		return errors.Join(domain.ErrNativeBuildFailed, err)
	}
	r.echo(res.Stdout)

	if !strings.Contains(res.Stdout, domain.BuildSucceededMarker) {
		return domain.ErrBuildMarkerMissing
	}
	return nil
}

func (r *run) archive(ctx context.Context, _ ports.Span) error {
	r.artifacts = domain.PlanArtifacts(r.layout, r.fingerprint, r.date)

	for _, a := range r.artifacts {
		r.o.logger.Debug("archiving " + a.Name)
		_, err := r.o.archiver.Archive(ctx, ports.ArchiveRequest{
			Tool:   r.settings.Tools.Tar,
			Dir:    a.SourceDir,
			Entry:  a.Entry,
			Output: a.StagedPath,
			Env:    r.env,
		})
		if err != nil {
			return errors.Join(domain.ErrArchiveFailed, err)
		}
	}
	return nil
}

func (r *run) relocate(_ context.Context, _ ports.Span) error {
	for i := range r.artifacts {
		a := &r.artifacts[i]
		final := filepath.Join(r.workDir, a.Name)
		if err := r.o.workspace.Move(a.StagedPath, final); err != nil {
			return errors.Join(domain.ErrRelocateFailed, err)
		}
		a.FinalPath = final
		_, _ = fmt.Fprintln(r.stdout, final)
	}
	return nil
}

func (r *run) record() *domain.BuildRecord {
	rec := domain.BuildRecord{
		Fingerprint: r.fingerprint,
		Identity:    r.identity,
		BuiltAt:     r.date,
		DerivedData: r.layout.DerivedDataDir,
		Artifacts:   r.artifacts,
	}
	if err := r.o.records.Put(r.layout.Dir, rec); err != nil {
		r.o.logger.Warn("could not write build record: " + firstLine(err.Error()))
	}
	return &rec
}

func (r *run) echo(out string) {
	if r.settings.Verbose && out != "" {
		_, _ = io.WriteString(r.stdout, out)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
