package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.trai.ch/wdabuild/internal/app"
	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type runnerFunc func(ctx context.Context, settings domain.Settings, stdout io.Writer) (*domain.BuildRecord, error)

func (f runnerFunc) Run(ctx context.Context, settings domain.Settings, stdout io.Writer) (*domain.BuildRecord, error) {
	return f(ctx, settings, stdout)
}

func TestApp_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	fromFile := domain.DefaultSettings()
	fromFile.TeamID = "FILETEAM01"
	fromFile.WDAVersion = "4.10.0"
	fromFile.DeveloperDir = "/Applications/Xcode-15.2.app/Contents/Developer"

	mockLoader.EXPECT().Load(".wdabuild.yaml", false).Return(fromFile, nil)
	mockLogger.EXPECT().SetVerbose(true)
	mockLogger.EXPECT().Debug(gomock.Any())
	mockRenderer.EXPECT().OnStepStart(gomock.Any(), "fetch", gomock.Any())
	mockRenderer.EXPECT().OnStepComplete(gomock.Any(), gomock.Any(), nil)

	var got domain.Settings
	runner := runnerFunc(func(ctx context.Context, s domain.Settings, stdout io.Writer) (*domain.BuildRecord, error) {
		got = s
		_, span := otel.Tracer("test").Start(ctx, "fetch")
		span.End()
		_, _ = io.WriteString(stdout, "/work/artifact.tgz\n")
		return &domain.BuildRecord{Fingerprint: "0123456789abcdef"}, nil
	})

	a := app.New(mockLoader, mockLogger, runner, mockRenderer)

	var stdout bytes.Buffer
	err := a.Build(context.Background(), app.BuildOptions{
		ConfigPath:  ".wdabuild.yaml",
		TeamID:      "J99FJA3665",
		Verbose:     true,
		StagingRoot: "/Volumes/Build",
	}, &stdout)
	require.NoError(t, err)

	assert.Equal(t, "J99FJA3665", got.TeamID, "flag overrides file")
	assert.Equal(t, "4.10.0", got.WDAVersion, "file value kept when flag unset")
	assert.Equal(t, "/Volumes/Build", got.StagingRoot)
	assert.Equal(t, fromFile.DeveloperDir, got.DeveloperDir)
	assert.True(t, got.Verbose)
	assert.False(t, got.StrictPatch)
	assert.Equal(t, "/work/artifact.tgz\n", stdout.String())
}

func TestApp_Build_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	mockLoader.EXPECT().Load("custom.yaml", true).
		Return(domain.Settings{}, errors.Join(domain.ErrConfigParseFailed, errors.New("yaml: line 1")))

	runner := runnerFunc(func(context.Context, domain.Settings, io.Writer) (*domain.BuildRecord, error) {
		t.Fatal("runner must not be called")
		return nil, nil
	})

	a := app.New(mockLoader, mockLogger, runner, mockRenderer)
	err := a.Build(context.Background(), app.BuildOptions{ConfigPath: "custom.yaml", ConfigRequired: true}, io.Discard)
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	assert.Equal(t, domain.ExitFatal, domain.ExitCode(err))
}

func TestApp_Build_RunnerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	mockLoader.EXPECT().Load(gomock.Any(), false).Return(domain.DefaultSettings(), nil)
	mockLogger.EXPECT().SetVerbose(false)

	buildErr := errors.Join(domain.ErrNativeBuildFailed, &domain.ProcessError{Command: "xcodebuild", ExitCode: 65})
	runner := runnerFunc(func(_ context.Context, s domain.Settings, _ io.Writer) (*domain.BuildRecord, error) {
		assert.True(t, s.StrictPatch)
		assert.Equal(t, domain.DefaultWDAVersion, s.WDAVersion)
		return nil, buildErr
	})

	a := app.New(mockLoader, mockLogger, runner, mockRenderer)
	err := a.Build(context.Background(), app.BuildOptions{ConfigPath: ".wdabuild.yaml", TeamID: "J99FJA3665", StrictPatch: true}, io.Discard)
	require.ErrorIs(t, err, domain.ErrNativeBuildFailed)
	assert.Equal(t, 65, domain.ExitCode(err))
}
