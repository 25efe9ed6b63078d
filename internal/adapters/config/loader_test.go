package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wdabuild/internal/adapters/config"
	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_Full(t *testing.T) {
	path := writeSettings(t, `
team_id: J99FJA3665
wda_version: 4.13.1
verbose: true
strict_patch: true
staging_root: /Volumes/Build/WDABuilder
scheme: WebDriverAgentRunner_tvOS
destination: generic/platform=tvOS
developer_dir: /Applications/Xcode-15.2.app/Contents/Developer
tools:
  npm: /opt/homebrew/bin/npm
  tar: gtar
env:
  npm_config_registry: https://registry.example.com
`)

	settings, err := newLoader(t).Load(path, true)
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.TeamID = "J99FJA3665"
	want.WDAVersion = "4.13.1"
	want.Verbose = true
	want.StrictPatch = true
	want.StagingRoot = "/Volumes/Build/WDABuilder"
	want.Scheme = "WebDriverAgentRunner_tvOS"
	want.Destination = "generic/platform=tvOS"
	want.DeveloperDir = "/Applications/Xcode-15.2.app/Contents/Developer"
	want.Tools.NPM = "/opt/homebrew/bin/npm"
	want.Tools.Tar = "gtar"
	want.Env = map[string]string{"npm_config_registry": "https://registry.example.com"}

	assert.Equal(t, want, settings)
}

func TestLoader_Load_PartialKeepsDefaults(t *testing.T) {
	path := writeSettings(t, "team_id: J99FJA3665\n")

	settings, err := newLoader(t).Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "J99FJA3665", settings.TeamID)
	assert.Equal(t, domain.DefaultWDAVersion, settings.WDAVersion)
	assert.Equal(t, domain.DefaultScheme, settings.Scheme)
	assert.Equal(t, "xcodebuild", settings.Tools.Xcodebuild)
	assert.Nil(t, settings.Env)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := writeSettings(t, "")

	settings, err := newLoader(t).Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoader_Load_MissingOptional(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFilename)

	settings, err := newLoader(t).Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoader_Load_MissingRequired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")

	_, err := newLoader(t).Load(path, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigReadFailed))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoader_Load_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "team_id: [unterminated\n"},
		{name: "unknown key", content: "team: J99FJA3665\n"},
		{name: "wrong type", content: "verbose: maybe\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, tt.content)

			_, err := newLoader(t).Load(path, true)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
			assert.Equal(t, domain.ExitFatal, domain.ExitCode(err))
		})
	}
}
