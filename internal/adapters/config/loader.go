// Package config provides the settings file loader for wdabuild.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file looked up in the working directory.
const DefaultFilename = ".wdabuild.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the settings file at path on top of domain.DefaultSettings.
func (l *Loader) Load(path string, required bool) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) && !required {
			l.logger.Debug("no settings file at " + path + ", using defaults")
			return settings, nil
		}
		return settings, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path))
	}

	var file Settingsfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return settings, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path))
	}

	l.logger.Debug("loaded settings from " + path)
	return apply(settings, &file), nil
}

func apply(s domain.Settings, f *Settingsfile) domain.Settings {
	setString(&s.TeamID, f.TeamID)
	setString(&s.WDAVersion, f.WDAVersion)
	setString(&s.StagingRoot, f.StagingRoot)
	setString(&s.Scheme, f.Scheme)
	setString(&s.Destination, f.Destination)
	setString(&s.DeveloperDir, f.DeveloperDir)
	setString(&s.Tools.NPM, f.Tools.NPM)
	setString(&s.Tools.Xcodebuild, f.Tools.Xcodebuild)
	setString(&s.Tools.Tar, f.Tools.Tar)
	s.Verbose = s.Verbose || f.Verbose
	s.StrictPatch = s.StrictPatch || f.StrictPatch

	if len(f.Env) > 0 {
		s.Env = make(map[string]string, len(f.Env))
		for k, v := range f.Env {
			s.Env[k] = v
		}
	}
	return s
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
