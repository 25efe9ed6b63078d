// Package xcode drives the xcodebuild command line tool.
package xcode

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainDetector = (*Detector)(nil)

var versionPattern = regexp.MustCompile(`^Xcode ([0-9]+\.[0-9]+(\.[0-9]+)?)`)

// Detector implements ports.ToolchainDetector with `xcodebuild -version`.
type Detector struct {
	executor ports.Executor
}

// NewDetector creates a new Detector.
func NewDetector(executor ports.Executor) *Detector {
	return &Detector{executor: executor}
}

// DetectVersion returns the Xcode version, e.g. "15.2" or "14.3.1".
func (d *Detector) DetectVersion(ctx context.Context, tool string, env map[string]string) (string, error) {
	result, err := d.executor.Run(ctx, domain.Command{
		Name: tool,
		Args: []string{"-version"},
		Env:  env,
	})
	if err != nil {
		return "", errors.Join(domain.ErrToolchainDetectFailed, err)
	}

	version, ok := ParseVersion(result.Stdout)
	if !ok {
		detail := zerr.New(fmt.Sprintf("xcodebuild printed %q", strings.TrimSpace(result.Stdout)))
		return "", errors.Join(domain.ErrToolchainVersionUnparsable, zerr.With(detail, "output", result.Stdout))
	}
	return version, nil
}

// ParseVersion extracts the version from `xcodebuild -version` output.
func ParseVersion(output string) (string, bool) {
	matches := versionPattern.FindStringSubmatch(output)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}
