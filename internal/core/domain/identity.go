// Package domain holds the core types of the WebDriverAgent builder.
package domain

import "strings"

const (
	// DefaultWDAVersion is the npm dist-tag used when no version is requested.
	DefaultWDAVersion = "latest"

	// AbsentToolchain stands in for an Xcode version that could not be detected.
	AbsentToolchain = "none"
)

// BuildIdentity is the tuple that determines a build fingerprint and its staging location.
type BuildIdentity struct {
	TeamID           string `json:"team_id"`
	WDAVersion       string `json:"wda_version"`
	ToolchainVersion string `json:"toolchain_version,omitempty"`
}

// Toolchain returns the detected toolchain version or AbsentToolchain.
func (id BuildIdentity) Toolchain() string {
	if id.ToolchainVersion == "" {
		return AbsentToolchain
	}
	return id.ToolchainVersion
}

// String renders the identity as "<team>_<wda>_<toolchain>".
func (id BuildIdentity) String() string {
	return strings.Join([]string{id.TeamID, id.WDAVersion, id.Toolchain()}, "_")
}
