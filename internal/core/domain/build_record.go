package domain

import "time"

// BuildRecord summarizes a successful build. It is stored next to the staged artifacts.
type BuildRecord struct {
	Fingerprint string        `json:"fingerprint"`
	Identity    BuildIdentity `json:"identity"`
	BuiltAt     time.Time     `json:"built_at"`
	DerivedData string        `json:"derived_data"`
	Artifacts   []Artifact    `json:"artifacts"`
}
