package domain

import (
	"path/filepath"
	"time"
)

// ArtifactDateLayout formats the archive date as YYYY-Mon-DD.
const ArtifactDateLayout = "2006-Jan-02"

// ArtifactKind names the content of an archive.
type ArtifactKind string

const (
	// ArtifactDerivedData is the archived xcodebuild derived data directory.
	ArtifactDerivedData ArtifactKind = DerivedDataPrefix
	// ArtifactProject is the archived, patched npm package.
	ArtifactProject ArtifactKind = PackageName
)

// Artifact is one archive produced by a build.
type Artifact struct {
	Kind ArtifactKind `json:"kind"`
	// Name is the archive file name, "<kind>-<fingerprint>_<date>.tgz".
	Name string `json:"name"`
	// SourceDir is the directory tar runs in.
	SourceDir string `json:"-"`
	// Entry is the path archived, relative to SourceDir.
	Entry      string `json:"-"`
	StagedPath string `json:"staged_path"`
	FinalPath  string `json:"final_path,omitempty"`
}

// ArtifactName returns "<kind>-<fingerprint>_<date>.tgz".
func ArtifactName(kind ArtifactKind, fingerprint string, date time.Time) string {
	return string(kind) + "-" + fingerprint + "_" + date.Format(ArtifactDateLayout) + ".tgz"
}

// PlanArtifacts returns the derived data and project archives for a layout, staged in layout.Dir.
func PlanArtifacts(layout StagingLayout, fingerprint string, date time.Time) []Artifact {
	derived := ArtifactName(ArtifactDerivedData, fingerprint, date)
	project := ArtifactName(ArtifactProject, fingerprint, date)

	return []Artifact{
		{
			Kind:       ArtifactDerivedData,
			Name:       derived,
			SourceDir:  layout.Dir,
			Entry:      DerivedDataName(fingerprint),
			StagedPath: filepath.Join(layout.Dir, derived),
		},
		{
			Kind:       ArtifactProject,
			Name:       project,
			SourceDir:  layout.NodeModulesDir,
			Entry:      PackageName,
			StagedPath: filepath.Join(layout.Dir, project),
		},
	}
}
