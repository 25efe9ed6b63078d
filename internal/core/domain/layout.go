package domain

import (
	"path/filepath"
)

const (
	// StagingDirName is the directory created under the system temp dir for all builds.
	StagingDirName = "WDABuilder"
	// NodeModulesDirName is the npm install directory inside a staging directory.
	NodeModulesDirName = "node_modules"
	// PackageName is the npm package that ships the WebDriverAgent Xcode project.
	PackageName = "appium-webdriveragent"
	// ProjectName is the Xcode project inside the package.
	ProjectName = "WebDriverAgent.xcodeproj"
	// ProjectFileName is the project file patched before building.
	ProjectFileName = "project.pbxproj"
	// DerivedDataPrefix prefixes the derived data directory and its archive.
	DerivedDataPrefix = "WebDriverAgent"
	// RecordFileName is the build record written into a staging directory.
	RecordFileName = "build-info.json"
	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// StagingLayout describes every path used by one build inside its staging directory.
type StagingLayout struct {
	// Dir is <root>/<team>/<toolchain>/<wda version>.
	Dir            string
	NodeModulesDir string
	PackageDir     string
	ProjectFile    string
	DerivedDataDir string
}

// DefaultStagingRoot returns the staging root under the given temp directory.
func DefaultStagingRoot(tempDir string) string {
	return filepath.Join(tempDir, StagingDirName)
}

// DerivedDataName returns the derived data directory name for a fingerprint.
func DerivedDataName(fingerprint string) string {
	return DerivedDataPrefix + "-" + fingerprint
}

// NewStagingLayout computes the layout for an identity under root.
func NewStagingLayout(root string, id BuildIdentity, fingerprint string) StagingLayout {
	dir := filepath.Join(root, id.TeamID, id.Toolchain(), id.WDAVersion)
	nodeModules := filepath.Join(dir, NodeModulesDirName)
	pkg := filepath.Join(nodeModules, PackageName)

	return StagingLayout{
		Dir:            dir,
		NodeModulesDir: nodeModules,
		PackageDir:     pkg,
		ProjectFile:    filepath.Join(pkg, ProjectName, ProjectFileName),
		DerivedDataDir: filepath.Join(dir, DerivedDataName(fingerprint)),
	}
}
