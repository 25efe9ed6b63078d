package config

// Settingsfile represents the structure of the .wdabuild.yaml settings file.
type Settingsfile struct {
	TeamID       string            `yaml:"team_id"`
	WDAVersion   string            `yaml:"wda_version"`
	Verbose      bool              `yaml:"verbose"`
	StrictPatch  bool              `yaml:"strict_patch"`
	StagingRoot  string            `yaml:"staging_root"`
	Scheme       string            `yaml:"scheme"`
	Destination  string            `yaml:"destination"`
	DeveloperDir string            `yaml:"developer_dir"`
	Tools        ToolsDTO          `yaml:"tools"`
	Env          map[string]string `yaml:"env"`
}

// ToolsDTO overrides the executables invoked by a build.
type ToolsDTO struct {
	NPM        string `yaml:"npm"`
	Xcodebuild string `yaml:"xcodebuild"`
	Tar        string `yaml:"tar"`
}
