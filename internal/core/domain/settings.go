package domain

const (
	// DefaultScheme is the xcodebuild scheme that produces the test runner.
	DefaultScheme = "WebDriverAgentRunner"
	// DefaultDestination targets any physical iOS device.
	DefaultDestination = "generic/platform=iOS"
	// BuildSucceededMarker is printed by xcodebuild after a successful build.
	BuildSucceededMarker = "** BUILD SUCCEEDED **"
	// DeveloperDirEnv selects the Xcode installation used by xcodebuild.
	DeveloperDirEnv = "DEVELOPER_DIR"
)

// Toolset names the executables invoked by a build.
type Toolset struct {
	NPM        string
	Xcodebuild string
	Tar        string
}

// Settings is the fully resolved input of a build.
type Settings struct {
	TeamID      string
	WDAVersion  string
	Verbose     bool
	StrictPatch bool
	// StagingRoot overrides <tmp>/WDABuilder when set.
	StagingRoot string
	Scheme      string
	Destination string
	// DeveloperDir, when set, is exported as DEVELOPER_DIR to xcodebuild.
	DeveloperDir string
	Tools        Toolset
	// Env is applied to every child process.
	Env map[string]string
}

// DefaultSettings returns the settings used when neither flags nor config override them.
func DefaultSettings() Settings {
	return Settings{
		WDAVersion:  DefaultWDAVersion,
		Scheme:      DefaultScheme,
		Destination: DefaultDestination,
		Tools: Toolset{
			NPM:        "npm",
			Xcodebuild: "xcodebuild",
			Tar:        "tar",
		},
	}
}

// ProcessEnv returns the environment overrides for child processes.
func (s Settings) ProcessEnv() map[string]string {
	env := make(map[string]string, len(s.Env)+1)
	for k, v := range s.Env {
		env[k] = v
	}
	if s.DeveloperDir != "" {
		env[DeveloperDirEnv] = s.DeveloperDir
	}
	return env
}
