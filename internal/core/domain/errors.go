package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedPlatform is returned when the host is not running macOS.
	ErrUnsupportedPlatform = zerr.New("unsupported platform, macOS with Xcode is required")

	// ErrWorkingDirUnavailable is returned when the current working directory cannot be determined.
	ErrWorkingDirUnavailable = zerr.New("failed to determine current working directory")

	// ErrWorkingDirNotWritable is returned when the current working directory is not writable.
	ErrWorkingDirNotWritable = zerr.New("current working directory is not writable")

	// ErrMissingTeamID is returned when no development team id was supplied.
	ErrMissingTeamID = zerr.New("development team id is required")

	// ErrToolchainDetectFailed is returned when the Xcode version cannot be detected.
	ErrToolchainDetectFailed = zerr.New("failed to detect Xcode version")

	// ErrToolchainVersionUnparsable is returned when xcodebuild output carries no version string.
	ErrToolchainVersionUnparsable = zerr.New("unrecognized xcodebuild version output")

	// ErrStagingCreateFailed is returned when the staging directory cannot be created.
	ErrStagingCreateFailed = zerr.New("failed to create staging directory")

	// ErrFetchFailed is returned when the package manager fails to fetch WebDriverAgent.
	ErrFetchFailed = zerr.New("failed to fetch appium-webdriveragent")

	// ErrPatchReadFailed is returned when the project file cannot be read.
	ErrPatchReadFailed = zerr.New("failed to read project file")

	// ErrPatchWriteFailed is returned when the patched project file cannot be written.
	ErrPatchWriteFailed = zerr.New("failed to write project file")

	// ErrPatchTokenMissing is returned in strict mode when a substitution token is absent.
	ErrPatchTokenMissing = zerr.New("project file does not contain the expected signing settings")

	// ErrDerivedDataCreateFailed is returned when the derived data directory cannot be created.
	ErrDerivedDataCreateFailed = zerr.New("failed to create derived data directory")

	// ErrNativeBuildFailed is returned when xcodebuild exits with a non-zero status.
	ErrNativeBuildFailed = zerr.New("xcodebuild failed")

	// ErrBuildMarkerMissing is returned when xcodebuild output lacks the success marker.
	ErrBuildMarkerMissing = zerr.New("failed to make a build, unsuccessful build occurred")

	// ErrArchiveFailed is returned when an artifact archive cannot be created.
	ErrArchiveFailed = zerr.New("failed to archive artifact")

	// ErrRelocateFailed is returned when an archive cannot be moved into the working directory.
	ErrRelocateFailed = zerr.New("failed to move artifact")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandStartFailed is returned when an external command cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrRecordWriteFailed is returned when the build record cannot be persisted.
	ErrRecordWriteFailed = zerr.New("failed to write build record")

	// ErrRecordReadFailed is returned when the build record cannot be read.
	ErrRecordReadFailed = zerr.New("failed to read build record")
)
