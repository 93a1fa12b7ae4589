package version

import "fmt"

var (
	// Version is the semantic version of the build. Overridden via ldflags
	// on release builds.
	Version = "0.1.0"
	// Commit is the short git SHA of the build, or "none" locally.
	Commit = "none"
	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full renders every piece of build metadata on one line for CLI output
// and logs.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
