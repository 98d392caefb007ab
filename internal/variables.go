package internal

import (
	"fmt"
	"runtime"
	"strings"
)

// Name used for the binary, config directories, and log prefixes.
const Name = "relcut"

// String to indicate a local (non-release) build.
const defaultLocalBuild = "(local)"

var (
	version   = "" // Version number (e.g., "1.2.3"), set via linker flags.
	gitCommit = "" // Git commit hash (e.g., "a1b2c3d4"), set via linker flags.
)

// Returns the current version.
//
// If the version is not set, returns "(local)". A leading "v" or "V" prefix
// (e.g., "v1.0.0") is stripped.
func Version() string {
	v := strings.TrimSpace(version)
	if v == "" {
		return defaultLocalBuild
	}
	return strings.TrimPrefix(strings.ToLower(v), "v")
}

// Returns the git commit hash, or an empty string for local builds.
func GitCommit() string {
	return strings.TrimSpace(gitCommit)
}

// Returns a detailed version string.
//
// Local builds report "(local)". Release builds report a string formatted as
// "<version> <git-commit> [<arch>]".
func VersionString() string {
	if Version() == defaultLocalBuild {
		return defaultLocalBuild
	}
	return fmt.Sprintf("%s %s [%s]", Version(), GitCommit(), runtime.GOARCH)
}
