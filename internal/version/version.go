// Package version holds build metadata injected with -ldflags.
package version

import "strings"

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Short returns the version without a leading "v".
func Short() string {
	return strings.TrimPrefix(Version, "v")
}

// String is the long form printed by the binary at startup.
func String() string {
	return Version + " (" + Commit + ", " + BuildDate + ")"
}
