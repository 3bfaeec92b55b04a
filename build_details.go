package jsonpathkit

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during build by GoReleaser.
	// For development builds, this will show "dev".
	version = "dev"

	// commit is set via ldflags during build by GoReleaser.
	commit = "unknown"

	// buildTime is set via ldflags during build by GoReleaser, RFC3339.
	buildTime = "unknown"
)

// Version returns the compiled version or "dev" if run from source.
func Version() string {
	return version
}

// Commit returns the git commit short hash the binary was built from, or
// "unknown" for development builds.
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown" for
// development builds.
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go toolchain version used to build the binary.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string to use for outbound requests.
func UserAgent() string {
	return fmt.Sprintf("jsonpathkit/%s", version)
}

// BuildInfo returns a multi-line summary of build metadata, as printed by
// the CLI's --version flag.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		version, commit, buildTime, GoVersion())
}
