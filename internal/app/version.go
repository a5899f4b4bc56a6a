package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/bookstore-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs and health endpoints.
// Without ldflags the commit falls back to the VCS revision embedded by the toolchain.
func BuildVersion() string {
	return formatVersion(Version, resolveCommit(Commit, debug.ReadBuildInfo), BuildTime)
}

func formatVersion(version, commit, built string) string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func resolveCommit(commit string, read func() (*debug.BuildInfo, bool)) string {
	if commit != "unknown" && commit != "" {
		return commit
	}
	info, ok := read()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}
