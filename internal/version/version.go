// Package version reports how the chartkit binary was built.
//
// Release builds set the variables below with -ldflags, for example
//
//	-X github.com/jmylchreest/chartkit/internal/version.Version=1.2.0
//	-X github.com/jmylchreest/chartkit/internal/version.Commit=$(git rev-parse HEAD)
//	-X github.com/jmylchreest/chartkit/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)
package version

import (
	"fmt"
	"runtime"
)

// unset marks build metadata that was not injected.
const unset = "unknown"

// shortCommitLen is how much of the commit hash String prints.
const shortCommitLen = 8

// Build metadata. Development builds keep the defaults.
var (
	Version   = "dev"
	Commit    = unset
	Date      = unset
	GoVersion = runtime.Version()
)

// Info is the build metadata of the running binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// GetInfo returns the build metadata.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the build metadata for `chartkit version`. Commit and date
// are only shown when both were injected.
func String() string {
	info := GetInfo()
	if info.Commit == unset || info.Date == unset {
		return fmt.Sprintf("chartkit version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("chartkit version %s (commit: %s, built: %s, %s, %s)",
		info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
}

// Short returns just the version, for --version.
func Short() string {
	return Version
}

func shortCommit(commit string) string {
	if len(commit) > shortCommitLen {
		return commit[:shortCommitLen]
	}
	return commit
}
