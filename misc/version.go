// Package misc provides program identity: name, version and source revision.
package misc

import (
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags "-X rtdoc/misc.version=...".
var (
	version = ""
	hash    = ""
)

const appName = "rtdoc"

// GetAppName returns program name used for logs and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns program version, module version from build info when
// it was not set by the linker.
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return strings.TrimPrefix(bi.Main.Version, "v")
	}
	return "dev"
}

// GetGitHash returns source revision program was built from.
func GetGitHash() string {
	if hash != "" {
		return hash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
