package core

import (
	"strings"

	"android-provision/internal/types"
)

// basePackages is installed on every supported release.
var basePackages = []string{
	"bc", "bison", "build-essential", "ccache", "curl", "flex",
	"g++-multilib", "gcc-multilib", "git", "gnupg", "gperf", "imagemagick",
	"lib32readline-dev", "lib32z1-dev", "liblz4-tool", "libsdl1.2-dev",
	"libssl-dev", "libxml2", "libxml2-utils", "lzop", "pngcrush", "rsync",
	"schedtool", "squashfs-tools", "unzip", "xsltproc", "zip", "zlib1g-dev",
}

// androidPackages maps a release major to the additional android build
// set. 22 and 24 share one branch; releases without an entry fall through
// to defaultAndroidPackages.
var androidPackages = map[string][]string{
	"16": {"libncurses5-dev", "lib32ncurses5-dev", "libesd0-dev", "openjdk-8-jdk"},
	"18": {"libncurses5-dev", "lib32ncurses5-dev", "openjdk-8-jdk"},
	"20": {"libncurses5", "lib32ncurses5-dev", "python3", "openjdk-11-jdk"},
	"22": {"libncurses-dev", "lib32ncurses-dev", "python3", "python-is-python3", "openjdk-17-jdk"},
	"24": {"libncurses-dev", "lib32ncurses-dev", "python3", "python-is-python3", "openjdk-17-jdk"},
}

var defaultAndroidPackages = androidPackages["24"]

// BuildPackageSet derives the full install plan for a release. The result
// is a pure function of osVersion (and the optional manifest override):
// the same version always yields the same set. DefaultUsed reports that
// the release major was unrecognized and the modern default was applied.
func BuildPackageSet(osVersion string, manifest *types.PackageManifest) types.PackageSet {
	base := basePackages
	android := androidPackages
	fallback := defaultAndroidPackages
	if manifest != nil {
		if len(manifest.Base) > 0 {
			base = manifest.Base
		}
		if len(manifest.Android) > 0 {
			android = manifest.Android
		}
		if len(manifest.Default) > 0 {
			fallback = manifest.Default
		}
	}
	set, ok := android[releaseMajor(osVersion)]
	if !ok {
		set = fallback
	}
	return types.PackageSet{
		Base:        append([]string(nil), base...),
		Android:     append([]string(nil), set...),
		DefaultUsed: !ok,
	}
}

// releaseMajor returns the version component before the first dot.
func releaseMajor(osVersion string) string {
	trimmed := strings.TrimSpace(osVersion)
	if idx := strings.Index(trimmed, "."); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}
