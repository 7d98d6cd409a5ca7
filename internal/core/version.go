package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"
)

// LegacyPythonThreshold is the newest release that still needs the legacy
// Python 2 interpreter installed. The comparison is boundary-inclusive.
const LegacyPythonThreshold = "18.04"

// ReleaseAtMost reports whether version sorts at or before threshold under
// Debian version ordering.
func ReleaseAtMost(version string, threshold string) (bool, error) {
	v, err := parseRelease(version)
	if err != nil {
		return false, err
	}
	t, err := parseRelease(threshold)
	if err != nil {
		return false, err
	}
	return v.LessThan(t) || v.Equal(t), nil
}

func parseRelease(value string) (debversion.Version, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return debversion.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("release version is empty")
	}
	parsed, err := debversion.NewVersion(trimmed)
	if err != nil {
		return debversion.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unparseable release version: %s", trimmed)).
			WithCause(err)
	}
	return parsed, nil
}
