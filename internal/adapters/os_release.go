package adapters

import (
	"bufio"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"android-provision/internal/ports"
)

const defaultOSReleasePath = "/etc/os-release"

type OSReleaseAdapter struct {
	Path string
}

func NewOSReleaseAdapter() OSReleaseAdapter {
	return OSReleaseAdapter{Path: defaultOSReleasePath}
}

func (a OSReleaseAdapter) Detect() (string, string, error) {
	path := a.Path
	if path == "" {
		path = defaultOSReleasePath
	}
	file, err := os.Open(path)
	if err != nil {
		return "", "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read os-release").
			WithCause(err)
	}
	defer file.Close()

	var version, codename string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "VERSION_ID":
			version = value
		case "VERSION_CODENAME":
			codename = value
		}
	}
	if err := scanner.Err(); err != nil {
		return "", "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan os-release").
			WithCause(err)
	}
	return version, codename, nil
}

var _ ports.OSReleasePort = OSReleaseAdapter{}
