package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"android-provision/internal/ports"
	"android-provision/internal/types"
)

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) LoadManifest(path string) (types.PackageManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PackageManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	var manifest types.PackageManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return types.PackageManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest yaml").
			WithCause(err)
	}
	return manifest, nil
}

var _ ports.ManifestPort = ManifestFileAdapter{}
