package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"android-provision/internal/core"
	"android-provision/internal/types"
)

func (s Service) Packages(ctx context.Context, req PackagesRequest) (PackagesResult, error) {
	release := strings.TrimSpace(req.Release)
	if release == "" {
		return PackagesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("release is required")
	}
	var manifest *types.PackageManifest
	if path := strings.TrimSpace(req.ManifestPath); path != "" {
		loaded, err := s.Manifest.LoadManifest(path)
		if err != nil {
			return PackagesResult{}, err
		}
		manifest = &loaded
	}
	return PackagesResult{Packages: core.BuildPackageSet(release, manifest)}, nil
}
