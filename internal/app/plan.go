package app

import (
	"context"
	"strings"

	"android-provision/internal/core"
	"android-provision/internal/types"
)

// Plan resolves environment facts and derives the package and path plans
// without executing anything. Overrides allow unprivileged dry runs.
func (s Service) Plan(ctx context.Context, req PlanRequest) (PlanResult, error) {
	facts := types.EnvironmentFacts{
		Privileged:   s.System.Privileged(),
		InvokingUser: s.System.InvokingUser(),
	}

	home := strings.TrimSpace(req.HomeOverride)
	if home == "" {
		resolved, err := s.System.HomeDir(facts.InvokingUser)
		if err != nil {
			return PlanResult{}, err
		}
		home = resolved
	}
	facts.HomeDir = home

	version := strings.TrimSpace(req.ReleaseOverride)
	if version == "" {
		detected, codename, err := s.Release.Detect()
		if err != nil {
			return PlanResult{}, err
		}
		version = detected
		facts.OSCodename = codename
	}
	facts.OSVersion = version

	var manifest *types.PackageManifest
	if path := strings.TrimSpace(req.ManifestPath); path != "" {
		loaded, err := s.Manifest.LoadManifest(path)
		if err != nil {
			return PlanResult{}, err
		}
		manifest = &loaded
	}

	return PlanResult{
		Facts:    facts,
		Packages: core.BuildPackageSet(facts.OSVersion, manifest),
		PathPlan: core.BuildPathPlan(facts.HomeDir),
		Steps:    core.StepOrder(),
	}, nil
}
