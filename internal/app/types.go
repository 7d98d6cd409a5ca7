package app

import "android-provision/internal/types"

type ProvisionRequest struct {
	ManifestPath  string
	Pins          types.ArtifactPins
	GitUserName   string
	GitUserEmail  string
	SubstepPolicy types.SubstepPolicy
}

type ProvisionResult struct {
	Facts       types.EnvironmentFacts
	Packages    types.PackageSet
	PathPlan    types.PathPlan
	Steps       []types.StepResult
	ExportLines []string
}

type PlanRequest struct {
	ManifestPath    string
	ReleaseOverride string
	HomeOverride    string
}

type PlanResult struct {
	Facts    types.EnvironmentFacts
	Packages types.PackageSet
	PathPlan types.PathPlan
	Steps    []types.StepID
}

type PackagesRequest struct {
	Release      string
	ManifestPath string
}

type PackagesResult struct {
	Packages types.PackageSet
}
