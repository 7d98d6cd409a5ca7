package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"android-provision/internal/types"
)

// ValidateFacts enforces the invariant that environment facts are fully
// resolved before any package, path, or download action executes.
func ValidateFacts(ctx context.Context, facts types.EnvironmentFacts) error {
	assert.NotEmpty(ctx, facts.OSVersion, "os version must be detected before planning")
	if !facts.Privileged {
		return errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg("android-provision must run with elevated privileges")
	}
	if strings.TrimSpace(facts.HomeDir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("home directory is unresolved")
	}
	return nil
}

// StepOrder is the fixed provisioning sequence.
func StepOrder() []types.StepID {
	return []types.StepID{
		types.StepPrivilegeCheck,
		types.StepHomeResolution,
		types.StepReleaseDetect,
		types.StepAptUpdate,
		types.StepUserBinPath,
		types.StepPlatformTools,
		types.StepPackageDispatch,
		types.StepBasePackages,
		types.StepAndroidPackages,
		types.StepLegacyPython,
		types.StepGitIdentity,
		types.StepGitLFS,
		types.StepCleanup,
		types.StepSummary,
	}
}
