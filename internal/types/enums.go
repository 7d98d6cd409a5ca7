package types

type StepID string

const (
	StepPrivilegeCheck  StepID = "privilege-check"
	StepHomeResolution  StepID = "home-resolution"
	StepReleaseDetect   StepID = "release-detect"
	StepAptUpdate       StepID = "apt-update"
	StepUserBinPath     StepID = "user-bin-path"
	StepPlatformTools   StepID = "platform-tools"
	StepPackageDispatch StepID = "package-dispatch"
	StepBasePackages    StepID = "base-packages"
	StepAndroidPackages StepID = "android-packages"
	StepLegacyPython    StepID = "legacy-python"
	StepGitIdentity     StepID = "git-identity"
	StepGitLFS          StepID = "git-lfs"
	StepCleanup         StepID = "cleanup"
	StepSummary         StepID = "summary"
)

type StepOutcome string

const (
	OutcomeSuccess         StepOutcome = "success"
	OutcomeFailure         StepOutcome = "failure"
	OutcomeFallbackSuccess StepOutcome = "fallback-success"
	OutcomeSkipped         StepOutcome = "skipped"
	OutcomeWarning         StepOutcome = "warning"
)

// SubstepPolicy controls how the platform-tools installer treats failures
// in its intermediate commands. Under the lenient policy only the final
// command's status determines the step outcome.
type SubstepPolicy string

const (
	SubstepPolicyStrict  SubstepPolicy = "strict"
	SubstepPolicyLenient SubstepPolicy = "lenient"
)
