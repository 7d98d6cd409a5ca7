package types

// PackageSet is the full apt install plan for a release: the fixed base
// set plus the version-dispatched android build set. DefaultUsed marks
// that the release was unrecognized and the modern default was applied.
type PackageSet struct {
	Base        []string
	Android     []string
	DefaultUsed bool
}

// PathEntry is one directory destined for the operator's PATH.
type PathEntry struct {
	Dir             string
	CreateIfMissing bool
}

// PathPlan is the ordered list of directories the summary step turns into
// literal export lines. It is threaded through the run as a value; the
// process environment is never mutated.
type PathPlan []PathEntry

// StepResult records the outcome of one provisioning step.
type StepResult struct {
	ID      StepID
	Outcome StepOutcome
	Detail  string
}

// ArtifactPins holds the pinned remote artifacts. These are configuration
// data, not control flow: they come from viper defaults and can be
// overridden without touching the step logic.
type ArtifactPins struct {
	PlatformToolsURL string
	GitLFSVersion    string
	GitLFSURL        string
	LFSRetryLogPath  string
}
