package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"android-provision/internal/core"
	"android-provision/internal/types"
)

const platformToolsArchiveName = "platform-tools-latest.zip"

// Provision runs the full sequential provisioning pipeline. The first
// fatal failure aborts the run; the step results accumulated so far are
// returned alongside the error. Nothing is rolled back.
func (s Service) Provision(ctx context.Context, req ProvisionRequest) (ProvisionResult, error) {
	run := &provisionRun{service: s, req: req}
	return run.execute(ctx)
}

type provisionRun struct {
	service Service
	req     ProvisionRequest
	result  ProvisionResult
	started time.Time
}

func (r *provisionRun) execute(ctx context.Context) (ProvisionResult, error) {
	r.started = r.service.Clock()
	steps := []func(ctx context.Context) error{
		r.stepPrivilegeCheck,
		r.stepHomeResolution,
		r.stepReleaseDetect,
		r.stepAptUpdate,
		r.stepUserBinPath,
		r.stepPlatformTools,
		r.stepPackageDispatch,
		r.stepBasePackages,
		r.stepAndroidPackages,
		r.stepLegacyPython,
		r.stepGitIdentity,
		r.stepGitLFS,
		r.stepCleanup,
		r.stepSummary,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return r.result, err
		}
	}
	return r.result, nil
}

func (r *provisionRun) record(id types.StepID, outcome types.StepOutcome, detail string) {
	result := types.StepResult{ID: id, Outcome: outcome, Detail: detail}
	r.result.Steps = append(r.result.Steps, result)
	r.service.Reporter.StepDone(result)
}

func (r *provisionRun) fail(id types.StepID, err error) error {
	r.record(id, types.OutcomeFailure, err.Error())
	return err
}

func (r *provisionRun) stepPrivilegeCheck(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepPrivilegeCheck)
	if !r.service.System.Privileged() {
		return r.fail(types.StepPrivilegeCheck, errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg("android-provision must run with elevated privileges"))
	}
	r.result.Facts.Privileged = true
	r.record(types.StepPrivilegeCheck, types.OutcomeSuccess, "")
	return nil
}

func (r *provisionRun) stepHomeResolution(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepHomeResolution)
	invoking := r.service.System.InvokingUser()
	home, err := r.service.System.HomeDir(invoking)
	if err != nil {
		return r.fail(types.StepHomeResolution, err)
	}
	if strings.TrimSpace(home) == "" {
		return r.fail(types.StepHomeResolution, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("resolved home directory is empty"))
	}
	r.result.Facts.InvokingUser = invoking
	r.result.Facts.HomeDir = home
	r.record(types.StepHomeResolution, types.OutcomeSuccess, home)
	return nil
}

func (r *provisionRun) stepReleaseDetect(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepReleaseDetect)
	version, codename, err := r.service.Release.Detect()
	if err != nil {
		return r.fail(types.StepReleaseDetect, err)
	}
	r.result.Facts.OSVersion = version
	r.result.Facts.OSCodename = codename
	if err := core.ValidateFacts(ctx, r.result.Facts); err != nil {
		return r.fail(types.StepReleaseDetect, err)
	}
	r.record(types.StepReleaseDetect, types.OutcomeSuccess, version+" "+codename)
	return nil
}

func (r *provisionRun) stepAptUpdate(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepAptUpdate)
	if err := r.service.Apt.Update(ctx); err != nil {
		return r.fail(types.StepAptUpdate, err)
	}
	r.record(types.StepAptUpdate, types.OutcomeSuccess, "")
	return nil
}

func (r *provisionRun) stepUserBinPath(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepUserBinPath)
	r.result.PathPlan = core.BuildPathPlan(r.result.Facts.HomeDir)
	binDir := filepath.Join(r.result.Facts.HomeDir, "bin")
	if err := r.service.Filesystem.EnsureDir(binDir); err != nil {
		// This step never aborts the run.
		r.record(types.StepUserBinPath, types.OutcomeWarning, err.Error())
		return nil
	}
	r.record(types.StepUserBinPath, types.OutcomeSuccess, binDir)
	return nil
}

func (r *provisionRun) stepPlatformTools(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepPlatformTools)
	toolsDir := filepath.Join(r.result.Facts.HomeDir, "platform-tools")
	if r.service.Filesystem.DirExists(toolsDir) {
		r.record(types.StepPlatformTools, types.OutcomeSkipped, toolsDir+" already present")
		return nil
	}
	strict := r.req.SubstepPolicy == types.SubstepPolicyStrict
	archivePath := filepath.Join(r.result.Facts.HomeDir, platformToolsArchiveName)

	installErr := r.service.Apt.Install(ctx, []string{"wget", "unzip"})
	if strict && installErr != nil {
		return r.fail(types.StepPlatformTools, installErr)
	}
	fetchErr := r.service.Downloader.Fetch(ctx, r.req.Pins.PlatformToolsURL, archivePath)
	if strict && fetchErr != nil {
		return r.fail(types.StepPlatformTools, fetchErr)
	}
	extractErr := r.service.Archive.Unzip(archivePath, r.result.Facts.HomeDir)
	if strict && extractErr != nil {
		return r.fail(types.StepPlatformTools, extractErr)
	}
	removeErr := r.service.Filesystem.Remove(archivePath)
	// Under the lenient policy only the last command's status counts.
	if removeErr != nil {
		return r.fail(types.StepPlatformTools, removeErr)
	}
	if extractErr != nil || fetchErr != nil || installErr != nil {
		log.Warn().Msg("platform-tools sub-step failed but final status was clean")
	}
	r.record(types.StepPlatformTools, types.OutcomeSuccess, toolsDir)
	return nil
}

func (r *provisionRun) stepPackageDispatch(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepPackageDispatch)
	manifest, err := r.loadManifest()
	if err != nil {
		return r.fail(types.StepPackageDispatch, err)
	}
	r.result.Packages = core.BuildPackageSet(r.result.Facts.OSVersion, manifest)
	if r.result.Packages.DefaultUsed {
		r.record(types.StepPackageDispatch, types.OutcomeWarning,
			fmt.Sprintf("unrecognized Ubuntu release %q, using default android package set", r.result.Facts.OSVersion))
		return nil
	}
	r.record(types.StepPackageDispatch, types.OutcomeSuccess, "")
	return nil
}

func (r *provisionRun) stepBasePackages(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepBasePackages)
	if err := r.service.Apt.Install(ctx, r.result.Packages.Base); err != nil {
		return r.fail(types.StepBasePackages, err)
	}
	r.record(types.StepBasePackages, types.OutcomeSuccess, fmt.Sprintf("%d packages", len(r.result.Packages.Base)))
	return nil
}

func (r *provisionRun) stepAndroidPackages(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepAndroidPackages)
	if err := r.service.Apt.Install(ctx, r.result.Packages.Android); err != nil {
		return r.fail(types.StepAndroidPackages, err)
	}
	r.record(types.StepAndroidPackages, types.OutcomeSuccess, fmt.Sprintf("%d packages", len(r.result.Packages.Android)))
	return nil
}

func (r *provisionRun) stepLegacyPython(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepLegacyPython)
	legacy, err := core.ReleaseAtMost(r.result.Facts.OSVersion, core.LegacyPythonThreshold)
	if err != nil {
		// Unorderable release strings take the modern path, consistent
		// with the dispatch default branch.
		r.record(types.StepLegacyPython, types.OutcomeWarning, err.Error())
		return nil
	}
	if !legacy {
		r.record(types.StepLegacyPython, types.OutcomeSkipped, "release newer than "+core.LegacyPythonThreshold)
		return nil
	}
	if err := r.service.Apt.Install(ctx, []string{"python"}); err != nil {
		return r.fail(types.StepLegacyPython, err)
	}
	r.record(types.StepLegacyPython, types.OutcomeSuccess, "")
	return nil
}

func (r *provisionRun) stepGitIdentity(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepGitIdentity)
	user := r.result.Facts.TargetUser()
	if err := r.service.Git.SetGlobalConfig(ctx, user, "user.name", r.req.GitUserName); err != nil {
		return r.fail(types.StepGitIdentity, err)
	}
	if err := r.service.Git.SetGlobalConfig(ctx, user, "user.email", r.req.GitUserEmail); err != nil {
		return r.fail(types.StepGitIdentity, err)
	}
	r.record(types.StepGitIdentity, types.OutcomeSuccess, r.req.GitUserName+" <"+r.req.GitUserEmail+">")
	return nil
}

func (r *provisionRun) stepGitLFS(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepGitLFS)
	if !r.service.LFS.BinaryPresent() {
		if err := r.installLFSBinary(ctx); err != nil {
			return r.fail(types.StepGitLFS, err)
		}
	}
	user := r.result.Facts.TargetUser()
	if err := r.service.LFS.Initialize(ctx, user); err != nil {
		r.service.Reporter.Warn("git lfs initialization failed, retrying with --force")
		if err := r.service.LFS.InitializeForced(ctx, user, r.req.Pins.LFSRetryLogPath); err != nil {
			return r.fail(types.StepGitLFS, err)
		}
		r.record(types.StepGitLFS, types.OutcomeFallbackSuccess, "forced retry output at "+r.req.Pins.LFSRetryLogPath)
		return nil
	}
	r.record(types.StepGitLFS, types.OutcomeSuccess, "")
	return nil
}

// installLFSBinary tries the package manager first and falls back to the
// pinned release archive when the repositories do not carry git-lfs.
func (r *provisionRun) installLFSBinary(ctx context.Context) error {
	if err := r.service.Apt.Install(ctx, []string{"git-lfs"}); err == nil {
		r.service.Reporter.Info("git-lfs installed from the apt repositories")
		return nil
	}
	r.service.Reporter.Warn("git-lfs not installable via apt, falling back to pinned release " + r.req.Pins.GitLFSVersion)
	tempDir, err := r.service.Filesystem.TempDir("git-lfs-")
	if err != nil {
		return err
	}
	archivePath := filepath.Join(tempDir, "git-lfs.tar.gz")
	if err := r.service.Downloader.Fetch(ctx, r.req.Pins.GitLFSURL, archivePath); err != nil {
		return err
	}
	if err := r.service.Archive.ExtractTarGz(archivePath, tempDir); err != nil {
		return err
	}
	// Release tarballs nest their content in a git-lfs-<version> directory.
	installDir := filepath.Join(tempDir, "git-lfs-"+r.req.Pins.GitLFSVersion)
	return r.service.LFS.RunReleaseInstaller(ctx, installDir)
}

func (r *provisionRun) stepCleanup(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepCleanup)
	if err := r.service.Apt.Autoremove(ctx); err != nil {
		return r.fail(types.StepCleanup, err)
	}
	if err := r.service.Apt.Clean(ctx); err != nil {
		return r.fail(types.StepCleanup, err)
	}
	r.record(types.StepCleanup, types.OutcomeSuccess, "")
	return nil
}

func (r *provisionRun) stepSummary(ctx context.Context) error {
	r.service.Reporter.StepStarted(types.StepSummary)
	r.result.ExportLines = core.RenderExports(r.result.PathPlan)
	elapsed := r.service.Clock().Sub(r.started).Round(time.Second)
	lines := append([]string{
		fmt.Sprintf("Provisioning complete in %s. Add the following lines to your shell profile:", elapsed),
	}, r.result.ExportLines...)
	r.service.Reporter.Summary(lines)
	r.record(types.StepSummary, types.OutcomeSuccess, "")
	return nil
}

func (r *provisionRun) loadManifest() (*types.PackageManifest, error) {
	path := strings.TrimSpace(r.req.ManifestPath)
	if path == "" {
		return nil, nil
	}
	manifest, err := r.service.Manifest.LoadManifest(path)
	if err != nil {
		return nil, err
	}
	return &manifest, nil
}
