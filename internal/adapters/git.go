package adapters

import (
	"context"
	"os"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"android-provision/internal/ports"
	"android-provision/internal/shared"
)

type GitAdapter struct{}

func NewGitAdapter() GitAdapter {
	return GitAdapter{}
}

func (a GitAdapter) SetGlobalConfig(ctx context.Context, username string, key string, value string) error {
	cmd := commandAsUser(ctx, username, "git", "config", "--global", key, value)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("git config --global " + key + " failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

// GitLFSAdapter wraps the git-lfs binary. Git overrides the git executable
// name, mainly for tests.
type GitLFSAdapter struct {
	Git string
}

func NewGitLFSAdapter() GitLFSAdapter {
	return GitLFSAdapter{Git: "git"}
}

func (a GitLFSAdapter) gitBin() string {
	if a.Git == "" {
		return "git"
	}
	return a.Git
}

func (a GitLFSAdapter) BinaryPresent() bool {
	_, err := exec.LookPath("git-lfs")
	return err == nil
}

func (a GitLFSAdapter) Initialize(ctx context.Context, username string) error {
	cmd := commandAsUser(ctx, username, a.gitBin(), "lfs", "install")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("git lfs install failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

func (a GitLFSAdapter) InitializeForced(ctx context.Context, username string, logPath string) error {
	cmd := commandAsUser(ctx, username, a.gitBin(), "lfs", "install", "--force")
	output, err := cmd.CombinedOutput()
	if writeErr := os.WriteFile(logPath, output, 0o644); writeErr != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write lfs retry log " + logPath).
			WithCause(writeErr)
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("git lfs install --force failed, output at " + logPath).
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

func (a GitLFSAdapter) RunReleaseInstaller(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, "./install.sh")
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("git-lfs release installer failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

// commandAsUser runs the command through sudo when a target account is
// given, so elevated runs touch the invoking user's configuration instead
// of root's.
func commandAsUser(ctx context.Context, username string, name string, args ...string) *exec.Cmd {
	if username == "" || username == "root" {
		return exec.CommandContext(ctx, name, args...)
	}
	full := append([]string{"-u", username, "-H", name}, args...)
	return exec.CommandContext(ctx, "sudo", full...)
}

var _ ports.GitPort = GitAdapter{}
var _ ports.GitLFSPort = GitLFSAdapter{}
