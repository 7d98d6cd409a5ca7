package ports

import "context"

// GitPort mutates global git configuration. When username is non-empty the
// command runs as that account, so elevated runs configure the invoking
// user instead of root.
type GitPort interface {
	SetGlobalConfig(ctx context.Context, username string, key string, value string) error
}

// GitLFSPort wraps the git-lfs binary and its release installer.
type GitLFSPort interface {
	// BinaryPresent reports whether git-lfs is resolvable on PATH.
	BinaryPresent() bool

	// Initialize runs `git lfs install` as the given user.
	Initialize(ctx context.Context, username string) error

	// InitializeForced retries initialization with --force, writing the
	// combined command output to logPath.
	InitializeForced(ctx context.Context, username string, logPath string) error

	// RunReleaseInstaller executes the install.sh shipped inside an
	// extracted git-lfs release directory.
	RunReleaseInstaller(ctx context.Context, dir string) error
}
