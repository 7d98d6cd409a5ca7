package ports

// SystemPort reports identity facts about the running process and host
// user accounts.
type SystemPort interface {
	// Privileged reports whether the process runs with superuser rights.
	Privileged() bool

	// InvokingUser returns the account that invoked the privilege
	// elevation (SUDO_USER), or "" when the process was started directly.
	InvokingUser() string

	// HomeDir resolves the home directory for the given account. An empty
	// username resolves the current process user.
	HomeDir(username string) (string, error)
}

// OSReleasePort detects the host release identifiers.
type OSReleasePort interface {
	// Detect returns (version, codename), e.g. ("22.04", "jammy"). The
	// strings are passed through unvalidated; unknown versions are handled
	// by the package dispatch default branch.
	Detect() (string, string, error)
}

// FilesystemPort covers the few host filesystem mutations the provisioner
// performs outside of external commands.
type FilesystemPort interface {
	DirExists(path string) bool
	EnsureDir(path string) error
	Remove(path string) error
	TempDir(pattern string) (string, error)
}
