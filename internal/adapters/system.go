package adapters

import (
	"os"
	"os/user"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"android-provision/internal/ports"
)

type SystemAdapter struct{}

func NewSystemAdapter() SystemAdapter {
	return SystemAdapter{}
}

func (a SystemAdapter) Privileged() bool {
	return os.Geteuid() == 0
}

func (a SystemAdapter) InvokingUser() string {
	return strings.TrimSpace(os.Getenv("SUDO_USER"))
}

func (a SystemAdapter) HomeDir(username string) (string, error) {
	if username == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("failed to resolve current user home directory").
				WithCause(err)
		}
		return home, nil
	}
	account, err := user.Lookup(username)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to resolve home directory for user " + username).
			WithCause(err)
	}
	if strings.TrimSpace(account.HomeDir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("user " + username + " has no home directory")
	}
	return account.HomeDir, nil
}

var _ ports.SystemPort = SystemAdapter{}
