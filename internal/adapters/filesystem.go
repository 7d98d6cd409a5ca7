package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"android-provision/internal/ports"
)

type FilesystemAdapter struct{}

func NewFilesystemAdapter() FilesystemAdapter {
	return FilesystemAdapter{}
}

func (a FilesystemAdapter) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (a FilesystemAdapter) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create directory " + path).
			WithCause(err)
	}
	return nil
}

func (a FilesystemAdapter) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to remove " + path).
			WithCause(err)
	}
	return nil
}

func (a FilesystemAdapter) TempDir(pattern string) (string, error) {
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create temp directory").
			WithCause(err)
	}
	return dir, nil
}

var _ ports.FilesystemPort = FilesystemAdapter{}
