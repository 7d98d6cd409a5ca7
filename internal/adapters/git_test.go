package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeForcedWritesLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "lfs-retry.log")
	adapter := GitLFSAdapter{Git: "true"}

	err := adapter.InitializeForced(context.Background(), "", logPath)
	require.NoError(t, err)

	_, statErr := os.Stat(logPath)
	assert.NoError(t, statErr, "forced initialization must leave its output at the log path")
}

func TestInitializeForcedWritesLogOnCommandFailure(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "lfs-retry.log")
	adapter := GitLFSAdapter{Git: "false"}

	err := adapter.InitializeForced(context.Background(), "", logPath)
	require.Error(t, err)

	_, statErr := os.Stat(logPath)
	assert.NoError(t, statErr, "the log is written even when the command fails")
}

func TestCommandAsUser(t *testing.T) {
	elevated := commandAsUser(context.Background(), "dev", "git", "config")
	assert.Equal(t, []string{"sudo", "-u", "dev", "-H", "git", "config"}, elevated.Args)

	direct := commandAsUser(context.Background(), "root", "git", "config")
	assert.Equal(t, []string{"git", "config"}, direct.Args)
}
