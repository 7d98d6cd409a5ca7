package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"android-provision/internal/types"
)

func TestValidateFactsAccepted(t *testing.T) {
	facts := types.EnvironmentFacts{
		Privileged: true,
		HomeDir:    "/home/dev",
		OSVersion:  "22.04",
	}
	require.NoError(t, ValidateFacts(t.Context(), facts))
}

func TestValidateFactsUnprivileged(t *testing.T) {
	facts := types.EnvironmentFacts{HomeDir: "/home/dev", OSVersion: "22.04"}
	err := ValidateFacts(t.Context(), facts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "elevated privileges")
}

func TestValidateFactsEmptyHome(t *testing.T) {
	facts := types.EnvironmentFacts{Privileged: true, HomeDir: "  ", OSVersion: "22.04"}
	err := ValidateFacts(t.Context(), facts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "home directory")
}

func TestStepOrderCoversFullSequence(t *testing.T) {
	order := StepOrder()
	require.Len(t, order, 14)
	assert.Equal(t, types.StepPrivilegeCheck, order[0])
	assert.Equal(t, types.StepSummary, order[len(order)-1])
}

func TestTargetUser(t *testing.T) {
	assert.Equal(t, "dev", types.EnvironmentFacts{InvokingUser: "dev"}.TargetUser())
	assert.Equal(t, "root", types.EnvironmentFacts{}.TargetUser())
}
