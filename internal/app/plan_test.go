package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"android-provision/internal/core"
)

func TestPlanWithOverrides(t *testing.T) {
	h := newHarness()
	h.system.privileged = false
	result, err := h.service.Plan(t.Context(), PlanRequest{
		ReleaseOverride: "20.04",
		HomeOverride:    "/home/other",
	})
	require.NoError(t, err)
	assert.Equal(t, "20.04", result.Facts.OSVersion)
	assert.Equal(t, "/home/other", result.Facts.HomeDir)
	assert.Contains(t, result.Packages.Android, "openjdk-11-jdk")
	if diff := cmp.Diff(core.StepOrder(), result.Steps); diff != "" {
		t.Fatalf("unexpected step order (-want +got):\n%s", diff)
	}
	assert.Empty(t, h.calls, "plan must not execute anything")
}

func TestPlanDetectsHost(t *testing.T) {
	h := newHarness()
	result, err := h.service.Plan(t.Context(), PlanRequest{})
	require.NoError(t, err)
	assert.Equal(t, "22.04", result.Facts.OSVersion)
	assert.Equal(t, "jammy", result.Facts.OSCodename)
	assert.Equal(t, "/home/dev", result.Facts.HomeDir)
}

func TestPlanReleaseDetectionFailure(t *testing.T) {
	h := newHarness()
	h.release.err = assert.AnError
	_, err := h.service.Plan(t.Context(), PlanRequest{})
	require.Error(t, err)
}

func TestPackagesRequiresRelease(t *testing.T) {
	h := newHarness()
	_, err := h.service.Packages(t.Context(), PackagesRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "release is required")
}

func TestPackagesForRelease(t *testing.T) {
	h := newHarness()
	result, err := h.service.Packages(t.Context(), PackagesRequest{Release: "18.04"})
	require.NoError(t, err)
	assert.Contains(t, result.Packages.Android, "openjdk-8-jdk")
	assert.False(t, result.Packages.DefaultUsed)
}
