package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuildPathPlan(t *testing.T) {
	plan := BuildPathPlan("/home/dev")
	require.Len(t, plan, 2)
	require.Equal(t, "/home/dev/bin", plan[0].Dir)
	require.True(t, plan[0].CreateIfMissing)
	require.Equal(t, "/home/dev/platform-tools", plan[1].Dir)
	require.False(t, plan[1].CreateIfMissing)
}

func TestRenderExports(t *testing.T) {
	lines := RenderExports(BuildPathPlan("/home/dev"))
	expected := []string{
		`export PATH="$PATH:/home/dev/bin"`,
		`export PATH="$PATH:/home/dev/platform-tools"`,
	}
	if diff := cmp.Diff(expected, lines); diff != "" {
		t.Fatalf("unexpected export lines (-want +got):\n%s", diff)
	}
}
