package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"android-provision/internal/types"
)

// ---------------------------------------------------------------------------
// BuildPackageSet
// ---------------------------------------------------------------------------

func TestBuildPackageSetDispatch(t *testing.T) {
	tests := []struct {
		version     string
		wantAndroid []string
		wantDefault bool
	}{
		{
			version:     "16.04",
			wantAndroid: []string{"libncurses5-dev", "lib32ncurses5-dev", "libesd0-dev", "openjdk-8-jdk"},
		},
		{
			version:     "18.04",
			wantAndroid: []string{"libncurses5-dev", "lib32ncurses5-dev", "openjdk-8-jdk"},
		},
		{
			version:     "20.04",
			wantAndroid: []string{"libncurses5", "lib32ncurses5-dev", "python3", "openjdk-11-jdk"},
		},
		{
			version:     "22.04",
			wantAndroid: []string{"libncurses-dev", "lib32ncurses-dev", "python3", "python-is-python3", "openjdk-17-jdk"},
		},
		{
			version:     "24.04",
			wantAndroid: []string{"libncurses-dev", "lib32ncurses-dev", "python3", "python-is-python3", "openjdk-17-jdk"},
		},
		{
			version:     "26.04",
			wantAndroid: []string{"libncurses-dev", "lib32ncurses-dev", "python3", "python-is-python3", "openjdk-17-jdk"},
			wantDefault: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			set := BuildPackageSet(tt.version, nil)
			if diff := cmp.Diff(tt.wantAndroid, set.Android); diff != "" {
				t.Fatalf("unexpected android set (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantDefault, set.DefaultUsed)
			assert.NotEmpty(t, set.Base)
		})
	}
}

func TestBuildPackageSetIsPure(t *testing.T) {
	first := BuildPackageSet("22.04", nil)
	second := BuildPackageSet("22.04", nil)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same version produced different sets (-want +got):\n%s", diff)
	}
}

func TestBuildPackageSetCopiesTables(t *testing.T) {
	set := BuildPackageSet("22.04", nil)
	set.Android[0] = "mutated"
	again := BuildPackageSet("22.04", nil)
	assert.NotEqual(t, "mutated", again.Android[0])
}

func TestBuildPackageSetManifestOverride(t *testing.T) {
	manifest := &types.PackageManifest{
		Base:    []string{"git"},
		Android: map[string][]string{"22": {"custom-pkg"}},
		Default: []string{"fallback-pkg"},
	}

	set := BuildPackageSet("22.04", manifest)
	require.Equal(t, []string{"git"}, set.Base)
	require.Equal(t, []string{"custom-pkg"}, set.Android)
	assert.False(t, set.DefaultUsed)

	set = BuildPackageSet("99.10", manifest)
	require.Equal(t, []string{"fallback-pkg"}, set.Android)
	assert.True(t, set.DefaultUsed)
}

// ---------------------------------------------------------------------------
// releaseMajor
// ---------------------------------------------------------------------------

func TestReleaseMajor(t *testing.T) {
	assert.Equal(t, "22", releaseMajor("22.04"))
	assert.Equal(t, "22", releaseMajor(" 22.04.3 "))
	assert.Equal(t, "22", releaseMajor("22"))
	assert.Equal(t, "", releaseMajor(""))
}
