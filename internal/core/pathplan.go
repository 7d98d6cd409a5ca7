package core

import (
	"fmt"
	"path/filepath"

	"android-provision/internal/types"
)

// BuildPathPlan lists the directories provisioning adds under the target
// home. The user bin directory is created when missing; platform-tools is
// produced by archive extraction.
func BuildPathPlan(homeDir string) types.PathPlan {
	return types.PathPlan{
		{Dir: filepath.Join(homeDir, "bin"), CreateIfMissing: true},
		{Dir: filepath.Join(homeDir, "platform-tools"), CreateIfMissing: false},
	}
}

// RenderExports turns a path plan into the literal export lines the
// summary prints for manual profile editing.
func RenderExports(plan types.PathPlan) []string {
	lines := make([]string, 0, len(plan))
	for _, entry := range plan {
		lines = append(lines, fmt.Sprintf("export PATH=\"$PATH:%s\"", entry.Dir))
	}
	return lines
}
