package adapters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"android-provision/internal/types"
)

func newTestReporter() (*ConsoleReporter, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &ConsoleReporter{Out: out, Err: errOut}, out, errOut
}

func TestReporterFailuresGoToStderr(t *testing.T) {
	reporter, out, errOut := newTestReporter()
	reporter.StepDone(types.StepResult{ID: types.StepAptUpdate, Outcome: types.OutcomeFailure, Detail: "boom"})
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "apt-update")
	assert.Contains(t, errOut.String(), "boom")
}

func TestReporterSummaryIsVerbatim(t *testing.T) {
	reporter, out, _ := newTestReporter()
	lines := []string{
		`export PATH="$PATH:/home/dev/bin"`,
		`export PATH="$PATH:/home/dev/platform-tools"`,
	}
	reporter.Summary(lines)
	got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, lines, got)
}

func TestReporterProgressLinesCarryMarker(t *testing.T) {
	reporter, out, _ := newTestReporter()
	reporter.StepStarted(types.StepAptUpdate)
	reporter.StepDone(types.StepResult{ID: types.StepAptUpdate, Outcome: types.OutcomeSuccess})
	assert.Contains(t, out.String(), marker)
	assert.Contains(t, out.String(), "done")
}
