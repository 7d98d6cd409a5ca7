package adapters

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"android-provision/internal/ports"
	"android-provision/internal/types"
)

const marker = "==>"

// ConsoleReporter renders progress as marker-prefixed stdout lines.
// Failures go to stderr.
type ConsoleReporter struct {
	Out io.Writer
	Err io.Writer
}

func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{Out: os.Stdout, Err: os.Stderr}
}

func (r *ConsoleReporter) StepStarted(id types.StepID) {
	fmt.Fprintf(r.Out, "%s %s\n", color.CyanString(marker), id)
}

func (r *ConsoleReporter) StepDone(result types.StepResult) {
	switch result.Outcome {
	case types.OutcomeFailure:
		fmt.Fprintf(r.Err, "%s %s failed: %s\n", color.RedString(marker), result.ID, result.Detail)
		log.Error().Str("step", string(result.ID)).Str("detail", result.Detail).Msg("step failed")
	case types.OutcomeWarning:
		fmt.Fprintf(r.Out, "%s %s: %s\n", color.YellowString(marker), result.ID, result.Detail)
	case types.OutcomeSkipped:
		fmt.Fprintf(r.Out, "%s %s skipped\n", color.CyanString(marker), result.ID)
	case types.OutcomeFallbackSuccess:
		fmt.Fprintf(r.Out, "%s %s done (fallback): %s\n", color.GreenString(marker), result.ID, result.Detail)
	default:
		fmt.Fprintf(r.Out, "%s %s done\n", color.GreenString(marker), result.ID)
	}
}

func (r *ConsoleReporter) Info(msg string) {
	fmt.Fprintf(r.Out, "%s %s\n", color.CyanString(marker), msg)
}

func (r *ConsoleReporter) Warn(msg string) {
	fmt.Fprintf(r.Out, "%s %s\n", color.YellowString(marker), msg)
	log.Warn().Msg(msg)
}

// Summary prints the closing lines verbatim. The export lines must stay
// uncolored so operators can paste them into a shell profile.
func (r *ConsoleReporter) Summary(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(r.Out, line)
	}
}

var _ ports.ReporterPort = (*ConsoleReporter)(nil)
