package ports

import "android-provision/internal/types"

// ReporterPort renders run progress for the operator. Rendering is
// cosmetic; it carries no behavioral contract.
type ReporterPort interface {
	StepStarted(id types.StepID)
	StepDone(result types.StepResult)
	Info(msg string)
	Warn(msg string)
	Summary(lines []string)
}
