package domain

import "time"

// Stage identifies one step of the per-configuration pipeline.
type Stage string

const (
	StageConfigure Stage = "configure"
	StageBuild     Stage = "build"
	StageRun       Stage = "run"
)

// StageStatus is the terminal state a configuration reaches.
type StageStatus string

const (
	StatusSuccess         StageStatus = "SUCCESS"
	StatusConfigureFailed StageStatus = "CONFIGURE_FAILED"
	StatusBuildFailed     StageStatus = "BUILD_FAILED"
	StatusTestsFailed     StageStatus = "TESTS_FAILED"
)

// FailureStatus returns the status recorded when the given stage fails.
func FailureStatus(s Stage) StageStatus {
	switch s {
	case StageConfigure:
		return StatusConfigureFailed
	case StageBuild:
		return StatusBuildFailed
	default:
		return StatusTestsFailed
	}
}

// StageRecord describes a single attempted stage.
type StageRecord struct {
	Stage      Stage
	Passed     bool
	ExitCode   int
	Duration   time.Duration
	Diagnostic string
}

// Outcome is the final result for one configuration. Stages only holds the
// stages that were attempted, in order.
type Outcome struct {
	Configuration Configuration
	Status        StageStatus
	Stages        []StageRecord
}

// Succeeded reports whether the configuration reached StatusSuccess.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSuccess
}
