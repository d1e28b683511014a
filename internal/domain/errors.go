package domain

import "errors"

// ErrBuildToolNotFound is returned by the environment precheck when the build
// tool cannot be resolved on PATH. It is the only error that aborts a run.
var ErrBuildToolNotFound = errors.New("build tool not found in PATH")

// ErrExecutableNotFound is recorded when the test executable exists at neither
// the primary nor the fallback location. It is reported as StatusTestsFailed.
var ErrExecutableNotFound = errors.New("test executable not found")

// ErrDuplicateConfiguration is returned when a report already holds an outcome
// for the configuration being added.
var ErrDuplicateConfiguration = errors.New("configuration already reported")
