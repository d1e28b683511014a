package domain

import "context"

// Command describes a child process invocation.
// When Capture is false the child's output goes straight to the console.
type Command struct {
	Name    string
	Args    []string
	Dir     string
	Capture bool
}

// CommandResult is what a finished child process left behind.
// Stdout and Stderr are only populated for captured commands.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ProcessExecutor is the port used to spawn child processes.
// A non-zero exit is reported through CommandResult.ExitCode with a nil error;
// the error is reserved for processes that could not be started at all.
type ProcessExecutor interface {
	Execute(ctx context.Context, cmd Command) (CommandResult, error)
}

// PathResolver is the port for PATH lookups and filesystem existence checks.
type PathResolver interface {
	LookPath(name string) (string, error)
	Exists(path string) bool
	Abs(path string) (string, error)
}
