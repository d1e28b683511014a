// Package process adapts the domain process and path ports to the operating system.
package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/waabox/vextest/internal/domain"
)

// Executor runs child processes with os/exec.
type Executor struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// Ensure Executor implements ProcessExecutor.
var _ domain.ProcessExecutor = (*Executor)(nil)

// NewExecutor creates an Executor. Uncaptured commands write to stdout and stderr.
func NewExecutor(stdout, stderr io.Writer, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{stdout: stdout, stderr: stderr, logger: logger}
}

// Execute runs cmd and blocks until it exits.
// A non-zero exit status is returned in the result, not as an error.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command) (domain.CommandResult, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = os.Stdin

	var stdout, stderr bytes.Buffer
	if cmd.Capture {
		c.Stdout = &stdout
		c.Stderr = &stderr
	} else {
		c.Stdout = e.stdout
		c.Stderr = e.stderr
	}

	e.logger.Debug("starting process", "name", cmd.Name, "args", cmd.Args, "dir", cmd.Dir, "capture", cmd.Capture)
	err := c.Run()
	result := domain.CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			e.logger.Debug("process exited", "name", cmd.Name, "exit_code", result.ExitCode)
			return result, nil
		}
		return result, err
	}
	e.logger.Debug("process exited", "name", cmd.Name, "exit_code", 0)
	return result, nil
}

// Resolver answers PATH and filesystem questions for the runner.
type Resolver struct{}

// Ensure Resolver implements PathResolver.
var _ domain.PathResolver = Resolver{}

// LookPath searches PATH for name.
func (Resolver) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Exists reports whether path names an existing regular file.
func (Resolver) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Abs returns an absolute representation of path.
func (Resolver) Abs(path string) (string, error) {
	return filepath.Abs(path)
}
