package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/term"

	"github.com/waabox/vextest/internal/config"
	"github.com/waabox/vextest/internal/console"
	"github.com/waabox/vextest/internal/domain"
	"github.com/waabox/vextest/internal/platform"
	"github.com/waabox/vextest/internal/process"
	"github.com/waabox/vextest/internal/report"
	"github.com/waabox/vextest/internal/runner"
	"github.com/waabox/vextest/internal/tui"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitError carries the process exit code for a fatal error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()
	if *versionFlag {
		fmt.Println("vextest", version)
		os.Exit(0)
	}

	code, err := run(context.Background(), os.Stdout, os.Stderr)
	if err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			if !errors.Is(err, domain.ErrBuildToolNotFound) {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

// run executes every configuration and returns the process exit code.
func run(ctx context.Context, stdout, stderr io.Writer) (int, error) {
	cfg, err := config.LoadFrom(config.DefaultConfigPath())
	if err != nil {
		return 1, &exitError{code: 1, err: fmt.Errorf("loading config: %w", err)}
	}

	logger := newLogger(stderr, cfg.LogLevelOrDefault())
	slog.SetDefault(logger)

	out := console.New(stdout)
	exec := process.NewExecutor(stdout, stderr, logger)
	settings := runner.Settings{
		BuildTool:      cfg.ToolOrDefault(),
		Target:         cfg.TargetOrDefault(),
		Optimization:   cfg.OptimizationOrDefault(),
		VexConfig:      cfg.VexConfigOrDefault(),
		BuildRoot:      cfg.RootOrDefault(),
		Executable:     platform.ExecutableName(runtime.GOOS, cfg.TargetOrDefault()),
		ConfigureFlags: cfg.OptionsOrDefault(),
		TestArgs:       cfg.TestArgsOrDefault(),
	}
	logger.Debug("settings resolved", "settings", settings)

	out.Title("Vex Test Runner")
	r := runner.New(settings, exec, process.Resolver{}, out, logger)
	if err := r.Precheck(); err != nil {
		return 1, &exitError{code: 1, err: err}
	}

	configs := platform.Enumerate(ctx, runtime.GOOS, exec, cfg.CompilerOrDefault(), out)
	configs = platform.Override(configs, cfg.Configurations)

	rep, err := r.Run(ctx, configs)
	if err != nil {
		return 1, err
	}
	report.WriteSummary(out, rep)

	if cfg.Browse && isTerminal(stdout) {
		if err := tui.Run(rep); err != nil {
			logger.Warn("report browser failed", "error", err)
		}
	}
	return report.ExitCode(rep), nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
