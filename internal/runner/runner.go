// Package runner drives the configure, build and run pipeline for every configuration.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/waabox/vextest/internal/console"
	"github.com/waabox/vextest/internal/domain"
)

// Settings is the fixed build setup shared by all configurations.
type Settings struct {
	BuildTool      string
	Target         string
	Optimization   string
	VexConfig      string
	BuildRoot      string
	Executable     string
	ConfigureFlags []string
	TestArgs       []string
}

// BuildDir returns the build directory of c.
func (s Settings) BuildDir(c domain.Configuration) string {
	return filepath.Join(s.BuildRoot, string(c))
}

// BuildPreset returns the build preset name of c, e.g. "gcc-vulkan-development".
func (s Settings) BuildPreset(c domain.Configuration) string {
	return string(c) + "-" + s.VexConfig
}

// ExecutablePaths returns the primary and fallback locations of the test executable.
func (s Settings) ExecutablePaths(c domain.Configuration) (primary, fallback string) {
	dir := s.BuildDir(c)
	return filepath.Join(dir, "tests", s.Optimization, s.Executable), filepath.Join(dir, s.Executable)
}

// Runner executes the pipeline for each configuration, one at a time.
type Runner struct {
	settings Settings
	exec     domain.ProcessExecutor
	paths    domain.PathResolver
	out      *console.Printer
	logger   *slog.Logger
}

// New creates a Runner.
func New(settings Settings, exec domain.ProcessExecutor, paths domain.PathResolver, out *console.Printer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		settings: settings,
		exec:     exec,
		paths:    paths,
		out:      out,
		logger:   logger,
	}
}

// Precheck verifies the build tool is resolvable on PATH.
func (r *Runner) Precheck() error {
	path, err := r.paths.LookPath(r.settings.BuildTool)
	if err != nil {
		r.out.Line("%s not found in the PATH. Make sure to add it so that this script can run tests.", r.settings.BuildTool)
		return fmt.Errorf("%s: %w", r.settings.BuildTool, domain.ErrBuildToolNotFound)
	}
	r.out.Line("%s found at: %s", r.settings.BuildTool, path)
	return nil
}

// Run processes configs in order and returns one outcome per configuration.
// Stage failures are recorded in the report and never stop the run.
func (r *Runner) Run(ctx context.Context, configs []domain.Configuration) (*domain.Report, error) {
	r.out.Line("Will test %d configurations:", len(configs))
	for _, c := range configs {
		r.out.Detail("- %s", c)
	}

	report := domain.NewReport()
	for _, c := range configs {
		r.out.Banner("TESTING CONFIGURATION: " + string(c))
		outcome := r.runConfiguration(ctx, c)
		if err := report.Add(outcome); err != nil {
			return report, err
		}
		r.logger.Info("configuration finished", "configuration", c, "status", outcome.Status)
	}
	return report, nil
}

type stageFunc func(ctx context.Context, c domain.Configuration) domain.StageRecord

func (r *Runner) runConfiguration(ctx context.Context, c domain.Configuration) domain.Outcome {
	outcome := domain.Outcome{Configuration: c, Status: domain.StatusSuccess}
	stages := []struct {
		stage domain.Stage
		run   stageFunc
	}{
		{domain.StageConfigure, r.configure},
		{domain.StageBuild, r.build},
		{domain.StageRun, r.runTests},
	}
	for _, s := range stages {
		start := time.Now()
		rec := s.run(ctx, c)
		rec.Stage = s.stage
		rec.Duration = time.Since(start)
		outcome.Stages = append(outcome.Stages, rec)
		if !rec.Passed {
			outcome.Status = domain.FailureStatus(s.stage)
			break
		}
	}
	return outcome
}

func (r *Runner) configure(ctx context.Context, c domain.Configuration) domain.StageRecord {
	r.out.Stage("Configuring preset: %s", c)
	args := append([]string{"--preset", string(c)}, r.settings.ConfigureFlags...)
	res, err := r.exec.Execute(ctx, domain.Command{Name: r.settings.BuildTool, Args: args, Capture: true})
	if err != nil || res.ExitCode != 0 {
		r.out.Failure("Configuration failed for %s", c)
		diag := res.Stderr
		if err != nil {
			diag = err.Error()
		}
		if strings.TrimSpace(diag) != "" {
			r.out.Detail("Configuration error:")
			r.out.Block(diag)
		}
		return domain.StageRecord{ExitCode: res.ExitCode, Diagnostic: strings.TrimSpace(diag)}
	}
	r.out.Success("Configured %s", c)
	return domain.StageRecord{Passed: true, Diagnostic: strings.TrimSpace(res.Stdout)}
}

func (r *Runner) build(ctx context.Context, c domain.Configuration) domain.StageRecord {
	r.out.Stage("Building %s for %s", r.settings.Target, c)
	args := []string{
		"--build", r.settings.BuildDir(c),
		"--preset", r.settings.BuildPreset(c),
		"--target", r.settings.Target,
		"--parallel",
	}
	res, err := r.exec.Execute(ctx, domain.Command{Name: r.settings.BuildTool, Args: args})
	if err != nil {
		r.out.Failure("Build failed for %s", c)
		return domain.StageRecord{Diagnostic: err.Error()}
	}
	if res.ExitCode != 0 {
		r.out.Failure("Build failed for %s", c)
		return domain.StageRecord{ExitCode: res.ExitCode, Diagnostic: fmt.Sprintf("build exited with code %d", res.ExitCode)}
	}
	r.out.Success("Build successful for %s", c)
	return domain.StageRecord{Passed: true}
}

func (r *Runner) runTests(ctx context.Context, c domain.Configuration) domain.StageRecord {
	exe, err := r.locateExecutable(c)
	if err != nil {
		primary, fallback := r.settings.ExecutablePaths(c)
		r.out.Failure("Test executable not found for %s", c)
		r.out.Detail("Looked for: %s", primary)
		r.out.Detail("       and: %s", fallback)
		return domain.StageRecord{Diagnostic: fmt.Sprintf("%v: looked for %s and %s", err, primary, fallback)}
	}

	r.out.Stage("Running %s for %s", r.settings.Target, c)
	r.out.Line("Executable: %s", exe)
	res, err := r.exec.Execute(ctx, domain.Command{
		Name: exe,
		Args: r.settings.TestArgs,
		Dir:  filepath.Dir(exe),
	})
	if err != nil {
		r.out.Failure("Tests failed for %s (%v)", c, err)
		return domain.StageRecord{Diagnostic: err.Error()}
	}
	if res.ExitCode != 0 {
		r.out.Failure("Tests failed for %s (exit code: %d)", c, res.ExitCode)
		return domain.StageRecord{ExitCode: res.ExitCode, Diagnostic: fmt.Sprintf("tests exited with code %d", res.ExitCode)}
	}
	r.out.Success("Tests passed for %s", c)
	return domain.StageRecord{Passed: true, Diagnostic: exe}
}

// locateExecutable returns the absolute path of the test executable,
// trying the primary location before the fallback.
func (r *Runner) locateExecutable(c domain.Configuration) (string, error) {
	primary, fallback := r.settings.ExecutablePaths(c)
	for _, p := range []string{primary, fallback} {
		r.logger.Debug("looking for test executable", "path", p)
		if !r.paths.Exists(p) {
			continue
		}
		abs, err := r.paths.Abs(p)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", p, err)
		}
		return abs, nil
	}
	return "", domain.ErrExecutableNotFound
}
