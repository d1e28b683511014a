package process_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/waabox/vextest/internal/domain"
	"github.com/waabox/vextest/internal/process"
)

// TestHelperProcess is not a real test. It is re-executed as a child process
// by the tests below and behaves according to its arguments.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("VEXTEST_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for i, a := range args {
		if a == "--" {
			args = args[i+1:]
			break
		}
	}
	switch args[0] {
	case "echo":
		fmt.Fprintln(os.Stdout, strings.Join(args[1:], " "))
		fmt.Fprintln(os.Stderr, "to stderr")
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "configuration error")
		os.Exit(3)
	case "pwd":
		wd, _ := os.Getwd()
		fmt.Fprintln(os.Stdout, wd)
		os.Exit(0)
	}
	os.Exit(2)
}

func helperCommand(t *testing.T, capture bool, args ...string) domain.Command {
	t.Helper()
	t.Setenv("VEXTEST_HELPER_PROCESS", "1")
	return domain.Command{
		Name:    os.Args[0],
		Args:    append([]string{"-test.run=TestHelperProcess", "--"}, args...),
		Capture: capture,
	}
}

func TestExecutor_CapturesOutput(t *testing.T) {
	e := process.NewExecutor(nil, nil, nil)
	res, err := e.Execute(context.Background(), helperCommand(t, true, "echo", "hello", "vex"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", res.ExitCode)
	}
	if !strings.Contains(res.Stdout, "hello vex") {
		t.Errorf("expected captured stdout to contain 'hello vex', got %q", res.Stdout)
	}
	if !strings.Contains(res.Stderr, "to stderr") {
		t.Errorf("expected captured stderr to contain 'to stderr', got %q", res.Stderr)
	}
}

func TestExecutor_NonZeroExitIsNotAnError(t *testing.T) {
	e := process.NewExecutor(nil, nil, nil)
	res, err := e.Execute(context.Background(), helperCommand(t, true, "fail"))
	if err != nil {
		t.Fatalf("expected nil error for non-zero exit, got %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "configuration error") {
		t.Errorf("expected captured stderr, got %q", res.Stderr)
	}
}

func TestExecutor_StreamsWhenNotCapturing(t *testing.T) {
	var stdout, stderr bytes.Buffer
	e := process.NewExecutor(&stdout, &stderr, nil)
	res, err := e.Execute(context.Background(), helperCommand(t, false, "echo", "streamed"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "" {
		t.Errorf("expected no captured stdout, got %q", res.Stdout)
	}
	if !strings.Contains(stdout.String(), "streamed") {
		t.Errorf("expected streamed stdout, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "to stderr") {
		t.Errorf("expected streamed stderr, got %q", stderr.String())
	}
}

func TestExecutor_RunsInDirectory(t *testing.T) {
	dir := t.TempDir()
	cmd := helperCommand(t, true, "pwd")
	cmd.Dir = dir
	e := process.NewExecutor(nil, nil, nil)
	res, err := e.Execute(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := filepath.EvalSymlinks(strings.TrimSpace(res.Stdout))
	want, _ := filepath.EvalSymlinks(dir)
	if got != want {
		t.Errorf("expected working directory %q, got %q", want, got)
	}
}

func TestExecutor_MissingBinaryIsAnError(t *testing.T) {
	e := process.NewExecutor(nil, nil, nil)
	_, err := e.Execute(context.Background(), domain.Command{Name: "vextest-no-such-binary-xyz", Capture: true})
	if err == nil {
		t.Fatal("expected error for missing binary, got nil")
	}
}

func TestResolver_Exists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "vex_tests")
	if err := os.WriteFile(file, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	r := process.Resolver{}
	if !r.Exists(file) {
		t.Errorf("expected %s to exist", file)
	}
	if r.Exists(dir) {
		t.Error("expected a directory not to count as an executable")
	}
	if r.Exists(filepath.Join(dir, "missing")) {
		t.Error("expected missing file not to exist")
	}
}

func TestResolver_LookPathMissing(t *testing.T) {
	r := process.Resolver{}
	if _, err := r.LookPath("vextest-no-such-binary-xyz"); err == nil {
		t.Fatal("expected error for missing binary, got nil")
	}
}

func TestResolver_Abs(t *testing.T) {
	r := process.Resolver{}
	got, err := r.Abs(filepath.Join("out", "build"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}
