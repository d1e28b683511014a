package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/waabox/vextest/internal/console"
	"github.com/waabox/vextest/internal/domain"
	"github.com/waabox/vextest/internal/report"
)

func buildReport(t *testing.T, outcomes ...domain.Outcome) *domain.Report {
	t.Helper()
	r := domain.NewReport()
	for _, o := range outcomes {
		if err := r.Add(o); err != nil {
			t.Fatal(err)
		}
	}
	return r
}

func TestWriteSummary_AllPassed(t *testing.T) {
	r := buildReport(t,
		domain.Outcome{Configuration: "gcc-vulkan", Status: domain.StatusSuccess},
		domain.Outcome{Configuration: "clang-vulkan", Status: domain.StatusSuccess},
	)
	var buf bytes.Buffer
	report.WriteSummary(console.New(&buf), r)

	out := buf.String()
	if !strings.Contains(out, "FINAL SUMMARY") {
		t.Errorf("expected summary banner, got:\n%s", out)
	}
	if !strings.Contains(out, "✓ gcc-vulkan                : SUCCESS") {
		t.Errorf("expected padded success line, got:\n%s", out)
	}
	if !strings.Contains(out, "Result: 2/2 configurations passed") {
		t.Errorf("expected 2/2, got:\n%s", out)
	}
	if code := report.ExitCode(r); code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
}

func TestWriteSummary_PartialFailure(t *testing.T) {
	r := buildReport(t,
		domain.Outcome{Configuration: "a", Status: domain.StatusConfigureFailed},
		domain.Outcome{Configuration: "b", Status: domain.StatusSuccess},
	)
	var buf bytes.Buffer
	report.WriteSummary(console.New(&buf), r)

	out := buf.String()
	if !strings.Contains(out, "✗ a") || !strings.Contains(out, ": CONFIGURE_FAILED") {
		t.Errorf("expected failure line for a, got:\n%s", out)
	}
	if strings.Index(out, "✗ a") > strings.Index(out, "✓ b") {
		t.Errorf("expected summary in configuration order, got:\n%s", out)
	}
	if !strings.Contains(out, "Result: 1/2 configurations passed") {
		t.Errorf("expected 1/2, got:\n%s", out)
	}
	if code := report.ExitCode(r); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestExitCode_EmptyReport(t *testing.T) {
	if code := report.ExitCode(domain.NewReport()); code != 0 {
		t.Errorf("expected exit code 0 for empty report, got %d", code)
	}
}
