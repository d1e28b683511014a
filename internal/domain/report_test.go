package domain_test

import (
	"errors"
	"testing"

	"github.com/waabox/vextest/internal/domain"
)

func TestReport_PreservesInsertionOrder(t *testing.T) {
	r := domain.NewReport()
	names := []domain.Configuration{"gcc-vulkan", "clang-vulkan", "aaa"}
	for _, n := range names {
		if err := r.Add(domain.Outcome{Configuration: n, Status: domain.StatusSuccess}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	got := r.Outcomes()
	if len(got) != len(names) {
		t.Fatalf("expected %d outcomes, got %d", len(names), len(got))
	}
	for i, o := range got {
		if o.Configuration != names[i] {
			t.Errorf("outcome %d: expected %s, got %s", i, names[i], o.Configuration)
		}
	}
}

func TestReport_RejectsDuplicateConfiguration(t *testing.T) {
	r := domain.NewReport()
	if err := r.Add(domain.Outcome{Configuration: "gcc-vulkan", Status: domain.StatusSuccess}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := r.Add(domain.Outcome{Configuration: "gcc-vulkan", Status: domain.StatusBuildFailed})
	if !errors.Is(err, domain.ErrDuplicateConfiguration) {
		t.Fatalf("expected ErrDuplicateConfiguration, got %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 outcome, got %d", r.Len())
	}
}

func TestReport_AllPassed(t *testing.T) {
	r := domain.NewReport()
	if !r.AllPassed() {
		t.Error("expected empty report to pass")
	}
	_ = r.Add(domain.Outcome{Configuration: "a", Status: domain.StatusSuccess})
	if !r.AllPassed() {
		t.Error("expected report with only successes to pass")
	}
	_ = r.Add(domain.Outcome{Configuration: "b", Status: domain.StatusTestsFailed})
	if r.AllPassed() {
		t.Error("expected report with a failure not to pass")
	}
	if r.Passed() != 1 {
		t.Errorf("expected 1 passed, got %d", r.Passed())
	}
}

func TestReport_Lookup(t *testing.T) {
	r := domain.NewReport()
	_ = r.Add(domain.Outcome{Configuration: "msvc-dx12", Status: domain.StatusConfigureFailed})
	o, ok := r.Lookup("msvc-dx12")
	if !ok {
		t.Fatal("expected msvc-dx12 to be found")
	}
	if o.Status != domain.StatusConfigureFailed {
		t.Errorf("expected CONFIGURE_FAILED, got %s", o.Status)
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("expected missing configuration not to be found")
	}
}

func TestFailureStatus(t *testing.T) {
	cases := map[domain.Stage]domain.StageStatus{
		domain.StageConfigure: domain.StatusConfigureFailed,
		domain.StageBuild:     domain.StatusBuildFailed,
		domain.StageRun:       domain.StatusTestsFailed,
	}
	for stage, want := range cases {
		if got := domain.FailureStatus(stage); got != want {
			t.Errorf("FailureStatus(%s): expected %s, got %s", stage, want, got)
		}
	}
}
