// Package report renders the final summary of a run.
package report

import (
	"fmt"

	"github.com/waabox/vextest/internal/console"
	"github.com/waabox/vextest/internal/domain"
)

// WriteSummary prints one line per configuration followed by the pass count.
func WriteSummary(out *console.Printer, r *domain.Report) {
	out.Banner("FINAL SUMMARY")
	for _, o := range r.Outcomes() {
		line := fmt.Sprintf("%-25s : %s", o.Configuration, o.Status)
		if o.Succeeded() {
			out.Success("%s", line)
		} else {
			out.Failure("%s", line)
		}
	}
	out.Line("\nResult: %d/%d configurations passed", r.Passed(), r.Len())
}

// ExitCode returns 0 when every configuration succeeded and 1 otherwise.
func ExitCode(r *domain.Report) int {
	if r.AllPassed() {
		return 0
	}
	return 1
}
