package domain

import "fmt"

// Report collects one Outcome per configuration in the order they were added.
type Report struct {
	outcomes []Outcome
	index    map[Configuration]int
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{index: make(map[Configuration]int)}
}

// Add appends an outcome. Each configuration may be reported only once.
func (r *Report) Add(o Outcome) error {
	if _, ok := r.index[o.Configuration]; ok {
		return fmt.Errorf("%s: %w", o.Configuration, ErrDuplicateConfiguration)
	}
	r.index[o.Configuration] = len(r.outcomes)
	r.outcomes = append(r.outcomes, o)
	return nil
}

// Outcomes returns the outcomes in insertion order.
func (r *Report) Outcomes() []Outcome {
	out := make([]Outcome, len(r.outcomes))
	copy(out, r.outcomes)
	return out
}

// Lookup returns the outcome recorded for c.
func (r *Report) Lookup(c Configuration) (Outcome, bool) {
	i, ok := r.index[c]
	if !ok {
		return Outcome{}, false
	}
	return r.outcomes[i], true
}

// Len returns the number of reported configurations.
func (r *Report) Len() int {
	return len(r.outcomes)
}

// Passed returns the number of configurations that reached StatusSuccess.
func (r *Report) Passed() int {
	n := 0
	for _, o := range r.outcomes {
		if o.Succeeded() {
			n++
		}
	}
	return n
}

// AllPassed reports whether every configuration succeeded. An empty report passes.
func (r *Report) AllPassed() bool {
	return r.Passed() == len(r.outcomes)
}
