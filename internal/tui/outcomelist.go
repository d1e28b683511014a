package tui

import (
	"fmt"
	"strings"

	"github.com/waabox/vextest/internal/domain"
)

// OutcomeListModel is an immutable model for the configuration list panel.
type OutcomeListModel struct {
	outcomes []domain.Outcome
	cursor   int
}

// NewOutcomeListModel creates a configuration list model.
func NewOutcomeListModel(outcomes []domain.Outcome) OutcomeListModel {
	return OutcomeListModel{outcomes: outcomes, cursor: 0}
}

// MoveDown returns a new model with the cursor moved down by one.
func (m OutcomeListModel) MoveDown() OutcomeListModel {
	if m.cursor < len(m.outcomes)-1 {
		m.cursor++
	}
	return m
}

// MoveUp returns a new model with the cursor moved up by one.
func (m OutcomeListModel) MoveUp() OutcomeListModel {
	if m.cursor > 0 {
		m.cursor--
	}
	return m
}

// SelectedIndex returns the current cursor position.
func (m OutcomeListModel) SelectedIndex() int {
	return m.cursor
}

// SelectedOutcome returns the currently highlighted outcome.
// Returns zero-value Outcome if the list is empty.
func (m OutcomeListModel) SelectedOutcome() domain.Outcome {
	if len(m.outcomes) == 0 {
		return domain.Outcome{}
	}
	return m.outcomes[m.cursor]
}

// Len returns the number of outcomes.
func (m OutcomeListModel) Len() int {
	return len(m.outcomes)
}

// View renders the configuration list as a string.
func (m OutcomeListModel) View() string {
	if len(m.outcomes) == 0 {
		return "No configurations were tested."
	}
	var sb strings.Builder
	for i, o := range m.outcomes {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		sb.WriteString(fmt.Sprintf("%s%s %-25s %s\n",
			prefix,
			outcomeIcon(o.Status),
			truncate(string(o.Configuration), 25),
			o.Status,
		))
	}
	return sb.String()
}

func outcomeIcon(s domain.StageStatus) string {
	if s == domain.StatusSuccess {
		return "✓"
	}
	return "✗"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
