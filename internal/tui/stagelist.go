package tui

import (
	"fmt"
	"strings"

	"github.com/waabox/vextest/internal/domain"
)

// StageListModel is an immutable model for the stages panel.
type StageListModel struct {
	stages []domain.StageRecord
	cursor int
}

// NewStageListModel creates a stage list model.
func NewStageListModel(stages []domain.StageRecord) StageListModel {
	return StageListModel{stages: stages, cursor: 0}
}

// MoveDown returns a new model with the cursor moved down by one.
func (m StageListModel) MoveDown() StageListModel {
	if m.cursor < len(m.stages)-1 {
		m.cursor++
	}
	return m
}

// MoveUp returns a new model with the cursor moved up by one.
func (m StageListModel) MoveUp() StageListModel {
	if m.cursor > 0 {
		m.cursor--
	}
	return m
}

// Cursor returns the current cursor position.
func (m StageListModel) Cursor() int {
	return m.cursor
}

// Stages returns the full stage slice.
func (m StageListModel) Stages() []domain.StageRecord {
	return m.stages
}

// View renders the stage list as a string with cursor indicators.
func (m StageListModel) View() string {
	if len(m.stages) == 0 {
		return "No stages recorded."
	}
	var sb strings.Builder
	for i, s := range m.stages {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		icon := "✓"
		if !s.Passed {
			icon = "✗"
		}
		duration := "--"
		if s.Duration > 0 {
			duration = fmt.Sprintf("%ds", int(s.Duration.Seconds()))
		}
		sb.WriteString(fmt.Sprintf("%s%s %-12s %s\n",
			prefix,
			icon,
			s.Stage,
			duration,
		))
	}
	return sb.String()
}
