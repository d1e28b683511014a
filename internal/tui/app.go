// Package tui provides an interactive browser over a finished run report.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/waabox/vextest/internal/domain"
)

// viewState indicates the current navigation level.
type viewState int

const (
	viewOutcomes viewState = iota
	viewStages
	viewDiagnostic
)

const separator = "────────────────────────────────────────────────────────────\n"

var titleStyle = lipgloss.NewStyle().Bold(true)

// AppModel is the root Bubbletea model for the report browser.
type AppModel struct {
	passed int
	total  int
	// Navigation
	view viewState
	// Configuration level
	list     OutcomeListModel
	selected domain.Outcome
	// Stage level
	stages        StageListModel
	selectedStage domain.StageRecord
	// Diagnostic viewer state
	diagContent string
	diagOffset  int
	// General state
	width  int
	height int
}

// NewAppModel creates the root application model for r.
func NewAppModel(r *domain.Report) AppModel {
	list := NewOutcomeListModel(r.Outcomes())
	return AppModel{
		passed:   r.Passed(),
		total:    r.Len(),
		list:     list,
		selected: list.SelectedOutcome(),
	}
}

// Init implements tea.Model. The report is already complete, so there is nothing to load.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all incoming messages and key events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		switch m.view {
		case viewOutcomes:
			return m.updateOutcomes(msg)
		case viewStages:
			return m.updateStages(msg)
		case viewDiagnostic:
			return m.updateDiagnostic(msg)
		}
	}
	return m, nil
}

func (m AppModel) updateOutcomes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "down":
		m.list = m.list.MoveDown()
		m.selected = m.list.SelectedOutcome()
	case "up":
		m.list = m.list.MoveUp()
		m.selected = m.list.SelectedOutcome()
	case "enter":
		if m.list.Len() > 0 {
			m.selected = m.list.SelectedOutcome()
			m.stages = NewStageListModel(m.selected.Stages)
			m.view = viewStages
		}
	}
	return m, nil
}

func (m AppModel) updateStages(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "down":
		m.stages = m.stages.MoveDown()
	case "up":
		m.stages = m.stages.MoveUp()
	case "enter":
		stages := m.stages.Stages()
		if len(stages) > 0 {
			m.selectedStage = stages[m.stages.Cursor()]
			m.diagContent = m.selectedStage.Diagnostic
			if m.diagContent == "" {
				m.diagContent = "(no diagnostic output)"
			}
			m.diagOffset = 0
			m.view = viewDiagnostic
		}
	case "esc":
		m.view = viewOutcomes
	}
	return m, nil
}

func (m AppModel) updateDiagnostic(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	maxOffset := strings.Count(m.diagContent, "\n")
	switch msg.String() {
	case "down":
		if m.diagOffset < maxOffset {
			m.diagOffset++
		}
	case "up":
		if m.diagOffset > 0 {
			m.diagOffset--
		}
	case "pgup":
		m.diagOffset -= m.visibleLines()
		if m.diagOffset < 0 {
			m.diagOffset = 0
		}
	case "pgdown":
		m.diagOffset += m.visibleLines()
		if m.diagOffset > maxOffset {
			m.diagOffset = maxOffset
		}
	case "g":
		m.diagOffset = 0
	case "G":
		m.diagOffset = maxOffset
	case "esc":
		m.view = viewStages
		m.diagContent = ""
		m.diagOffset = 0
	}
	return m, nil
}

// View renders the full TUI.
func (m AppModel) View() string {
	header := titleStyle.Render(fmt.Sprintf(" vextest | %d/%d configurations passed", m.passed, m.total)) + "\n"
	switch m.view {
	case viewStages:
		return m.renderStagesView(header)
	case viewDiagnostic:
		return m.renderDiagnosticView(header)
	default:
		return m.renderOutcomesView(header)
	}
}

func (m AppModel) renderOutcomesView(header string) string {
	title := " Configurations\n"
	footer := " ↑/↓: navigate   enter: stages   q: quit\n"
	return header + separator + title + m.list.View() + "\n" + separator + footer
}

func (m AppModel) renderStagesView(header string) string {
	title := fmt.Sprintf(" Stages for %s (%s)\n", m.selected.Configuration, m.selected.Status)
	footer := " ↑/↓: navigate   enter: diagnostic   esc: back   q: quit\n"
	return header + separator + title + m.stages.View() + "\n" + separator + footer
}

func (m AppModel) renderDiagnosticView(header string) string {
	title := fmt.Sprintf(" %s  [%s]\n", m.selected.Configuration, m.selectedStage.Stage)
	footer := " ↑/↓: scroll   PgUp/PgDn: page   g/G: top/bottom   esc: back\n"

	lines := strings.Split(m.diagContent, "\n")
	start := m.diagOffset
	if start >= len(lines) {
		start = len(lines) - 1
	}
	end := start + m.visibleLines()
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[start:end], "\n")
	return header + separator + title + separator + body + "\n" + separator + footer
}

// visibleLines returns the number of diagnostic lines visible in the current terminal height.
func (m AppModel) visibleLines() int {
	lines := m.height - 6 // header, title, separators and footer
	if lines < 10 {
		return 10
	}
	return lines
}

// Run starts the Bubbletea program over r and blocks until the user quits.
func Run(r *domain.Report) error {
	p := tea.NewProgram(NewAppModel(r), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("report browser: %w", err)
	}
	return nil
}
