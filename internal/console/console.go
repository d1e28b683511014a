// Package console writes the runner's human-readable progress lines.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 70

// Printer writes styled lines to a writer. Styles degrade to plain text when
// the writer is not a color-capable terminal.
type Printer struct {
	w       io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	heading lipgloss.Style
}

// New creates a Printer bound to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		heading: r.NewStyle().Bold(true),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Line prints an unstyled line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Success prints a line prefixed with a check mark.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.success.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Failure prints a line prefixed with a cross.
func (p *Printer) Failure(format string, args ...any) {
	fmt.Fprintln(p.w, p.failure.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Warning prints a line prefixed with a warning sign.
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintln(p.w, p.warning.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

// Detail prints an indented line under a previous status line.
func (p *Printer) Detail(format string, args ...any) {
	fmt.Fprintf(p.w, "  "+format+"\n", args...)
}

// Block prints a multi-line diagnostic as-is, without trailing blank lines.
func (p *Printer) Block(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	fmt.Fprintln(p.w, text)
}

// Stage prints a "=== title ===" marker.
func (p *Printer) Stage(format string, args ...any) {
	fmt.Fprintln(p.w, p.heading.Render("=== "+fmt.Sprintf(format, args...)+" ==="))
}

// Banner prints a title framed by horizontal rules.
func (p *Printer) Banner(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(p.w, "\n%s\n%s\n%s\n", rule, p.heading.Render(title), rule)
}

// Title prints a title underlined with '='.
func (p *Printer) Title(title string) {
	fmt.Fprintf(p.w, "%s\n%s\n", p.heading.Render(title), strings.Repeat("=", len(title)))
}
