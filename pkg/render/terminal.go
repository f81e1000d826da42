package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/nreport/pkg/nunit"
)

const maxNameWidth = 50

// Terminal renders the summary as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
	title cases.Caser
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, title: cases.Title(language.English)}
}

// Render formats the summary: a header line followed by one row per fixture.
func (t *Terminal) Render(s *Summary) string {
	if s == nil {
		return ""
	}
	var sb strings.Builder

	icon, style := t.theme.Status(s.Status)
	sb.WriteString(style.Render(icon))
	sb.WriteString(" ")
	sb.WriteString(t.theme.Title.Render(s.Report))
	sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("  %d tests, %d failed, %d not run, %s success",
		s.Total, s.Failures, s.NotRun, s.SuccessRate)))
	sb.WriteString("\n")
	if s.Output != "" {
		sb.WriteString(t.theme.Muted.Render("  " + t.theme.Icons.Bullet + " "))
		sb.WriteString(t.theme.Path.Render(s.Output))
		sb.WriteString("\n")
	}

	nameWidth := 0
	for _, f := range s.Fixtures {
		nameWidth = max(nameWidth, runewidth.StringWidth(f.Name))
	}
	nameWidth = min(nameWidth, maxNameWidth, t.width/2)

	for _, f := range s.Fixtures {
		icon, style := t.theme.Status(f.Status)
		sb.WriteString("  ")
		sb.WriteString(style.Render(icon + " " + padRight(truncate(f.Name, nameWidth), nameWidth)))
		sb.WriteString("  ")
		sb.WriteString(style.Render(padRight(t.statusLabel(f.Status), 4)))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(f.Counts.String()))
		if f.Namespace != "" {
			sb.WriteString(t.theme.Muted.Render("  " + f.Namespace))
		}
		sb.WriteString("\n")
		if f.Reason != "" {
			sb.WriteString("      ")
			sb.WriteString(t.theme.Skip.Render(f.Reason))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (t *Terminal) statusLabel(s nunit.Status) string {
	if s == nunit.StatusUnknown {
		return "?"
	}
	return t.title.String(string(s))
}

// truncate shortens s to width display cells, marking the cut with "...".
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// padRight pads s to width display cells.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
