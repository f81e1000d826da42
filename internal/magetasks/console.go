package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var out io.Writer = os.Stdout

var (
	h1Style      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	h2Style      = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// PrintH1Header prints a top-level header with decoration.
func PrintH1Header(title string) {
	width := 80
	rule := strings.Repeat("=", width)
	padding := max((width-len(title))/2, 0)
	fmt.Fprintf(out, "\n%s\n%s%s\n%s\n\n", rule, strings.Repeat(" ", padding), h1Style.Render(title), rule)
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(out, "\n%s\n\n", h2Style.Render("=== "+title+" ==="))
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Fprintln(out, successStyle.Render("✅ "+msg))
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Fprintln(out, warningStyle.Render("⚠️  "+msg))
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Fprintln(out, errorStyle.Render("❌ "+msg))
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	fmt.Fprintln(out, infoStyle.Render("ℹ️  "+msg))
}
