package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/nreport/pkg/nunit"
)

// Theme styles the terminal summary.
type Theme struct {
	Name  string
	Title lipgloss.Style // report name in the header
	Path  lipgloss.Style // written output file
	Pass  lipgloss.Style
	Fail  lipgloss.Style
	Skip  lipgloss.Style // also used for skip reasons
	Muted lipgloss.Style // totals, counts and namespaces
	Icons ThemeIcons
}

// ThemeIcons are the status markers of a theme.
type ThemeIcons struct {
	Pass    string
	Fail    string
	Skip    string
	Unknown string
	Bullet  string
}

// Status returns the icon and style for a rollup status.
func (th Theme) Status(s nunit.Status) (string, lipgloss.Style) {
	switch s {
	case nunit.StatusPass:
		return th.Icons.Pass, th.Pass
	case nunit.StatusFail:
		return th.Icons.Fail, th.Fail
	case nunit.StatusSkip:
		return th.Icons.Skip, th.Skip
	default:
		return th.Icons.Unknown, th.Muted
	}
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:  "default",
		Title: lipgloss.NewStyle().Bold(true),
		Path:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		Pass:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Skip:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Icons: ThemeIcons{Pass: "✓", Fail: "✗", Skip: "○", Unknown: "●", Bullet: "·"},
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:  "orca",
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		Path:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Pass:  lipgloss.NewStyle().Foreground(lipgloss.Color("108")),
		Fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
		Skip:  lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Icons: ThemeIcons{Pass: "✓", Fail: "✗", Skip: "-", Unknown: "·", Bullet: "·"},
	}
}

// MonoTheme returns a theme without colors or attributes.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain,
		Path:  plain,
		Pass:  plain,
		Fail:  plain,
		Skip:  plain,
		Muted: plain,
		Icons: ThemeIcons{Pass: "+", Fail: "x", Skip: "-", Unknown: "*", Bullet: "-"},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
