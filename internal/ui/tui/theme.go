package tui

import "github.com/charmbracelet/lipgloss"

// Accent colors by who is signed in, so a shared front-desk terminal shows
// at a glance whether a staff session was left open.
var roleAccent = map[role]lipgloss.Color{
	roleNone:     lipgloss.Color("63"),
	roleStaff:    lipgloss.Color("214"),
	roleCustomer: lipgloss.Color("39"),
}

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Badge    lipgloss.Style
	Toast    lipgloss.Style
	Error    lipgloss.Style
}

func DefaultTheme() Theme {
	return themeFor(roleNone)
}

func themeFor(r role) Theme {
	accent, ok := roleAccent[r]
	if !ok {
		accent = roleAccent[roleNone]
	}
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		Label: lipgloss.NewStyle().Foreground(accent),
		Badge: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// badge labels the current session for the header; empty when signed out.
func (t Theme) badge(r role, who string) string {
	switch r {
	case roleStaff:
		return t.Badge.Render("● staff · " + who)
	case roleCustomer:
		return t.Badge.Render("● guest · " + who)
	}
	return ""
}
