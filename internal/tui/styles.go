package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary     = lipgloss.Color("#8BC34A")
	info        = lipgloss.Color("#2196F3")
	destructive = lipgloss.Color("#e53935")
	muted       = lipgloss.Color("#6b7280")
)

// Styles holds every lipgloss style the chat view uses.
type Styles struct {
	Title        lipgloss.Style
	UserLabel    lipgloss.Style
	BotLabel     lipgloss.Style
	Body         lipgloss.Style
	ErrorBody    lipgloss.Style
	Loading      lipgloss.Style
	SendEnabled  lipgloss.Style
	SendDisabled lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	button := lipgloss.NewStyle().Padding(0, 1)
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(primary),
		UserLabel:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		BotLabel:     lipgloss.NewStyle().Bold(true).Foreground(info),
		Body:         lipgloss.NewStyle(),
		ErrorBody:    lipgloss.NewStyle().Foreground(destructive),
		Loading:      lipgloss.NewStyle().Foreground(muted).Italic(true),
		SendEnabled:  button.Bold(true).Foreground(lipgloss.Color("#101F38")).Background(primary),
		SendDisabled: button.Foreground(muted).Background(lipgloss.Color("#2a3850")),
		Help:         lipgloss.NewStyle().Foreground(muted),
	}
}
