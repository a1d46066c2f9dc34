package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	greeting   lipgloss.Style
	detail     lipgloss.Style
	quote      lipgloss.Style
	author     lipgloss.Style
	section    lipgloss.Style
	heading    lipgloss.Style
	dayLabel   lipgloss.Style
	emptyDay   lipgloss.Style
	statKey    lipgloss.Style
	statValue  lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	loggedOut  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		greeting:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		quote:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252")),
		author:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:    lipgloss.NewStyle().MarginTop(1),
		heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		dayLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		emptyDay:   lipgloss.NewStyle().Faint(true),
		statKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		statValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		loggedOut:  lipgloss.NewStyle().Faint(true),
	}
}
