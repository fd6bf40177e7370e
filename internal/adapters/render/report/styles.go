package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	text       lipgloss.Style
	response   lipgloss.Style
	detail     lipgloss.Style
	resource   lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	riskLow    lipgloss.Style
	riskMedium lipgloss.Style
	riskHigh   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		text:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
		response:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(2),
		resource:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")).PaddingLeft(4),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		riskLow:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		riskMedium: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221")),
		riskHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
