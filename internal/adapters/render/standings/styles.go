package standings

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	rank   lipgloss.Style
	leader lipgloss.Style
	name   lipgloss.Style
	rating lipgloss.Style
	desc   lipgloss.Style
	empty  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		rank:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		leader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		name:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		rating: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		desc:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:  lipgloss.NewStyle().Faint(true),
	}
}
