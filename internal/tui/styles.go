package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	columnStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginRight(1)

	focusedColumnStyle = columnStyle.
				BorderForeground(primaryColor)

	headerStyle       = lipgloss.NewStyle().Bold(true).Foreground(mutedColor)
	focusedHeader     = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	codeStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(mutedColor).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().MarginTop(1)
)
