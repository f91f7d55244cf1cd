package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const cursorGlyph = "> "

// View renders the current state of the model.
func (m Model) View() string {
	sections := []string{titleStyle.Render(m.title())}

	columns := make([]string, 0, groupCount)
	for g := GroupMedia; g < groupCount; g++ {
		columns = append(columns, m.renderColumn(g))
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, columns...))

	req := m.Request()
	sections = append(sections,
		sectionStyle.Render("Install"),
		codeStyle.Render(strings.TrimRight(m.renderer.Install(req), "\n")),
		sectionStyle.Render("Embed"),
		codeStyle.Render(strings.TrimRight(m.renderer.Embed(req), "\n")),
		helpStyle.Render(m.help.View(m.keys)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) title() string {
	if strings.TrimSpace(m.theme) == "" {
		return "player.style • pick a player"
	}
	return "player.style • " + m.theme
}

func (m Model) renderColumn(g Group) string {
	focused := g == m.focus

	header := headerStyle.Render(g.String())
	if focused {
		header = focusedHeader.Render(g.String())
	}

	lines := []string{header}
	for i, it := range m.groups[g] {
		if i == m.cursor[g] {
			lines = append(lines, selectedItemStyle.Render(cursorGlyph+it.title))
			continue
		}
		lines = append(lines, itemStyle.Render(it.title))
	}

	style := columnStyle
	if focused {
		style = focusedColumnStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}
