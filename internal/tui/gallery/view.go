package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpLine = "↑/↓ select • space stop/start icon • s all • q quit"

// View renders the current model state
func (m Model) View() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render(fmt.Sprintf("Tag gallery (%d)", len(m.entries))))
	content.WriteString("\n")

	if len(m.entries) == 0 {
		content.WriteString(rowStyle.Render("No tags to show."))
	} else {
		content.WriteString(m.viewport.View())
	}
	content.WriteString("\n")
	content.WriteString(m.renderFooter())

	return content.String()
}

func (m Model) renderRows() string {
	ctx := m.renderContext()
	rows := make([]string, 0, len(m.entries))

	for i, entry := range m.entries {
		view := m.renderer.Tag(entry.Props).ViewWithContext(ctx)

		style, titleStyleForRow := rowStyle, rowTitleStyle
		if i == m.cursor {
			style, titleStyleForRow = selectedRowStyle, selectedTitleStyle
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, view, titleStyleForRow.Render(entry.Title))
		rows = append(rows, style.Render(row))
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderFooter() string {
	var lines []string

	if entry, ok := m.Selected(); ok {
		tooltip := entry.Props.TooltipText
		if tooltip == "" {
			tooltip = "no tooltip"
		}
		lines = append(lines, tooltip)
		lines = append(lines, fmt.Sprintf("animated_icon=%t", entry.Props.AnimatedIcon))
	}
	lines = append(lines, helpLine)

	return footerStyle.Width(max(m.width, 1)).Render(strings.Join(lines, "\n"))
}
