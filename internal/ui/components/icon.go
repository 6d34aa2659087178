package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tagkit/internal/ui/icons"
)

// Icon renders a named glyph in a single color.
type Icon struct {
	name  icons.Name
	color lipgloss.TerminalColor
}

// NewIcon creates an icon element. Names outside the registry render
// icons.Fallback.
func NewIcon(name icons.Name, color lipgloss.TerminalColor) Icon {
	return Icon{name: name, color: color}
}

// Name returns the icon name.
func (i Icon) Name() icons.Name {
	return i.name
}

// Color returns the icon color.
func (i Icon) Color() lipgloss.TerminalColor {
	return i.color
}

// View renders the glyph.
func (i Icon) View() string {
	style := lipgloss.NewStyle()
	if i.color != nil {
		style = style.Foreground(i.color)
	}
	return style.Render(icons.GlyphOrFallback(i.name))
}
