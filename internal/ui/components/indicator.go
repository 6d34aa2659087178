package components

import (
	"github.com/charmbracelet/lipgloss"
)

var automatorFrames = []string{"◴", "◷", "◶", "◵"}

const automatorStoppedGlyph = "◎"

// AutomatorIndicator is the animated status glyph shown while an automation
// is evaluating. It honors the same stopped flag as Spinner but is a distinct
// element type.
type AutomatorIndicator struct {
	fill    lipgloss.TerminalColor
	stopped bool
}

// NewAutomatorIndicator creates an indicator element.
func NewAutomatorIndicator(fill lipgloss.TerminalColor, stopped bool) AutomatorIndicator {
	return AutomatorIndicator{fill: fill, stopped: stopped}
}

// FillColor returns the indicator color.
func (a AutomatorIndicator) FillColor() lipgloss.TerminalColor {
	return a.fill
}

// Stopped reports whether the indicator is in its non-animating state.
func (a AutomatorIndicator) Stopped() bool {
	return a.stopped
}

// View renders the first frame.
func (a AutomatorIndicator) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the frame selected by ctx.Frame.
func (a AutomatorIndicator) ViewWithContext(ctx RenderContext) string {
	glyph := automatorStoppedGlyph
	if !a.stopped {
		glyph = frameAt(automatorFrames, ctx.Frame)
	}
	return foreground(a.fill).Render(glyph)
}
