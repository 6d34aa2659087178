package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerPurpose sizes a spinner for the context it appears in.
type SpinnerPurpose int

const (
	// SpinnerPurposeBodyText sizes the spinner to sit inline with text.
	SpinnerPurposeBodyText SpinnerPurpose = iota
	SpinnerPurposeSection
	SpinnerPurposePage
)

func (p SpinnerPurpose) String() string {
	switch p {
	case SpinnerPurposeSection:
		return "section"
	case SpinnerPurposePage:
		return "page"
	default:
		return "body-text"
	}
}

const spinnerStoppedGlyph = "○"

// Spinner is a loading indicator. A stopped spinner renders a static glyph
// instead of advancing through its frames.
type Spinner struct {
	fill    lipgloss.TerminalColor
	purpose SpinnerPurpose
	stopped bool
}

// NewSpinner creates a spinner element.
func NewSpinner(fill lipgloss.TerminalColor, purpose SpinnerPurpose, stopped bool) Spinner {
	return Spinner{fill: fill, purpose: purpose, stopped: stopped}
}

// FillColor returns the spinner color.
func (s Spinner) FillColor() lipgloss.TerminalColor {
	return s.fill
}

// Purpose returns the sizing purpose.
func (s Spinner) Purpose() SpinnerPurpose {
	return s.purpose
}

// Stopped reports whether the spinner is in its non-animating state.
func (s Spinner) Stopped() bool {
	return s.stopped
}

// Frames returns the frame set used for the spinner's purpose.
func (s Spinner) Frames() spinner.Spinner {
	switch s.purpose {
	case SpinnerPurposeSection:
		return spinner.Dot
	case SpinnerPurposePage:
		return spinner.Points
	default:
		return spinner.MiniDot
	}
}

// View renders the first frame.
func (s Spinner) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the frame selected by ctx.Frame.
func (s Spinner) ViewWithContext(ctx RenderContext) string {
	glyph := spinnerStoppedGlyph
	if !s.stopped {
		glyph = frameAt(s.Frames().Frames, ctx.Frame)
	}
	return foreground(s.fill).Render(glyph)
}

func frameAt(frames []string, frame int) string {
	if len(frames) == 0 {
		return ""
	}
	idx := frame % len(frames)
	if idx < 0 {
		idx += len(frames)
	}
	return frames[idx]
}

func foreground(color lipgloss.TerminalColor) lipgloss.Style {
	style := lipgloss.NewStyle()
	if color != nil {
		style = style.Foreground(color)
	}
	return style
}
