package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/tagkit/internal/ui"
)

const (
	tagEllipsis   = "…"
	tagRemove     = "✕"
	roundCapLeft  = "◖"
	roundCapRight = "◗"
)

// TagProps configures a BaseTag. Colors and slots are usually supplied by a
// higher-level component; the remaining fields are display options.
type TagProps struct {
	FillColor lipgloss.TerminalColor
	TextColor lipgloss.TerminalColor
	Icon      ui.Renderable
	RightIcon ui.Renderable
	Label     ui.Renderable

	// TooltipText is carried for hosts that can show it (the gallery footer,
	// for example). It never appears inline.
	TooltipText string

	Large       bool
	Minimal     bool
	Round       bool
	Interactive bool
	Active      bool
	Removable   bool
	Multiline   bool
	// MaxWidth truncates the label to this many cells when positive.
	MaxWidth int
}

// BaseTag is the generic tag primitive: a filled pill holding an optional
// left slot, a label and an optional right slot.
type BaseTag struct {
	BaseComponent
	props TagProps
}

// NewBaseTag creates a tag primitive from props.
func NewBaseTag(props TagProps) *BaseTag {
	return &BaseTag{
		BaseComponent: NewBaseComponent(),
		props:         props,
	}
}

// Props returns the props the tag was built with.
func (t *BaseTag) Props() TagProps {
	return t.props
}

// Tooltip returns the tooltip text, if any.
func (t *BaseTag) Tooltip() string {
	return t.props.TooltipText
}

// WithAppliers applies theme-based style modifiers to the outer box.
func (t *BaseTag) WithAppliers(appliers ...StyleFunc) *BaseTag {
	t.AddAppliers(appliers...)
	return t
}

// View renders the tag with the default context.
func (t *BaseTag) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the tag. Each segment is styled on its own so that
// resets emitted by slot elements do not clear the fill behind later segments.
func (t *BaseTag) ViewWithContext(ctx RenderContext) string {
	p := t.props

	fill := lipgloss.NewStyle()
	if !p.Minimal && p.FillColor != nil {
		fill = fill.Background(p.FillColor)
	}
	labelStyle := fill
	if p.TextColor != nil {
		labelStyle = labelStyle.Foreground(p.TextColor)
	}
	if p.Interactive {
		labelStyle = labelStyle.Underline(true)
	}
	if p.Active {
		labelStyle = labelStyle.Bold(true)
	}

	segments := make([]string, 0, 4)
	if icon := renderChild(p.Icon, ctx); icon != "" {
		segments = append(segments, fill.Render(icon))
	}
	if label := t.label(ctx); label != "" {
		segments = append(segments, labelStyle.Render(label))
	}
	if right := renderChild(p.RightIcon, ctx); right != "" {
		segments = append(segments, fill.Render(right))
	}
	if p.Removable {
		segments = append(segments, labelStyle.Render(tagRemove))
	}

	pad := 1
	if p.Large {
		pad = 2
	}
	padding := fill.Render(strings.Repeat(" ", pad))

	var b strings.Builder
	if p.Round {
		b.WriteString(t.cap(roundCapLeft))
	} else {
		b.WriteString(padding)
	}
	for i, segment := range segments {
		if i > 0 {
			b.WriteString(fill.Render(" "))
		}
		b.WriteString(segment)
	}
	if p.Round {
		b.WriteString(t.cap(roundCapRight))
	} else {
		b.WriteString(padding)
	}

	return t.ComputeStyle(ctx.Theme).Render(b.String())
}

func (t *BaseTag) label(ctx RenderContext) string {
	label := renderChild(t.props.Label, ctx)
	if !t.props.Multiline {
		label = strings.ReplaceAll(label, "\r\n", " ")
		label = strings.ReplaceAll(label, "\n", " ")
	}
	if t.props.MaxWidth > 0 && ansi.StringWidth(label) > t.props.MaxWidth {
		label = ansi.Truncate(label, t.props.MaxWidth, tagEllipsis)
	}
	return label
}

// cap draws a rounded end in the fill color. Minimal tags have no fill, so
// their caps take the text color instead.
func (t *BaseTag) cap(glyph string) string {
	color := t.props.FillColor
	if t.props.Minimal {
		color = t.props.TextColor
	}
	return foreground(color).Render(glyph)
}
