package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/tagkit/internal/ui/tokens"
)

const defaultDividerWidth = 40

// Divider renders a horizontal rule, optionally with a title set into it.
type Divider struct {
	BaseComponent
	char  string
	title string
	width int
}

// NewDivider creates a divider colored with the gray accent token.
func NewDivider() *Divider {
	d := &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
	d.SetAppliers(Foreground(tokens.AccentGray))
	return d
}

// SectionDivider creates a divider that reads "── title ─────".
func SectionDivider(title string) *Divider {
	return NewDivider().WithTitle(title)
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider. An explicit width wins, then the
// parent width, then the max-width constraint.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.ParentWidth
	}
	if width <= 0 && ctx.Constraints.MaxWidth > 0 {
		width = ctx.Constraints.MaxWidth
	}
	if width <= 0 {
		width = defaultDividerWidth
	}

	var content string
	if d.title == "" {
		content = strings.Repeat(d.char, width)
	} else {
		lead := strings.Repeat(d.char, 2) + " " + d.title + " "
		if rest := width - ansi.StringWidth(lead); rest > 0 {
			content = lead + strings.Repeat(d.char, rest)
		} else {
			content = ansi.Truncate(lead, width, "")
		}
	}

	return d.ComputeStyle(ctx.Theme).Render(content)
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithTitle sets the text shown inside the rule.
func (d *Divider) WithTitle(title string) *Divider {
	d.title = title
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithStyle sets the divider style.
func (d *Divider) WithStyle(style lipgloss.Style) *Divider {
	d.SetStyle(style)
	return d
}

// WithAppliers adds theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}

// Width returns the explicit width, or zero when the divider sizes itself.
func (d *Divider) Width() int {
	return d.width
}
