// Package tokens defines the design-token palette tags are colored from.
//
// A Palette is built once at startup and treated as read-only configuration.
// Overrides produce a new Palette; nothing mutates an existing one.
package tokens

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Token is the name of a themeable color.
type Token string

// Background tokens fill the body of a tag.
const (
	BackgroundBlue   Token = "background.blue"
	BackgroundRed    Token = "background.red"
	BackgroundGreen  Token = "background.green"
	BackgroundYellow Token = "background.yellow"
	BackgroundGray   Token = "background.gray"
)

// Text tokens color a tag's label.
const (
	TextBlue    Token = "text.blue"
	TextRed     Token = "text.red"
	TextGreen   Token = "text.green"
	TextYellow  Token = "text.yellow"
	TextDefault Token = "text.default"
)

// Accent tokens color icons and spinners.
const (
	AccentBlue   Token = "accent.blue"
	AccentRed    Token = "accent.red"
	AccentGreen  Token = "accent.green"
	AccentYellow Token = "accent.yellow"
	AccentGray   Token = "accent.gray"
)

// Palette maps tokens to adaptive colors.
type Palette struct {
	colors map[Token]lipgloss.AdaptiveColor
}

// NewPalette copies the supplied mapping into a new Palette.
func NewPalette(colors map[Token]lipgloss.AdaptiveColor) Palette {
	copied := make(map[Token]lipgloss.AdaptiveColor, len(colors))
	for token, color := range colors {
		copied[token] = color
	}
	return Palette{colors: copied}
}

// Color returns the color bound to token. Unbound tokens yield the zero
// AdaptiveColor, which lipgloss renders as "no color".
func (p Palette) Color(token Token) lipgloss.AdaptiveColor {
	return p.colors[token]
}

// Has reports whether token is bound in this palette.
func (p Palette) Has(token Token) bool {
	_, ok := p.colors[token]
	return ok
}

// Len returns the number of bound tokens.
func (p Palette) Len() int {
	return len(p.colors)
}

// Tokens returns every bound token in lexical order.
func (p Palette) Tokens() []Token {
	out := make([]Token, 0, len(p.colors))
	for token := range p.colors {
		out = append(out, token)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// WithOverrides returns a new Palette with overrides layered on top of p.
func (p Palette) WithOverrides(overrides map[Token]lipgloss.AdaptiveColor) Palette {
	merged := make(map[Token]lipgloss.AdaptiveColor, len(p.colors)+len(overrides))
	for token, color := range p.colors {
		merged[token] = color
	}
	for token, color := range overrides {
		merged[token] = color
	}
	return Palette{colors: merged}
}

var known = map[Token]struct{}{
	BackgroundBlue: {}, BackgroundRed: {}, BackgroundGreen: {}, BackgroundYellow: {}, BackgroundGray: {},
	TextBlue: {}, TextRed: {}, TextGreen: {}, TextYellow: {}, TextDefault: {},
	AccentBlue: {}, AccentRed: {}, AccentGreen: {}, AccentYellow: {}, AccentGray: {},
}

// Known reports whether token is one of the tokens defined by this package.
func Known(token Token) bool {
	_, ok := known[token]
	return ok
}

// DefaultPalette returns the built-in light/dark palette.
func DefaultPalette() Palette {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return NewPalette(map[Token]lipgloss.AdaptiveColor{
		BackgroundBlue:   ac("#dbeafe", "#1e3a8a"),
		BackgroundRed:    ac("#fee2e2", "#7f1d1d"),
		BackgroundGreen:  ac("#dcfce7", "#14532d"),
		BackgroundYellow: ac("#fef3c7", "#713f12"),
		BackgroundGray:   ac("#e2e8f0", "#334155"),

		TextBlue:    ac("#1d4ed8", "#bfdbfe"),
		TextRed:     ac("#b91c1c", "#fecaca"),
		TextGreen:   ac("#15803d", "#bbf7d0"),
		TextYellow:  ac("#a16207", "#fde68a"),
		TextDefault: ac("#0f172a", "#f1f5f9"),

		AccentBlue:   ac("#2563eb", "#60a5fa"),
		AccentRed:    ac("#dc2626", "#f87171"),
		AccentGreen:  ac("#16a34a", "#4ade80"),
		AccentYellow: ac("#ca8a04", "#facc15"),
		AccentGray:   ac("#64748b", "#94a3b8"),
	})
}
