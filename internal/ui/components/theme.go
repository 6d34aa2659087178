package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tagkit/internal/ui/tokens"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
	TypographyVariantFontBold
)

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
	FontBold lipgloss.Style
}

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// Theme represents an immutable styling theme for components.
// All modification operations return new theme instances.
type Theme struct {
	Tokens     tokens.Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
}

// Normalize returns a new theme with all fields properly initialized.
func (t Theme) Normalize() Theme {
	if t.Tokens.Len() == 0 {
		t.Tokens = tokens.DefaultPalette()
	}
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	return t
}

// WithTokens returns a copy of the theme colored from palette. Typography is
// rebuilt so text styles follow the new palette.
func (t Theme) WithTokens(palette tokens.Palette) Theme {
	t.Tokens = palette
	t.Typography = defaultTypography(palette)
	return t
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
	}
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	palette := tokens.DefaultPalette()
	return Theme{
		Tokens: palette,
		Borders: BorderSet{
			None:    lipgloss.HiddenBorder(),
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Spacing: SpacingConfig{
			Margin:  defaultSpacingTable(),
			Padding: defaultSpacingTable(),
		},
		Typography: defaultTypography(palette),
	}
}

func defaultTypography(p tokens.Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Color(tokens.TextDefault))
	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Color(tokens.TextBlue)),
		Subtitle: base.Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Color(tokens.AccentGray)),
		Emphasis: base.Italic(true),
		Muted:    lipgloss.NewStyle().Foreground(p.Color(tokens.AccentGray)),
		FontBold: base.Bold(true),
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.Normal
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= spacingSizeCount {
		return 0
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantTitle:
		return theme.Typography.Title
	case TypographyVariantSubtitle:
		return theme.Typography.Subtitle
	case TypographyVariantBody:
		return theme.Typography.Body
	case TypographyVariantCode:
		return theme.Typography.Code
	case TypographyVariantEmphasis:
		return theme.Typography.Emphasis
	case TypographyVariantMuted:
		return theme.Typography.Muted
	case TypographyVariantFontBold:
		return theme.Typography.FontBold
	default:
		return theme.Typography.Base
	}
}

// Fluent modifier functions

// Background applies the color bound to token as the background.
func Background(token tokens.Token) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Background(theme.Tokens.Color(token))
	}
}

// Foreground applies the color bound to token as the foreground.
//
// Example:
//
//	text := NewText("Error").WithAppliers(Foreground(tokens.TextRed))
func Foreground(token tokens.Token) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Foreground(theme.Tokens.Color(token))
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Border(BorderForVariant(theme, variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return style.Padding(value)
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return style.PaddingLeft(value).PaddingRight(value)
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		value := MarginValue(theme, size)
		return style.MarginLeft(value).MarginRight(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		value := MarginValue(theme, size)
		return style.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Inherit(TypographyStyle(theme, variant))
	}
}
