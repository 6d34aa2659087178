package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tagkit/internal/ui"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/components"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/tag"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/tokens"
)

// Document is a tag document: optional palette overrides plus a list of tags.
type Document struct {
	Version string         `yaml:"version,omitempty" toml:"version" validate:"omitempty,oneof=1"`
	Palette PaletteSection `yaml:"palette,omitempty" toml:"palette"`
	Tags    []TagSpec      `yaml:"tags,omitempty" toml:"tags" validate:"max=500,dive"`
}

// PaletteSection overrides individual design tokens.
type PaletteSection struct {
	Overrides map[string]ColorValue `yaml:"overrides,omitempty" toml:"overrides" validate:"omitempty,dive,keys,design_token,endkeys"`
}

// ColorValue is an adaptive color. Dark falls back to Light when omitted.
type ColorValue struct {
	Light string `yaml:"light" toml:"light" validate:"required,hexcolor"`
	Dark  string `yaml:"dark,omitempty" toml:"dark" validate:"omitempty,hexcolor"`
}

// TagSpec describes one tag.
type TagSpec struct {
	Label        string `yaml:"label" toml:"label" validate:"max=256"`
	Intent       string `yaml:"intent,omitempty" toml:"intent" validate:"max=32"`
	Icon         string `yaml:"icon,omitempty" toml:"icon" validate:"omitempty,icon_spec"`
	RightIcon    string `yaml:"right_icon,omitempty" toml:"right_icon" validate:"omitempty,icon_spec"`
	AnimatedIcon bool   `yaml:"animated_icon,omitempty" toml:"animated_icon"`
	Tooltip      string `yaml:"tooltip,omitempty" toml:"tooltip" validate:"max=512"`
	Large        bool   `yaml:"large,omitempty" toml:"large"`
	Minimal      bool   `yaml:"minimal,omitempty" toml:"minimal"`
	Round        bool   `yaml:"round,omitempty" toml:"round"`
	Interactive  bool   `yaml:"interactive,omitempty" toml:"interactive"`
	Active       bool   `yaml:"active,omitempty" toml:"active"`
	Removable    bool   `yaml:"removable,omitempty" toml:"removable"`
	Multiline    bool   `yaml:"multiline,omitempty" toml:"multiline"`
	MaxWidth     int    `yaml:"max_width,omitempty" toml:"max_width" validate:"gte=0"`
}

// Adaptive converts the value to a lipgloss color.
func (c ColorValue) Adaptive() lipgloss.AdaptiveColor {
	dark := c.Dark
	if dark == "" {
		dark = c.Light
	}
	return lipgloss.AdaptiveColor{Light: c.Light, Dark: dark}
}

// ApplyPalette layers the document's overrides on top of base.
func (d *Document) ApplyPalette(base tokens.Palette) tokens.Palette {
	if d == nil || len(d.Palette.Overrides) == 0 {
		return base
	}
	overrides := make(map[tokens.Token]lipgloss.AdaptiveColor, len(d.Palette.Overrides))
	for name, value := range d.Palette.Overrides {
		overrides[tokens.Token(name)] = value.Adaptive()
	}
	return base.WithOverrides(overrides)
}

// Props converts s into renderer props.
func (s TagSpec) Props() tag.Props {
	props := tag.Props{
		TagProps: components.TagProps{
			TooltipText: s.Tooltip,
			Large:       s.Large,
			Minimal:     s.Minimal,
			Round:       s.Round,
			Interactive: s.Interactive,
			Active:      s.Active,
			Removable:   s.Removable,
			Multiline:   s.Multiline,
			MaxWidth:    s.MaxWidth,
		},
		Intent:       tag.ParseIntent(s.Intent),
		Icon:         tag.ParseIconSpec(s.Icon),
		RightIcon:    tag.ParseIconSpec(s.RightIcon),
		AnimatedIcon: s.AnimatedIcon,
	}
	if s.Label != "" {
		props.Children = ui.Plain(s.Label)
	}
	return props
}
