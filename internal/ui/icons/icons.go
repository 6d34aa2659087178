// Package icons is the closed set of named glyphs tags can show in a slot.
// Glyphs are colorless; callers apply color when rendering.
package icons

import "sort"

// Name identifies a glyph.
type Name string

// Fallback is drawn for names outside the registry.
const Fallback = "•"

const (
	WarningSign     Name = "warning-sign"
	Error           Name = "error"
	Tick            Name = "tick"
	TickCircle      Name = "tick-circle"
	Cross           Name = "cross"
	InfoSign        Name = "info-sign"
	Time            Name = "time"
	Pause           Name = "pause"
	Refresh         Name = "refresh"
	Asset           Name = "asset"
	AssetGroup      Name = "asset-group"
	Partition       Name = "partition"
	Schedule        Name = "schedule"
	Sensor          Name = "sensor"
	Materialization Name = "materialization"
	Observation     Name = "observation"
	Run             Name = "run"
	Job             Name = "job"
	Dot             Name = "dot"
	Lock            Name = "lock"
	Link            Name = "link"
	Tag             Name = "tag"
	Arrow           Name = "arrow-forward"
	Expand          Name = "expand-more"
)

var glyphs = map[Name]string{
	WarningSign:     "⚠",
	Error:           "✗",
	Tick:            "✓",
	TickCircle:      "✔",
	Cross:           "✕",
	InfoSign:        "ℹ",
	Time:            "◷",
	Pause:           "‖",
	Refresh:         "↻",
	Asset:           "◆",
	AssetGroup:      "◈",
	Partition:       "▦",
	Schedule:        "⏲",
	Sensor:          "◉",
	Materialization: "■",
	Observation:     "◎",
	Run:             "▶",
	Job:             "≡",
	Dot:             "●",
	Lock:            "⚿",
	Link:            "⛓",
	Tag:             "⌗",
	Arrow:           "→",
	Expand:          "▾",
}

// Glyph returns the glyph for name and whether the name is registered.
func Glyph(name Name) (string, bool) {
	g, ok := glyphs[name]
	return g, ok
}

// GlyphOrFallback returns the glyph for name, or Fallback for unknown names.
func GlyphOrFallback(name Name) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return Fallback
}

// Names lists every registered name in lexical order.
func Names() []Name {
	out := make([]Name, 0, len(glyphs))
	for name := range glyphs {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
