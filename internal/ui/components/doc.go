// Package components provides a theme-aware component library for terminal applications.
//
// # Overview
//
// Components are built on lipgloss and render to strings. Every component
// implements ui.Renderable (View) and most also implement ViewWithContext,
// which receives a RenderContext carrying the theme, layout constraints and
// the current animation frame.
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	theme := components.DefaultTheme().WithTokens(palette)
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := component.ViewWithContext(ctx)
//
// Colors come from a tokens.Palette. Style modifiers reference tokens rather
// than raw colors:
//
//	NewText("failed").WithAppliers(Foreground(tokens.TextRed))
//
// # Elements
//
// Primitives:
//   - Text, Header: styled text
//   - Divider: a horizontal rule, optionally titled
//   - Stack: vertical/horizontal arrangement with gaps
//
// Tag building blocks:
//   - BaseTag: the generic tag primitive (fill, text color, two slots, label)
//   - Icon: a named glyph from the icons registry
//   - Spinner: a loading indicator whose frame follows RenderContext.Frame
//   - AutomatorIndicator: the animated automation status glyph
//
// Intent-driven coloring of tags lives one level up, in package tag.
//
// # Animation
//
// Animated elements are stateless. A host program (see internal/tui/gallery)
// advances RenderContext.Frame on every tick and re-renders; a static render
// simply shows frame zero.
package components
