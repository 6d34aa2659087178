// Package ui holds the interfaces shared by every renderable terminal element.
package ui

// Renderable is anything that can produce a terminal string.
type Renderable interface {
	View() string
}

// Plain is a Renderable backed by an unstyled string.
type Plain string

// View implements Renderable.
func (p Plain) View() string {
	return string(p)
}
