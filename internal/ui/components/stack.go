package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tagkit/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Alignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack, forwarding ctx to every child.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if ctx.Constraints.MaxWidth > 0 {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(views)
	} else {
		content = s.joinVertical(views)
	}
	return style.Render(content)
}

func (s *Stack) joinHorizontal(views []string) string {
	if s.gap <= 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}
	spacer := strings.Repeat(" ", s.gap)
	withGaps := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			withGaps = append(withGaps, spacer)
		}
		withGaps = append(withGaps, view)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, withGaps...)
}

func (s *Stack) joinVertical(views []string) string {
	if s.gap <= 0 {
		return lipgloss.JoinVertical(s.align.ToLipglossPosition(), views...)
	}
	withGaps := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			withGaps = append(withGaps, strings.Repeat("\n", s.gap-1))
		}
		withGaps = append(withGaps, view)
	}
	return lipgloss.JoinVertical(s.align.ToLipglossPosition(), withGaps...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(direction Direction) *Stack {
	s.direction = direction
	return s
}

// WithGap sets the spacing between children, in cells or lines.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlignment sets cross-axis alignment for vertical stacks.
func (s *Stack) WithAlignment(align Alignment) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the stack's children.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
