package gallery

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tagkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tagkit/internal/ports"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/components"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/tag"
)

// chromeHeight is the number of lines used by the title and footer.
const chromeHeight = 7

// Model is the gallery state.
type Model struct {
	renderer *tag.Renderer
	entries  []Entry
	logger   ports.Logger

	cursor int
	frame  int

	// spinner only paces the animation; tags pick glyphs from frame
	spinner  spinner.Model
	viewport viewport.Model

	width  int
	height int
}

// NewModel creates a gallery over entries. A nil logger discards output.
func NewModel(renderer *tag.Renderer, entries []Entry, logger ports.Logger) Model {
	if renderer == nil {
		renderer = tag.Default()
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := Model{
		renderer: renderer,
		entries:  append([]Entry(nil), entries...),
		logger:   logger.With("component", "gallery"),
		spinner:  s,
		viewport: viewport.New(80, 24-chromeHeight),
		width:    80,
		height:   24,
	}
	m.syncViewport()
	return m
}

// Init starts the animation clock.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Entries returns the current rows, including toggled animation flags.
func (m Model) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Cursor returns the selected row index.
func (m Model) Cursor() int {
	return m.cursor
}

// Frame returns the current animation frame.
func (m Model) Frame() int {
	return m.frame
}

// Selected returns the selected entry.
func (m Model) Selected() (Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return Entry{}, false
	}
	return m.entries[m.cursor], true
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	if len(m.entries) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.entries) - 1
	}
	m.syncViewport()
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.entries)
	m.syncViewport()
}

// ToggleStopped flips AnimatedIcon on the selected row.
func (m *Model) ToggleStopped() {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return
	}
	entry := &m.entries[m.cursor]
	entry.Props.AnimatedIcon = !entry.Props.AnimatedIcon
	m.logger.Debug(context.Background(), "toggled animated icon", "row", entry.Title, "animated_icon", entry.Props.AnimatedIcon)
	m.syncViewport()
}

// ToggleAllStopped sets AnimatedIcon on every row to the opposite of the
// selected row's current value.
func (m *Model) ToggleAllStopped() {
	selected, ok := m.Selected()
	if !ok {
		return
	}
	next := !selected.Props.AnimatedIcon
	for i := range m.entries {
		m.entries[i].Props.AnimatedIcon = next
	}
	m.logger.Debug(context.Background(), "toggled animated icon on all rows", "animated_icon", next, "rows", len(m.entries))
	m.syncViewport()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-chromeHeight)
	m.syncViewport()
}

// syncViewport re-renders the rows and keeps the cursor on screen. Rows are
// assumed to be one line tall.
func (m *Model) syncViewport() {
	m.viewport.SetContent(m.renderRows())

	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m Model) renderContext() components.RenderContext {
	return components.DefaultContext().WithFrame(m.frame)
}
