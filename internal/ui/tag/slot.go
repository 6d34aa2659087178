package tag

import (
	"context"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tagkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tagkit/internal/ports"
	"github.com/alexisbeaulieu97/tagkit/internal/ui"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/components"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/icons"
)

// DefaultSlotCacheSize bounds the number of memoized slot elements.
const DefaultSlotCacheSize = 256

type slotKey struct {
	spec    IconSpec
	color   lipgloss.AdaptiveColor
	stopped bool
}

// SlotStats reports cache effectiveness.
type SlotStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// SlotRenderer resolves icon specs into slot elements. Results are memoized
// per (spec, color, stopped); elements are immutable so a cached element can
// be shared across renders and goroutines.
type SlotRenderer struct {
	mu      sync.Mutex
	entries map[slotKey]ui.Renderable
	limit   int
	hits    uint64
	misses  uint64
	logger  ports.Logger
}

// NewSlotRenderer creates a renderer holding at most limit elements. A
// non-positive limit disables memoization.
func NewSlotRenderer(limit int, logger ports.Logger) *SlotRenderer {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &SlotRenderer{
		entries: make(map[slotKey]ui.Renderable),
		limit:   limit,
		logger:  logger.With("component", "slot_renderer"),
	}
}

// Render resolves spec. A nil spec or an empty icon name yields a nil
// element. The stopped flag only affects spinner and automator specs.
func (r *SlotRenderer) Render(spec IconSpec, color lipgloss.AdaptiveColor, stopped bool) ui.Renderable {
	if absent(spec) {
		return nil
	}
	if r.limit <= 0 {
		return resolveSlot(spec, color, stopped)
	}

	key := slotKey{spec: spec, color: color, stopped: stopped}

	r.mu.Lock()
	defer r.mu.Unlock()

	if element, ok := r.entries[key]; ok {
		r.hits++
		return element
	}
	r.misses++

	if len(r.entries) >= r.limit {
		// The key space is tiny in practice; a full reset keeps this simple.
		r.logger.Debug(context.Background(), "slot cache full, resetting", "entries", len(r.entries))
		r.entries = make(map[slotKey]ui.Renderable, r.limit)
	}

	element := resolveSlot(spec, color, stopped)
	r.entries[key] = element
	return element
}

// Stats returns a snapshot of the cache counters.
func (r *SlotRenderer) Stats() SlotStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return SlotStats{Hits: r.hits, Misses: r.misses, Entries: len(r.entries)}
}

func resolveSlot(spec IconSpec, color lipgloss.AdaptiveColor, stopped bool) ui.Renderable {
	switch s := spec.(type) {
	case SpinnerIcon:
		return components.NewSpinner(color, components.SpinnerPurposeBodyText, stopped)
	case AutomatorIcon:
		return components.NewAutomatorIndicator(color, stopped)
	case NamedIcon:
		if s == "" {
			return nil
		}
		return components.NewIcon(icons.Name(s), color)
	default:
		return nil
	}
}

func absent(spec IconSpec) bool {
	if spec == nil {
		return true
	}
	named, ok := spec.(NamedIcon)
	return ok && named == ""
}
