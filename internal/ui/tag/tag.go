package tag

import (
	"sync"

	"github.com/alexisbeaulieu97/tagkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tagkit/internal/ports"
	"github.com/alexisbeaulieu97/tagkit/internal/ui"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/components"
	"github.com/alexisbeaulieu97/tagkit/internal/ui/tokens"
)

// Props configures a Tag. Every field of the embedded TagProps except the
// ones listed below is forwarded to the primitive untouched. Icon and
// RightIcon shadow the primitive's element slots with IconSpec values.
type Props struct {
	components.TagProps

	Intent    Intent
	Icon      IconSpec
	RightIcon IconSpec
	// AnimatedIcon is passed to the left slot as its stopped flag. The right
	// slot never receives it.
	AnimatedIcon bool
	Children     ui.Renderable
}

// Renderer builds tags from a palette. It is safe for concurrent use.
type Renderer struct {
	palette tokens.Palette
	slots   *SlotRenderer
}

// Option customizes a Renderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	cacheSize int
	logger    ports.Logger
}

// WithSlotCacheSize bounds the slot cache. Zero or less disables it.
func WithSlotCacheSize(size int) Option {
	return func(c *rendererConfig) {
		c.cacheSize = size
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger ports.Logger) Option {
	return func(c *rendererConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewRenderer creates a Renderer coloring tags from palette.
func NewRenderer(palette tokens.Palette, opts ...Option) *Renderer {
	cfg := rendererConfig{
		cacheSize: DefaultSlotCacheSize,
		logger:    logging.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{
		palette: palette,
		slots:   NewSlotRenderer(cfg.cacheSize, cfg.logger),
	}
}

// Palette returns the palette the renderer colors from.
func (r *Renderer) Palette() tokens.Palette {
	return r.palette
}

// SlotStats exposes the slot cache counters.
func (r *Renderer) SlotStats() SlotStats {
	return r.slots.Stats()
}

// Tag composes the primitive for props.
func (r *Renderer) Tag(props Props) *components.BaseTag {
	colors := Resolve(r.palette, props.Intent)

	base := props.TagProps
	base.FillColor = colors.Fill
	base.TextColor = colors.Text
	base.Icon = r.slots.Render(props.Icon, colors.Icon, props.AnimatedIcon)
	base.RightIcon = r.slots.Render(props.RightIcon, colors.Icon, false)
	base.Label = props.Children

	return components.NewBaseTag(base)
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
)

// Default returns a process-wide renderer using the built-in palette.
func Default() *Renderer {
	defaultOnce.Do(func() {
		defaultRenderer = NewRenderer(tokens.DefaultPalette())
	})
	return defaultRenderer
}

// New composes a tag with the default renderer.
func New(props Props) *components.BaseTag {
	return Default().Tag(props)
}
