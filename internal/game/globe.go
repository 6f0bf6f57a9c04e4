package game

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/globe-visualization/internal/config"
	"github.com/iburimskiy/globe-visualization/internal/render"
	"github.com/iburimskiy/globe-visualization/internal/theme"
)

// GlobeOptions configures an embedded globe.
type GlobeOptions struct {
	// Override replaces theme-based palette selection entirely.
	Override *config.VisualConfig
	// Class names the placement the globe is embedded in; it only labels logs.
	Class string

	Backend   render.Backend
	SetCursor func(ebiten.CursorShapeType)
	Now       func() time.Time
	Log       zerolog.Logger
}

// Globe is the embeddable visual unit. Interaction happens only through
// pointer gestures on its surface; it exposes no rotate or reset controls.
type Globe struct {
	theme    theme.Theme
	override *config.VisualConfig
	active   config.VisualConfig

	inbox   *mailbox
	tap     *frameTap
	pointer *PointerTracker
	resize  *ResizeTracker
	loop    *RenderLoop
	life    *Lifecycle
	log     zerolog.Logger

	opts    GlobeOptions
	mounted bool
}

func NewGlobe(opts GlobeOptions) *Globe {
	log := opts.Log.With().Str("component", "globe").Logger()
	if opts.Class != "" {
		log = log.With().Str("class", opts.Class).Logger()
	}
	inbox := &mailbox{}
	resize := newResizeTracker(inbox)
	return &Globe{
		override: opts.Override,
		inbox:    inbox,
		tap:      newFrameTap(config.FrameHistorySize),
		pointer:  newPointerTracker(inbox, opts.SetCursor),
		resize:   resize,
		log:      log,
		opts:     opts,
	}
}

// Mount creates the surface and the first renderer. The theme may still be
// unresolved; the dark palette is used until it resolves.
func (g *Globe) Mount() error {
	if g.mounted {
		return nil
	}
	g.mounted = true
	g.loop = newRenderLoop(g.inbox, g.tap)
	g.life = newLifecycle(g.opts.Backend, render.NewSurface(), g.resize, g.opts.Now, g.log)
	return g.construct()
}

// Unmount releases the renderer and drops all rotation state.
func (g *Globe) Unmount() {
	if !g.mounted {
		return
	}
	g.pointer.Reset()
	g.life.Destroy()
	g.inbox.drain()
	g.loop = nil
	g.mounted = false
}

// SetTheme records a theme resolution. Any change rebuilds the renderer,
// including the first resolution from Unresolved to Dark.
func (g *Globe) SetTheme(t theme.Theme) error {
	if t == g.theme {
		return nil
	}
	g.log.Info().Stringer("from", g.theme).Stringer("to", t).Msg("theme changed")
	g.theme = t
	return g.reload()
}

// SetOverride replaces the explicit config. A different pointer counts as a
// change even if the contents are equal.
func (g *Globe) SetOverride(cfg *config.VisualConfig) error {
	if cfg == g.override {
		return nil
	}
	g.override = cfg
	return g.reload()
}

func (g *Globe) reload() error {
	if !g.mounted {
		return nil
	}
	g.pointer.Reset()
	return g.construct()
}

func (g *Globe) construct() error {
	g.active = config.Select(g.theme, g.override)
	return g.life.Construct(g.active, g.loop.Frame)
}

// Resize forwards the container width measured by the host window.
func (g *Globe) Resize(width int) { g.resize.Observe(width) }

// Update runs timers; call once per tick.
func (g *Globe) Update() {
	if g.mounted {
		g.life.Tick()
	}
}

// Draw presents one frame, or the placeholder when there is no renderer.
func (g *Globe) Draw(screen *ebiten.Image, spin float64) {
	if g.mounted && g.life.Mounted() {
		g.life.Present(screen)
		return
	}
	render.DrawPlaceholder(screen, spin)
}

// Bounds is the square the globe occupies, centered in a w x h window.
func (g *Globe) Bounds(w, h int) image.Rectangle {
	size := config.DefaultViewport
	if g.loop != nil && g.loop.Viewport.CurrentWidthPx > 0 {
		size = g.loop.Viewport.CurrentWidthPx
	}
	x := (w - size) / 2
	y := (h - size) / 2
	return image.Rect(x, y, x+size, y+size)
}

func (g *Globe) Pointer() *PointerTracker { return g.pointer }

func (g *Globe) Theme() theme.Theme { return g.theme }

// Config is the config the live renderer was built from.
func (g *Globe) Config() config.VisualConfig { return g.active }

func (g *Globe) Mounted() bool { return g.mounted }

// Rendering reports whether a live renderer exists, as opposed to the
// placeholder.
func (g *Globe) Rendering() bool { return g.mounted && g.life.Mounted() }

// Err is the renderer construction failure, if the placeholder is showing
// because of one.
func (g *Globe) Err() error {
	if !g.mounted {
		return nil
	}
	return g.life.Err()
}

// Rotation returns a copy of the current rotation state.
func (g *Globe) Rotation() RotationState {
	if g.loop == nil {
		return RotationState{}
	}
	return g.loop.Rotation
}

func (g *Globe) Viewport() ViewportState {
	if g.loop == nil {
		return ViewportState{}
	}
	return g.loop.Viewport
}
