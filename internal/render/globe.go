package render

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/globe-visualization/internal/config"
)

const (
	glowRings   = 6
	sphereScale = 0.88
)

var black = config.Color{0, 0, 0}

// Globe is the ebiten backend: a dotted, land-masked sphere with markers.
type Globe struct {
	log zerolog.Logger
}

func NewGlobe(log zerolog.Logger) *Globe {
	return &Globe{log: log.With().Str("component", "render").Logger()}
}

type globeHandle struct {
	cfg      config.VisualConfig
	onRender RenderFunc
	surface  *Surface
	points   []point
	canvas   *ebiten.Image
	log      zerolog.Logger

	destroyed bool
}

// Construct builds a renderer for cfg. Any failure, including a panic from
// the graphics driver while allocating the canvas, is reported as
// ErrBackendUnavailable.
func (b *Globe) Construct(s *Surface, opts Options) (h Handle, err error) {
	if s == nil {
		return nil, fmt.Errorf("%w: no surface", ErrBackendUnavailable)
	}
	cfg := opts.Config
	if cfg.MapSamples <= 0 {
		return nil, fmt.Errorf("%w: map samples must be positive, got %d", ErrBackendUnavailable, cfg.MapSamples)
	}
	points := landPoints(builtinMask, cfg.MapSamples)
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: land map produced no samples", ErrBackendUnavailable)
	}

	defer func() {
		if r := recover(); r != nil {
			h = nil
			err = fmt.Errorf("%w: %v", ErrBackendUnavailable, r)
		}
	}()
	// Allocated at the clamp so viewport changes never reallocate.
	canvas := ebiten.NewImage(config.MaxViewport, config.MaxViewport)

	b.log.Debug().Int("samples", cfg.MapSamples).Int("land", len(points)).Msg("globe constructed")
	return &globeHandle{
		cfg:      cfg,
		onRender: opts.OnRender,
		surface:  s,
		points:   points,
		canvas:   canvas,
		log:      b.log,
	}, nil
}

func (h *globeHandle) Present(dst *ebiten.Image) {
	if h.destroyed {
		return
	}
	st := FrameState{Phi: h.cfg.Phi, Theta: h.cfg.Theta, Width: h.cfg.Size, Height: h.cfg.Size}
	if h.onRender != nil {
		h.onRender(&st)
	}
	if dst == nil {
		return
	}

	size := min(st.Width, st.Height, config.MaxViewport)
	if size <= 0 {
		return
	}
	h.canvas.Clear()
	sub := h.canvas.SubImage(image.Rect(0, 0, size, size)).(*ebiten.Image)
	h.draw(sub, st, size)

	b := dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.Min.X+(b.Dx()-size)/2), float64(b.Min.Y+(b.Dy()-size)/2))
	op.ColorScale.ScaleAlpha(float32(h.surface.Opacity()))
	dst.DrawImage(sub, op)
}

func (h *globeHandle) draw(dst *ebiten.Image, st FrameState, size int) {
	cfg := h.cfg
	c := float32(size) / 2
	r := float64(size) / 2 * sphereScale

	for i := glowRings; i > 0; i-- {
		k := float64(i) / glowRings
		rr := r * (1 + 0.12*k)
		vector.DrawFilledCircle(dst, c, c, float32(rr), rgba(cfg.GlowColor, 1, 0.08*(1-k)+0.02), true)
	}

	body := mix(cfg.BaseColor, black, 0.55+0.4*cfg.Dark)
	vector.DrawFilledCircle(dst, c, c, float32(r), rgba(body, 1, 1), true)

	dot := float32(math.Max(1, r/120))
	for _, p := range h.points {
		x, y, z := project(p.lat, p.lon, st.Phi, st.Theta)
		if z <= 0 {
			continue
		}
		lit := clamp01(math.Pow(z, 1/cfg.Diffuse))
		k := clamp01(lit*cfg.MapBrightness*0.45) * (1 - cfg.Dark*0.5)
		px := float32(float64(c) + x*r)
		py := float32(float64(c) - y*r)
		vector.DrawFilledRect(dst, px-dot/2, py-dot/2, dot, dot, rgba(cfg.BaseColor, k, 1), false)
	}

	for _, m := range cfg.Markers {
		lat := m.Lat * math.Pi / 180
		lon := m.Lon * math.Pi / 180
		x, y, z := project(lat, lon, st.Phi, st.Theta)
		if z <= 0 {
			continue
		}
		px := float32(float64(c) + x*r)
		py := float32(float64(c) - y*r)
		vector.DrawFilledCircle(dst, px, py, float32(math.Max(1.5, m.Size*r*0.5)), rgba(cfg.MarkerColor, 1, 1), true)
	}
}

func (h *globeHandle) Destroy() {
	if h.destroyed {
		return
	}
	h.destroyed = true
	h.onRender = nil
	h.canvas.Deallocate()
	h.log.Debug().Msg("globe destroyed")
}
