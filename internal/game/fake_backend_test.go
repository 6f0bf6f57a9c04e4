package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/globe-visualization/internal/render"
)

// fakeBackend records construct, destroy and frame events in one ordered log.
type fakeBackend struct {
	events  []string
	handles []*fakeHandle
	err     error
}

func (b *fakeBackend) Construct(s *render.Surface, opts render.Options) (render.Handle, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.events = append(b.events, "construct")
	h := &fakeHandle{backend: b, opts: opts, surface: s}
	b.handles = append(b.handles, h)
	return h, nil
}

func (b *fakeBackend) last() *fakeHandle {
	if len(b.handles) == 0 {
		return nil
	}
	return b.handles[len(b.handles)-1]
}

func (b *fakeBackend) count(event string) int {
	n := 0
	for _, e := range b.events {
		if e == event {
			n++
		}
	}
	return n
}

type fakeHandle struct {
	backend   *fakeBackend
	opts      render.Options
	surface   *render.Surface
	frames    []render.FrameState
	destroyed bool
}

func (h *fakeHandle) Present(*ebiten.Image) {
	if h.destroyed {
		h.backend.events = append(h.backend.events, "present-after-destroy")
		return
	}
	st := render.FrameState{Phi: h.opts.Config.Phi, Theta: h.opts.Config.Theta, Width: h.opts.Config.Size, Height: h.opts.Config.Size}
	h.opts.OnRender(&st)
	h.frames = append(h.frames, st)
	h.backend.events = append(h.backend.events, "frame")
}

func (h *fakeHandle) Destroy() {
	if h.destroyed {
		return
	}
	h.destroyed = true
	h.backend.events = append(h.backend.events, "destroy")
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type cursorLog struct {
	shapes []ebiten.CursorShapeType
}

func (c *cursorLog) set(s ebiten.CursorShapeType) { c.shapes = append(c.shapes, s) }

func newTestGlobe(backend *fakeBackend, clock *fakeClock, cursor *cursorLog) *Globe {
	opts := GlobeOptions{Backend: backend, Now: clock.Now, Log: zerolog.Nop()}
	if cursor != nil {
		opts.SetCursor = cursor.set
	}
	return NewGlobe(opts)
}

// frames presents n frames through the globe.
func frames(g *Globe, n int) {
	for i := 0; i < n; i++ {
		g.Draw(nil, 0)
	}
}
