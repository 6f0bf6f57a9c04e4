package game

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/globe-visualization/internal/config"
	"github.com/iburimskiy/globe-visualization/internal/render"
)

type mountState int

const (
	unmounted mountState = iota
	mounted
	fallback
)

func (s mountState) String() string {
	switch s {
	case mounted:
		return "mounted"
	case fallback:
		return "fallback"
	default:
		return "unmounted"
	}
}

// Lifecycle owns the single live renderer handle. Construct always tears
// down the previous handle completely before building the next one.
type Lifecycle struct {
	backend render.Backend
	surface *render.Surface
	resize  *ResizeTracker
	now     func() time.Time
	log     zerolog.Logger

	state    mountState
	handle   render.Handle
	onRender render.RenderFunc
	fadeAt   time.Time
	err      error
}

func newLifecycle(backend render.Backend, surface *render.Surface, resize *ResizeTracker, now func() time.Time, log zerolog.Logger) *Lifecycle {
	if now == nil {
		now = time.Now
	}
	return &Lifecycle{
		backend: backend,
		surface: surface,
		resize:  resize,
		now:     now,
		log:     log,
	}
}

// Construct builds a renderer for cfg and binds onRender as its frame
// callback. Without a surface the call does nothing and the next mount
// retries. A backend that is unavailable puts the lifecycle in the fallback
// state instead of failing.
func (l *Lifecycle) Construct(cfg config.VisualConfig, onRender render.RenderFunc) error {
	if l.surface == nil {
		l.log.Debug().Msg("no surface yet, skipping construct")
		return nil
	}
	l.Destroy()

	l.surface.SetOpacity(0)
	h, err := l.backend.Construct(l.surface, render.Options{Config: cfg, OnRender: l.frame})
	if err != nil {
		if errors.Is(err, render.ErrBackendUnavailable) {
			l.state = fallback
			l.err = err
			l.log.Warn().Err(err).Msg("globe renderer unavailable, showing placeholder")
			return nil
		}
		return err
	}

	l.handle = h
	l.onRender = onRender
	l.resize.Bind()
	l.fadeAt = l.now().Add(config.FadeInDelay)
	l.state = mounted
	l.log.Debug().Msg("globe renderer constructed")
	return nil
}

// Destroy stops frame delivery, cancels the fade-in, unbinds the resize
// listener and releases the handle, in that order.
func (l *Lifecycle) Destroy() {
	if l.state == unmounted {
		return
	}
	l.onRender = nil
	l.fadeAt = time.Time{}
	l.resize.Unbind()
	if l.handle != nil {
		l.handle.Destroy()
		l.handle = nil
	}
	prev := l.state
	l.state = unmounted
	l.err = nil
	l.log.Debug().Stringer("from", prev).Msg("globe renderer destroyed")
}

// Tick fires the fade-in once its delay has elapsed.
func (l *Lifecycle) Tick() {
	if l.fadeAt.IsZero() || l.now().Before(l.fadeAt) {
		return
	}
	l.fadeAt = time.Time{}
	l.surface.SetOpacity(1)
}

// Present draws one frame of the live renderer, if any.
func (l *Lifecycle) Present(dst *ebiten.Image) {
	if l.state != mounted {
		return
	}
	l.handle.Present(dst)
}

func (l *Lifecycle) frame(fs *render.FrameState) {
	if l.onRender != nil {
		l.onRender(fs)
	}
}

func (l *Lifecycle) Mounted() bool { return l.state == mounted }

func (l *Lifecycle) Fallback() bool { return l.state == fallback }

// Err is the construction failure behind the fallback state.
func (l *Lifecycle) Err() error { return l.err }
