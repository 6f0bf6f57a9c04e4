// Package render draws the dotted globe with ebiten. It knows nothing about
// pointers, themes, or lifecycles; callers hand it a VisualConfig and a
// per-frame callback and get back a Handle they must Destroy.
package render

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/globe-visualization/internal/config"
)

// ErrBackendUnavailable is returned by Construct when no renderer can be
// built, for example because the graphics context could not allocate the
// offscreen canvas.
var ErrBackendUnavailable = errors.New("render backend unavailable")

// FrameState is filled in by the per-frame callback before each draw.
type FrameState struct {
	Phi    float64
	Theta  float64
	Width  int
	Height int
}

// RenderFunc is invoked once per presented frame.
type RenderFunc func(*FrameState)

// Options carries everything a renderer is built from.
type Options struct {
	Config   config.VisualConfig
	OnRender RenderFunc
}

// Backend constructs renderers bound to a surface.
type Backend interface {
	Construct(s *Surface, opts Options) (Handle, error)
}

// Handle is one live renderer. Present is called by the host once per display
// refresh; Destroy releases everything and is safe to call twice.
type Handle interface {
	Present(dst *ebiten.Image)
	Destroy()
}

// Surface is the visible area a renderer draws into. Its opacity is owned by
// whoever owns the handle.
type Surface struct {
	opacity float64
}

func NewSurface() *Surface { return &Surface{} }

func (s *Surface) SetOpacity(v float64) { s.opacity = clamp01(v) }

func (s *Surface) Opacity() float64 { return s.opacity }
