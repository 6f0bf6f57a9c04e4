package game

import (
	"github.com/iburimskiy/globe-visualization/internal/config"
	"github.com/iburimskiy/globe-visualization/internal/render"
)

// RotationState holds the rotation accumulators. AutoPhi only grows while no
// drag is in progress. RawTarget is the spring target; Smoothed is the spring
// output the frame actually uses.
type RotationState struct {
	AutoPhi   float64
	RawTarget float64
	Smoothed  float64
	Dragging  bool

	dragBase float64
}

// RenderLoop is the per-frame callback. It owns the rotation and viewport
// state and applies queued input updates at the start of every frame.
type RenderLoop struct {
	Rotation RotationState
	Viewport ViewportState

	spring *Spring
	inbox  *mailbox
	tap    *frameTap
}

func newRenderLoop(inbox *mailbox, tap *frameTap) *RenderLoop {
	return &RenderLoop{
		spring: NewSpring(config.TicksPerSecond, config.SpringMass, config.SpringDamping, config.SpringStiffness),
		inbox:  inbox,
		tap:    tap,
	}
}

// Frame advances one frame and writes the rotation and square size into fs.
func (l *RenderLoop) Frame(fs *render.FrameState) {
	for _, u := range l.inbox.drain() {
		l.apply(u)
	}

	phi, size := step(&l.Rotation, l.Viewport, l.spring)
	fs.Phi = phi
	fs.Width = size
	fs.Height = size

	if l.tap != nil {
		l.tap.record(frameSample{Rotation: phi, Offset: l.Rotation.Smoothed, Width: size})
	}
}

func (l *RenderLoop) apply(u update) {
	switch u := u.(type) {
	case dragStarted:
		l.Rotation.Dragging = true
		l.Rotation.dragBase = l.Rotation.RawTarget
	case dragMoved:
		l.Rotation.RawTarget = l.Rotation.dragBase + u.delta/config.MovementDamping
		l.spring.SetTarget(l.Rotation.RawTarget)
	case dragEnded:
		l.Rotation.Dragging = false
	case resized:
		l.Viewport.CurrentWidthPx = u.width
	}
}

// step is one tick of the rotation model. It returns the frame rotation and
// the square edge length to render at.
func step(rs *RotationState, vp ViewportState, spring *Spring) (float64, int) {
	if !rs.Dragging {
		rs.AutoPhi += config.AutoRotateStep
	}
	rs.Smoothed = spring.Advance()

	size := vp.CurrentWidthPx
	if size <= 0 {
		size = config.DefaultViewport
	}
	return rs.AutoPhi + rs.Smoothed, size
}
