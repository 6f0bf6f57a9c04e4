package game

import "github.com/hajimehoshi/ebiten/v2"

const (
	cursorGrab     = ebiten.CursorShapePointer
	cursorGrabbing = ebiten.CursorShapeMove
)

// PointerState is the drag gesture in progress. AnchorX is only meaningful
// while Engaged.
type PointerState struct {
	Engaged bool
	AnchorX float64
}

// PointerTracker turns pointer and touch events into drag updates:
// Idle -> Dragging on Down, Dragging -> Idle on Up, Cancel or Leave.
type PointerTracker struct {
	state     PointerState
	lastDelta float64
	out       *mailbox
	setCursor func(ebiten.CursorShapeType)
}

func newPointerTracker(out *mailbox, setCursor func(ebiten.CursorShapeType)) *PointerTracker {
	if setCursor == nil {
		setCursor = func(ebiten.CursorShapeType) {}
	}
	return &PointerTracker{out: out, setCursor: setCursor}
}

func (p *PointerTracker) State() PointerState { return p.state }

func (p *PointerTracker) Dragging() bool { return p.state.Engaged }

// Down starts a drag anchored at x. A second Down while dragging is ignored so
// the anchor never moves mid-drag.
func (p *PointerTracker) Down(x float64) {
	if p.state.Engaged {
		return
	}
	p.state = PointerState{Engaged: true, AnchorX: x}
	p.lastDelta = 0
	p.setCursor(cursorGrabbing)
	p.out.post(dragStarted{})
}

// Move publishes the cumulative distance from the anchor. Moves while idle
// are ignored.
func (p *PointerTracker) Move(x float64) {
	if !p.state.Engaged {
		return
	}
	delta := x - p.state.AnchorX
	if delta == p.lastDelta {
		return
	}
	p.lastDelta = delta
	p.out.post(dragMoved{delta: delta})
}

func (p *PointerTracker) Up()     { p.release() }
func (p *PointerTracker) Cancel() { p.release() }
func (p *PointerTracker) Leave()  { p.release() }

// Reset returns to idle on teardown or config replacement.
func (p *PointerTracker) Reset() { p.release() }

func (p *PointerTracker) release() {
	if !p.state.Engaged {
		return
	}
	p.state = PointerState{}
	p.lastDelta = 0
	p.setCursor(cursorGrab)
	p.out.post(dragEnded{})
}
