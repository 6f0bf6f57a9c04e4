package game

// ViewportState is the square render size. Width and height are always equal.
type ViewportState struct {
	CurrentWidthPx int
}

// ResizeTracker follows the container width. While bound to a live renderer
// each change is posted as a resize update; it never touches the renderer.
type ResizeTracker struct {
	out      *mailbox
	measured int
	posted   int
	bound    bool
}

func newResizeTracker(out *mailbox) *ResizeTracker {
	return &ResizeTracker{out: out, posted: -1}
}

// Observe records a container measurement, as delivered by a window resize.
func (r *ResizeTracker) Observe(width int) {
	r.measured = width
	if r.bound && clampWidth(width) != r.posted {
		r.publish()
	}
}

// Bind registers the listener and samples the current measurement at once.
func (r *ResizeTracker) Bind() {
	r.bound = true
	r.publish()
}

func (r *ResizeTracker) Unbind() {
	r.bound = false
	r.posted = -1
}

func (r *ResizeTracker) Bound() bool { return r.bound }

func (r *ResizeTracker) publish() {
	r.posted = clampWidth(r.measured)
	r.out.post(resized{width: r.posted})
}
