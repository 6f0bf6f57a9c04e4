package game

// update is an immutable event produced by an input handler and applied at
// the start of the next frame.
type update interface {
	isUpdate()
}

type dragStarted struct{}

// dragMoved carries the horizontal distance since the drag started.
type dragMoved struct {
	delta float64
}

type dragEnded struct{}

type resized struct {
	width int
}

func (dragStarted) isUpdate() {}
func (dragMoved) isUpdate()   {}
func (dragEnded) isUpdate()   {}
func (resized) isUpdate()     {}

// mailbox queues updates between frames. All posts and drains happen on the
// game goroutine.
type mailbox struct {
	pending []update
}

func (m *mailbox) post(u update) {
	m.pending = append(m.pending, u)
}

func (m *mailbox) drain() []update {
	out := m.pending
	m.pending = nil
	return out
}
