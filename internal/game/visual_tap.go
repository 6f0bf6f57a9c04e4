package game

// frameSample is what one frame submitted to the renderer.
type frameSample struct {
	Rotation float64
	Offset   float64
	Width    int
}

// frameTap records the last N frame submissions into a ring buffer so the
// HUD can draw how the drag offset settled.
type frameTap struct {
	buffer    []frameSample
	nextIndex int
	count     int
}

func newFrameTap(ringSize int) *frameTap {
	return &frameTap{buffer: make([]frameSample, ringSize)}
}

func (t *frameTap) record(s frameSample) {
	t.buffer[t.nextIndex] = s
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.count < len(t.buffer) {
		t.count++
	}
}

// snapshot returns up to the last n samples, most recent last.
func (t *frameTap) snapshot(n int) []frameSample {
	if n > t.count {
		n = t.count
	}
	out := make([]frameSample, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := 0; i < n; i++ {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
