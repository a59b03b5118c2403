package debugui

// History is a fixed-size ring of samples for plotting.
type History struct {
	samples []float32
	offset  int
	filled  int
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{samples: make([]float32, size)}
}

// Push records v, overwriting the oldest sample once full.
func (h *History) Push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Values returns the samples oldest first. Unfilled slots are zero and come
// first, so plots scroll in from the right.
func (h *History) Values() []float32 {
	out := make([]float32, len(h.samples))
	copy(out, h.samples[h.offset:])
	copy(out[len(h.samples)-h.offset:], h.samples[:h.offset])
	return out
}

// Avg returns the mean of the recorded samples.
func (h *History) Avg() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples {
		sum += v
	}
	return sum / float32(h.filled)
}

func (h *History) Len() int { return h.filled }
