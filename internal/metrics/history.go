package metrics

// DefaultHistorySize is how many trailing samples the dashboard charts
const DefaultHistorySize = 30

// History keeps the most recent samples, oldest first
type History struct {
	size    int
	samples []Sample
}

// NewHistory creates a history bounded to size samples
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Push appends s, dropping the oldest sample when full
func (h *History) Push(s Sample) {
	h.samples = append(h.samples, s)
	if len(h.samples) > h.size {
		h.samples = h.samples[len(h.samples)-h.size:]
	}
}

// Len returns the number of retained samples
func (h *History) Len() int {
	return len(h.samples)
}

// Series extracts one field over the retained samples
func (h *History) Series(field func(Sample) float64) []float64 {
	out := make([]float64, len(h.samples))
	for i, s := range h.samples {
		out[i] = field(s)
	}
	return out
}
