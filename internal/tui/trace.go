package tui

// DefaultTraceSize is how many velocity samples the sparkline keeps.
const DefaultTraceSize = 48

// trace is a fixed-size circular buffer of velocity samples.
type trace struct {
	data  []float64
	head  int
	count int
	size  int
	peak  float64
}

func newTrace(size int) *trace {
	if size <= 0 {
		size = DefaultTraceSize
	}
	return &trace{data: make([]float64, size), size: size}
}

func (t *trace) push(v float64) {
	t.data[t.head] = v
	t.head = (t.head + 1) % t.size
	if t.count < t.size {
		t.count++
	}
	t.peak = max(t.peak, v)
}

func (t *trace) reset() {
	t.head = 0
	t.count = 0
	t.peak = 0
}

// slice returns the samples oldest first.
func (t *trace) slice() []float64 {
	if t.count == 0 {
		return nil
	}
	out := make([]float64, t.count)
	start := (t.head - t.count + t.size) % t.size
	for i := 0; i < t.count; i++ {
		out[i] = t.data[(start+i)%t.size]
	}
	return out
}
