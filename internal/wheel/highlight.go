package wheel

import "time"

// Highlight blinks one sector between its highlight colour and its base
// colour, then restores the base colour.
type Highlight struct {
	sched    Scheduler
	index    int
	color    string
	interval time.Duration
	toggles  int

	// apply sets the sector's colour override; "" clears it.
	apply  func(index int, color string)
	redraw func()

	count int
	timer Timer
	done  bool
}

// NewHighlight prepares a blink on sector index. Nothing happens until Start.
func NewHighlight(sched Scheduler, index int, color string, interval time.Duration, toggles int,
	apply func(int, string), redraw func()) *Highlight {
	return &Highlight{
		sched:    sched,
		index:    index,
		color:    color,
		interval: interval,
		toggles:  toggles,
		apply:    apply,
		redraw:   redraw,
	}
}

// Start arms the first toggle one interval from now.
func (h *Highlight) Start() {
	if h.done || h.timer != nil {
		return
	}
	if h.toggles <= 0 {
		h.finish()
		return
	}
	h.timer = h.sched.AfterFunc(h.interval, h.tick)
}

func (h *Highlight) tick() {
	h.timer = nil
	if h.done {
		return
	}
	if h.count%2 == 0 {
		h.apply(h.index, h.color)
	} else {
		h.apply(h.index, "")
	}
	h.redraw()
	h.count++

	if h.count >= h.toggles {
		h.finish()
		return
	}
	h.timer = h.sched.AfterFunc(h.interval, h.tick)
}

func (h *Highlight) finish() {
	h.done = true
	h.apply(h.index, "")
	h.redraw()
}

// Cancel stops the blink and restores the base colour.
// Returns false if the highlight had already finished.
func (h *Highlight) Cancel() bool {
	if h.done {
		return false
	}
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.finish()
	return true
}

// Active reports whether the blink is still running.
func (h *Highlight) Active() bool {
	return !h.done
}

// Index returns the highlighted sector.
func (h *Highlight) Index() int {
	return h.index
}

// Toggles returns how many colour changes have happened so far.
func (h *Highlight) Toggles() int {
	return h.count
}
