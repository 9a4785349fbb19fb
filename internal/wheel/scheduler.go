package wheel

import (
	"sort"
	"time"
)

// Timer is a pending Scheduler callback.
type Timer interface {
	// Stop cancels the callback. Returns false if it already fired or was stopped.
	Stop() bool
}

// Scheduler is the host's timing mechanism. Callbacks must be delivered on
// the same goroutine that drives the Machine.
type Scheduler interface {
	// AfterFunc runs f once after d.
	AfterFunc(d time.Duration, f func()) Timer
	// RequestFrame runs f on the next display refresh.
	RequestFrame(f func())
}

// DefaultFrameInterval is one refresh at 60Hz.
const DefaultFrameInterval = time.Second / 60

// VirtualClock is a deterministic Scheduler. Time only moves when Step or
// Advance is called, which makes it suitable for tests and for headless
// simulation.
type VirtualClock struct {
	frameInterval time.Duration
	now           time.Duration
	nextID        int
	timers        []*virtualTimer
	frame         func()
	frames        int
}

type virtualTimer struct {
	clock *VirtualClock
	id    int
	due   time.Duration
	f     func()
	done  bool
}

// NewVirtualClock creates a clock that advances frameInterval per Step.
func NewVirtualClock(frameInterval time.Duration) *VirtualClock {
	if frameInterval <= 0 {
		frameInterval = DefaultFrameInterval
	}
	return &VirtualClock{frameInterval: frameInterval}
}

// AfterFunc implements Scheduler.
func (c *VirtualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.nextID++
	t := &virtualTimer{clock: c, id: c.nextID, due: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// RequestFrame implements Scheduler. A second request before the frame is
// delivered replaces the first.
func (c *VirtualClock) RequestFrame(f func()) {
	c.frame = f
}

// Stop implements Timer.
func (t *virtualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.clock.remove(t)
	return true
}

func (c *VirtualClock) remove(t *virtualTimer) {
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// Now returns the elapsed virtual time.
func (c *VirtualClock) Now() time.Duration {
	return c.now
}

// Frames returns how many frame callbacks have been delivered.
func (c *VirtualClock) Frames() int {
	return c.frames
}

// PendingTimers returns the number of armed timers.
func (c *VirtualClock) PendingTimers() int {
	return len(c.timers)
}

// FramePending reports whether a frame callback is waiting.
func (c *VirtualClock) FramePending() bool {
	return c.frame != nil
}

// Idle reports whether nothing is scheduled.
func (c *VirtualClock) Idle() bool {
	return c.frame == nil && len(c.timers) == 0
}

// Step advances one frame interval: due timers fire in deadline order, then
// the pending frame callback (if any) runs.
func (c *VirtualClock) Step() {
	c.now += c.frameInterval
	c.fireDue()
	if f := c.frame; f != nil {
		c.frame = nil
		c.frames++
		f()
	}
}

// Advance moves time forward by d without delivering frames.
func (c *VirtualClock) Advance(d time.Duration) {
	c.now += d
	c.fireDue()
}

// RunUntil steps until done returns true or maxSteps is reached.
// Returns the number of steps taken.
func (c *VirtualClock) RunUntil(done func() bool, maxSteps int) int {
	steps := 0
	for steps < maxSteps && !done() {
		c.Step()
		steps++
	}
	return steps
}

// fireDue runs every timer due by the current time. Each callback sees the
// clock at its own deadline, so timers it arms are measured from there.
func (c *VirtualClock) fireDue() {
	target := c.now
	for {
		due := c.dueTimers(target)
		if len(due) == 0 {
			break
		}
		t := due[0]
		t.done = true
		c.remove(t)
		c.now = t.due
		t.f()
	}
	c.now = target
}

func (c *VirtualClock) dueTimers(at time.Duration) []*virtualTimer {
	var due []*virtualTimer
	for _, t := range c.timers {
		if t.due <= at {
			due = append(due, t)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].id < due[j].id
		}
		return due[i].due < due[j].due
	})
	return due
}
