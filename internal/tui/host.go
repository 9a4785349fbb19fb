package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/spinwheel/internal/wheel"
)

// frameMsg delivers the pending frame callback.
type frameMsg struct{}

// timerMsg delivers an AfterFunc callback by id.
type timerMsg struct{ id int }

// teaHost is the Scheduler behind the TUI. Scheduling only records a
// command; the model drains them into its Update result.
type teaHost struct {
	frameInterval time.Duration
	nextID        int
	timers        map[int]func()
	frame         func()
	frameInFlight bool
	pending       []tea.Cmd
}

func newTeaHost(frameInterval time.Duration) *teaHost {
	if frameInterval <= 0 {
		frameInterval = wheel.DefaultFrameInterval
	}
	return &teaHost{
		frameInterval: frameInterval,
		timers:        make(map[int]func()),
	}
}

type teaTimer struct {
	host *teaHost
	id   int
}

func (t teaTimer) Stop() bool {
	if _, ok := t.host.timers[t.id]; !ok {
		return false
	}
	delete(t.host.timers, t.id)
	return true
}

// AfterFunc implements wheel.Scheduler.
func (h *teaHost) AfterFunc(d time.Duration, f func()) wheel.Timer {
	h.nextID++
	id := h.nextID
	h.timers[id] = f
	h.pending = append(h.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
	return teaTimer{host: h, id: id}
}

// RequestFrame implements wheel.Scheduler. Only one frame tick is in flight
// at a time; a later request replaces the callback.
func (h *teaHost) RequestFrame(f func()) {
	h.frame = f
	if h.frameInFlight {
		return
	}
	h.frameInFlight = true
	h.pending = append(h.pending, tea.Tick(h.frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	}))
}

func (h *teaHost) deliverFrame() {
	h.frameInFlight = false
	f := h.frame
	h.frame = nil
	if f != nil {
		f()
	}
}

func (h *teaHost) deliverTimer(id int) {
	f, ok := h.timers[id]
	if !ok {
		return
	}
	delete(h.timers, id)
	f()
}

// drain returns the commands queued since the last call.
func (h *teaHost) drain() tea.Cmd {
	if len(h.pending) == 0 {
		return nil
	}
	cmds := h.pending
	h.pending = nil
	return tea.Batch(cmds...)
}

func (h *teaHost) activeTimers() int {
	return len(h.timers)
}
