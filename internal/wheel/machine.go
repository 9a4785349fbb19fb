package wheel

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rileyhilliard/spinwheel/internal/logger"
)

// Params tunes the physics and timing of a spin.
type Params struct {
	MinVelocity       float64       // lowest starting velocity, radians per frame
	VelocityRange     float64       // starting velocity is uniform in [Min, Min+Range)
	Decay             float64       // multiplier applied per frame while decelerating
	Epsilon           float64       // velocity below this settles the wheel
	StepScale         float64       // angle += velocity * StepScale each frame
	StopGrace         time.Duration // full-speed period after a stop request
	HighlightInterval time.Duration
	HighlightToggles  int
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MinVelocity:       0.3,
		VelocityRange:     0.4,
		Decay:             0.98,
		Epsilon:           0.002,
		StepScale:         1,
		StopGrace:         4 * time.Second,
		HighlightInterval: 500 * time.Millisecond,
		HighlightToggles:  4,
	}
}

// withDefaults fills zero fields from DefaultParams.
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.MinVelocity <= 0 {
		p.MinVelocity = d.MinVelocity
	}
	if p.VelocityRange < 0 {
		p.VelocityRange = d.VelocityRange
	}
	if p.Decay <= 0 || p.Decay >= 1 {
		p.Decay = d.Decay
	}
	if p.Epsilon <= 0 {
		p.Epsilon = d.Epsilon
	}
	if p.StepScale <= 0 {
		p.StepScale = d.StepScale
	}
	if p.StopGrace < 0 {
		p.StopGrace = d.StopGrace
	}
	if p.HighlightInterval <= 0 {
		p.HighlightInterval = d.HighlightInterval
	}
	if p.HighlightToggles < 0 {
		p.HighlightToggles = d.HighlightToggles
	}
	return p
}

// Controls holds the button labels and styles for each phase.
type Controls struct {
	StartLabel   string
	StopLabel    string
	NextLabel    string
	ResultPrefix string
	StartStyle   ButtonStyle
	StopStyle    ButtonStyle
	NextStyle    ButtonStyle
}

// DefaultControls returns the stock labels and button colours.
func DefaultControls() Controls {
	return Controls{
		StartLabel:   "Start",
		StopLabel:    "Stop",
		NextLabel:    "Next player",
		ResultPrefix: "Result: ",
		StartStyle:   ButtonStyle{Foreground: "#FFFFFF", Background: "#0957D0", Hover: "#0747A0"},
		StopStyle:    ButtonStyle{Foreground: "#FFFFFF", Background: "#DA5A56", Hover: "#B34743"},
		NextStyle:    ButtonStyle{Foreground: "#FFFFFF", Background: "#F39C12", Hover: "#D68910"},
	}
}

// Options wires a Machine to its collaborators. Nil collaborators are
// replaced with no-ops; a nil Scheduler is not allowed.
type Options struct {
	Wheel     Wheel
	Params    Params
	Controls  Controls
	Scheduler Scheduler
	Renderer  Renderer
	Control   ControlSurface
	Display   ResultDisplay
	Rand      RandomSource
	Logger    logger.Logger
}

// Machine is the wheel spin state machine. It is not safe for concurrent
// use; every method and every scheduled callback must run on one goroutine.
type Machine struct {
	wheel    Wheel
	params   Params
	controls Controls
	sched    Scheduler
	renderer Renderer
	control  ControlSurface
	display  ResultDisplay
	rand     RandomSource
	log      logger.Logger

	angle    float64
	velocity float64
	phase    Phase

	stopTimer  Timer
	frameArmed bool
	closed     bool

	highlight *Highlight
	overrides map[int]string

	round   int
	result  Result
	settled bool
	history []Result
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// New creates a Machine in PhaseIdle at angle 0, sets up the control surface
// for Start, clears the result line and draws the initial wheel.
func New(opts Options) *Machine {
	if opts.Scheduler == nil {
		panic("wheel: Options.Scheduler is required")
	}
	m := &Machine{
		wheel:     opts.Wheel,
		params:    opts.Params.withDefaults(),
		controls:  opts.Controls,
		sched:     opts.Scheduler,
		renderer:  opts.Renderer,
		control:   opts.Control,
		display:   opts.Display,
		rand:      opts.Rand,
		log:       opts.Logger,
		phase:     PhaseIdle,
		overrides: make(map[int]string),
	}
	if m.wheel.Len() == 0 {
		m.wheel = DefaultWheel()
	}
	if m.renderer == nil {
		m.renderer = nopRenderer{}
	}
	if m.control == nil {
		m.control = nopControl{}
	}
	if m.display == nil {
		m.display = nopDisplay{}
	}
	if m.rand == nil {
		m.rand = globalRand{}
	}
	if m.log == nil {
		m.log = logger.Noop()
	}

	m.showControl(PhaseIdle)
	m.display.SetText(m.controls.ResultPrefix)
	m.draw()
	return m
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Angle returns the accumulated rotation in radians.
func (m *Machine) Angle() float64 { return m.angle }

// Velocity returns the current angular velocity in radians per frame.
func (m *Machine) Velocity() float64 { return m.velocity }

// StopPending reports whether a stop was requested and the grace period is running.
func (m *Machine) StopPending() bool { return m.stopTimer != nil }

// Round returns how many spins have been started.
func (m *Machine) Round() int { return m.round }

// Params returns the effective tuning.
func (m *Machine) Params() Params { return m.params }

// Wheel returns the sector layout.
func (m *Machine) Wheel() Wheel { return m.wheel }

// Result returns the last settled result. ok is false before the first
// settle and after Reset or Start.
func (m *Machine) Result() (res Result, ok bool) {
	return m.result, m.settled
}

// History returns every settled result in order.
func (m *Machine) History() []Result {
	out := make([]Result, len(m.history))
	copy(out, m.history)
	return out
}

// HighlightActive reports whether the winning sector is still blinking.
func (m *Machine) HighlightActive() bool {
	return m.highlight != nil && m.highlight.Active()
}

// Sectors returns the sector table with highlight overrides applied.
func (m *Machine) Sectors() []Sector {
	sectors := make([]Sector, m.wheel.Len())
	for i, label := range m.wheel.Labels {
		s := Sector{Index: i, Label: label, Color: m.wheel.Color(i)}
		if c, ok := m.overrides[i]; ok {
			s.Color = c
			s.Highlighted = true
		}
		sectors[i] = s
	}
	return sectors
}

// Press is the control surface's click handler.
func (m *Machine) Press() {
	if action, ok := pressActions[m.phase]; ok {
		action(m)
		return
	}
	m.log.Debug("press ignored in phase %s", m.phase)
}

// Start begins a new spin from Idle or Settled. It is a no-op otherwise.
func (m *Machine) Start() {
	if m.closed {
		return
	}
	if m.phase != PhaseIdle && m.phase != PhaseSettled {
		m.log.Debug("start ignored in phase %s", m.phase)
		return
	}

	m.cancelStop()
	m.cancelHighlight()
	if m.phase == PhaseSettled {
		m.display.SetText(m.controls.ResultPrefix)
	}
	m.settled = false

	m.velocity = m.params.MinVelocity + m.rand.Float64()*m.params.VelocityRange
	m.round++
	m.setPhase(PhaseSpinning)
	m.showControl(PhaseSpinning)
	m.log.Debug("round %d started at velocity %.4f", m.round, m.velocity)
	m.requestFrame()
}

// RequestStop arms the grace timer. Deceleration begins when it fires.
// No-op unless spinning with no stop already pending.
func (m *Machine) RequestStop() {
	if m.phase != PhaseSpinning || m.stopTimer != nil {
		m.log.Debug("stop ignored in phase %s (pending=%t)", m.phase, m.stopTimer != nil)
		return
	}
	m.log.Debug("stop requested, decay in %s", m.params.StopGrace)
	m.stopTimer = m.sched.AfterFunc(m.params.StopGrace, m.beginDecay)
}

func (m *Machine) beginDecay() {
	m.stopTimer = nil
	if m.phase != PhaseSpinning {
		return
	}
	m.setPhase(PhaseDecelerating)
}

// advance runs one frame. Only the armed frame callback calls it; outside
// Spinning and Decelerating it does nothing.
func (m *Machine) advance() {
	if m.closed || !m.phase.Active() {
		return
	}

	m.angle += m.velocity * m.params.StepScale

	if m.phase == PhaseDecelerating {
		m.velocity *= m.params.Decay
		if m.velocity < m.params.Epsilon {
			m.velocity = 0
			m.cancelStop()
			m.setPhase(PhaseSettled)
			m.determineResult()
			return
		}
	}

	m.draw()
	m.requestFrame()
}

// determineResult publishes the sector under the pointer and starts the
// highlight on it.
func (m *Machine) determineResult() {
	res := ResultAt(m.angle, m.wheel.Labels)
	m.result = res
	m.settled = true
	m.history = append(m.history, res)
	m.log.Debug("settled on %d (sector %d, angle %.4f)", res.Label, res.Index, res.Angle)

	m.display.SetText(fmt.Sprintf("%s%d", m.controls.ResultPrefix, res.Label))
	m.showControl(PhaseSettled)
	m.startHighlight(res.Index)
}

// Reset returns a settled wheel to Idle. The angle is kept.
func (m *Machine) Reset() {
	if m.phase != PhaseSettled {
		m.log.Debug("reset ignored in phase %s", m.phase)
		return
	}
	m.cancelHighlight()
	m.settled = false
	m.display.SetText(m.controls.ResultPrefix)
	m.setPhase(PhaseIdle)
	m.showControl(PhaseIdle)
}

// Close cancels every pending timer and ends the frame loop for good.
func (m *Machine) Close() {
	if m.closed {
		return
	}
	m.cancelStop()
	m.cancelHighlight()
	m.closed = true
}

func (m *Machine) setPhase(p Phase) {
	if m.phase == p {
		return
	}
	m.log.Debug("phase %s -> %s", m.phase, p)
	m.phase = p
}

func (m *Machine) showControl(p Phase) {
	switch p {
	case PhaseIdle:
		m.control.SetLabel(m.controls.StartLabel)
		m.control.SetStyle(m.controls.StartStyle)
	case PhaseSpinning:
		m.control.SetLabel(m.controls.StopLabel)
		m.control.SetStyle(m.controls.StopStyle)
	case PhaseSettled:
		m.control.SetLabel(m.controls.NextLabel)
		m.control.SetStyle(m.controls.NextStyle)
	}
}

func (m *Machine) requestFrame() {
	if m.frameArmed {
		return
	}
	m.frameArmed = true
	m.sched.RequestFrame(m.onFrame)
}

func (m *Machine) onFrame() {
	m.frameArmed = false
	m.advance()
}

func (m *Machine) draw() {
	m.renderer.Draw(m.angle, m.Sectors(), Pointer{Angle: PointerAngle})
}

func (m *Machine) cancelStop() {
	if m.stopTimer != nil {
		m.stopTimer.Stop()
		m.stopTimer = nil
	}
}

func (m *Machine) startHighlight(index int) {
	var h *Highlight
	apply := func(i int, color string) {
		// a replaced highlight must never touch the table again
		if m.highlight != h {
			return
		}
		if color == "" {
			delete(m.overrides, i)
		} else {
			m.overrides[i] = color
		}
	}
	h = NewHighlight(m.sched, index, m.wheel.HighlightColor(index),
		m.params.HighlightInterval, m.params.HighlightToggles, apply, m.draw)
	m.highlight = h
	h.Start()
}

func (m *Machine) cancelHighlight() {
	if m.highlight == nil {
		return
	}
	m.highlight.Cancel()
	m.highlight = nil
	for i := range m.overrides {
		delete(m.overrides, i)
	}
}
