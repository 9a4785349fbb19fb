package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/spinwheel/internal/logger"
	"github.com/rileyhilliard/spinwheel/internal/ui"
	"github.com/rileyhilliard/spinwheel/internal/wheel"
)

// Status line text per phase.
const (
	statusIdle     = "Press space to spin"
	statusSpinning = "Spinning"
	statusStopping = "Stopping"
	statusSlowing  = "Slowing down"
)

// recentResults is how many past labels the header shows.
const recentResults = 5

// Options configures the TUI.
type Options struct {
	Wheel         wheel.Wheel
	Params        wheel.Params
	Controls      wheel.Controls
	FrameInterval time.Duration
	Radius        int
	Plain         bool // no colour: draw sectors with fill runes
	Rand          wheel.RandomSource
	Logger        logger.Logger
}

// Model is the Bubble Tea model for the wheel.
type Model struct {
	machine *wheel.Machine
	host    *teaHost
	screen  *screen
	trace   *trace

	keys   keyMap
	help   help.Model
	status ui.SpinnerComponent

	radius int
	plain  bool

	width    int
	height   int
	hover    bool
	showHelp bool
	quitting bool

	lastPhase  wheel.Phase
	graceStart time.Time
	now        func() time.Time
}

// NewModel creates the machine and wires it to the model's scheduler and
// screen.
func NewModel(opts Options) Model {
	host := newTeaHost(opts.FrameInterval)
	scr := &screen{}
	if opts.Controls == (wheel.Controls{}) {
		opts.Controls = wheel.DefaultControls()
	}

	machine := wheel.New(wheel.Options{
		Wheel:     opts.Wheel,
		Params:    opts.Params,
		Controls:  opts.Controls,
		Scheduler: host,
		Renderer:  scr,
		Control:   scr,
		Display:   scr,
		Rand:      opts.Rand,
		Logger:    opts.Logger,
	})

	radius := opts.Radius
	if radius <= 0 {
		radius = ui.DefaultRadius
	}

	return Model{
		machine:   machine,
		host:      host,
		screen:    scr,
		trace:     newTrace(DefaultTraceSize),
		keys:      defaultKeyMap(),
		help:      help.New(),
		status:    ui.NewSpinnerComponent(statusIdle),
		radius:    radius,
		plain:     opts.Plain,
		lastPhase: machine.Phase(),
		now:       time.Now,
	}
}

// Machine exposes the state machine, mostly for tests.
func (m Model) Machine() *wheel.Machine {
	return m.machine
}

// Init has nothing to start; the wheel waits for the first press.
func (m Model) Init() tea.Cmd {
	return m.host.drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		m.host.deliverFrame()
		cmd := m.sync()
		if m.machine.Phase().Active() {
			m.trace.push(m.machine.Velocity())
		}
		return m, cmd

	case timerMsg:
		m.host.deliverTimer(msg.id)
		return m, m.sync()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.status, cmd = m.status.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleMouse tracks hover over the button and presses it on left click.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	over := m.overButton(msg.X, msg.Y)
	m.hover = over

	if over && !m.showHelp && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.machine.Press()
		return m.sync()
	}
	return nil
}

// overButton reports whether the cell (x, y) is on the rendered button.
func (m Model) overButton(x, y int) bool {
	return y == m.buttonRow() && x >= 0 && x < buttonWidth(m.screen.label)
}

// sync folds machine state into the status line after anything that may
// have moved the machine, and returns queued scheduler commands.
func (m *Model) sync() tea.Cmd {
	var cmds []tea.Cmd

	phase := m.machine.Phase()
	if phase != m.lastPhase {
		cmds = append(cmds, m.enterPhase(phase))
		m.lastPhase = phase
	}

	if m.machine.StopPending() {
		if m.graceStart.IsZero() {
			m.graceStart = m.now()
			m.status.Start(statusStopping)
		}
	} else {
		m.graceStart = time.Time{}
	}

	cmds = append(cmds, m.host.drain())
	return tea.Batch(cmds...)
}

func (m *Model) enterPhase(p wheel.Phase) tea.Cmd {
	switch p {
	case wheel.PhaseIdle:
		m.status.Reset(statusIdle)
	case wheel.PhaseSpinning:
		m.trace.reset()
		return m.status.Start(statusSpinning)
	case wheel.PhaseDecelerating:
		return m.status.Start(statusSlowing)
	case wheel.PhaseSettled:
		if res, ok := m.machine.Result(); ok {
			m.status.Success(fmt.Sprintf("Landed on %d", res.Label))
		}
	}
	return nil
}

// graceProgress returns how much of the stop grace period has passed, 0-100.
func (m Model) graceProgress() float64 {
	grace := m.machine.Params().StopGrace
	if m.graceStart.IsZero() || grace <= 0 {
		return 0
	}
	return ui.ClampPercent(float64(m.now().Sub(m.graceStart)) / float64(grace) * 100)
}
