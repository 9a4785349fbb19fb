package tui

import (
	"sort"
	"strconv"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/spinwheel/internal/ui"
	"github.com/rileyhilliard/spinwheel/internal/wheel"
	wtesting "github.com/rileyhilliard/spinwheel/internal/wheel/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	spaceKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	params := wheel.DefaultParams()
	params.StopGrace = 100 * time.Millisecond
	return NewModel(Options{
		Wheel:         wheel.DefaultWheel(),
		Params:        params,
		Controls:      wheel.DefaultControls(),
		FrameInterval: 10 * time.Millisecond,
		Radius:        6,
		Plain:         true,
		Rand:          wtesting.FixedRand(0.5),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// fireTimers delivers every armed timer in id order.
func fireTimers(t *testing.T, m Model) Model {
	t.Helper()
	var ids []int
	for id := range m.host.timers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		m, _ = update(t, m, timerMsg{id: id})
	}
	return m
}

func frames(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m, _ = update(t, m, frameMsg{})
	}
	return m
}

// spinToSettle starts, stops, expires the grace period and runs frames
// until the wheel settles.
func spinToSettle(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, enterKey)
	m = frames(t, m, 5)
	m, _ = update(t, m, enterKey)
	m = fireTimers(t, m)
	for i := 0; i < 1000 && m.machine.Phase() != wheel.PhaseSettled; i++ {
		m, _ = update(t, m, frameMsg{})
	}
	require.Equal(t, wheel.PhaseSettled, m.machine.Phase())
	return m
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, wheel.PhaseIdle, m.machine.Phase())
	assert.Equal(t, "Start", m.screen.label)
	assert.Equal(t, "Result: ", m.screen.text)
	assert.Equal(t, 1, m.screen.draws)
	assert.Len(t, m.screen.sectors, 10)
	assert.Equal(t, ui.SpinnerComponentPending, m.status.State)
	assert.Nil(t, m.Init())

	view := m.View()
	assert.Contains(t, view, "Start")
	assert.Contains(t, view, "Result:")
	assert.Contains(t, view, "no spins yet")
	assert.Contains(t, view, ui.PointerDown)
}

func TestNewModel_DefaultControls(t *testing.T) {
	m := NewModel(Options{Rand: wtesting.FixedRand(0)})

	assert.Equal(t, "Start", m.screen.label)
	assert.Equal(t, ui.DefaultRadius, m.radius)
}

func TestModel_PressStarts(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, spaceKey)

	assert.Equal(t, wheel.PhaseSpinning, m.machine.Phase())
	assert.Equal(t, "Stop", m.screen.label)
	assert.Equal(t, "#DA5A56", m.screen.style.Background)
	assert.NotNil(t, cmd, "a frame tick should be queued")
	assert.True(t, m.host.frameInFlight)
	assert.Equal(t, ui.SpinnerComponentInProgress, m.status.State)
	assert.Contains(t, m.View(), "1st round")
}

func TestModel_FramesTurnTheWheel(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, enterKey)

	m = frames(t, m, 3)

	assert.InDelta(t, 1.5, m.machine.Angle(), 1e-9)
	assert.InDelta(t, 1.5, m.screen.angle, 1e-9)
	assert.Equal(t, 3, m.trace.count)
	assert.Contains(t, m.View(), "rad/frame")
}

func TestModel_StopShowsGraceThenDecays(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, enterKey)
	m = frames(t, m, 2)

	m, _ = update(t, m, enterKey)

	assert.True(t, m.machine.StopPending())
	assert.Equal(t, wheel.PhaseSpinning, m.machine.Phase())
	assert.Equal(t, "Stop", m.screen.label)
	assert.False(t, m.graceStart.IsZero())
	assert.Contains(t, m.View(), statusStopping)

	m = fireTimers(t, m)

	assert.Equal(t, wheel.PhaseDecelerating, m.machine.Phase())
	assert.True(t, m.graceStart.IsZero())
	assert.Contains(t, m.View(), statusSlowing)
}

func TestModel_SettlePublishesResult(t *testing.T) {
	m := spinToSettle(t, newTestModel(t))

	res, ok := m.machine.Result()
	require.True(t, ok)
	label := strconv.Itoa(res.Label)

	assert.Equal(t, "Next player", m.screen.label)
	assert.Equal(t, "Result: "+label, m.screen.text)
	assert.Equal(t, ui.SpinnerComponentSuccess, m.status.State)

	view := m.View()
	assert.Contains(t, view, "Landed on "+label)
	assert.Contains(t, view, "last "+label)
}

func TestModel_HighlightBlinksOut(t *testing.T) {
	m := spinToSettle(t, newTestModel(t))
	require.True(t, m.machine.HighlightActive())

	for i := 0; i < 10 && m.host.activeTimers() > 0; i++ {
		m = fireTimers(t, m)
	}

	assert.False(t, m.machine.HighlightActive())
	for _, s := range m.screen.sectors {
		assert.False(t, s.Highlighted)
	}
}

func TestModel_NextPlayerResets(t *testing.T) {
	m := spinToSettle(t, newTestModel(t))
	angle := m.machine.Angle()

	m, _ = update(t, m, enterKey)

	assert.Equal(t, wheel.PhaseIdle, m.machine.Phase())
	assert.Equal(t, "Start", m.screen.label)
	assert.Equal(t, "Result: ", m.screen.text)
	assert.Equal(t, angle, m.machine.Angle())
	assert.Equal(t, ui.SpinnerComponentPending, m.status.State)
}

func TestModel_MouseHoverAndClick(t *testing.T) {
	m := newTestModel(t)
	row := m.buttonRow()

	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: row, Action: tea.MouseActionMotion})
	assert.True(t, m.hover)

	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: row - 1, Action: tea.MouseActionMotion})
	assert.False(t, m.hover)

	// click off the button does nothing
	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, wheel.PhaseIdle, m.machine.Phase())

	m, cmd := update(t, m, tea.MouseMsg{X: 1, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, wheel.PhaseSpinning, m.machine.Phase())
	assert.NotNil(t, cmd)
	assert.True(t, m.hover, "the returned model keeps the hover set by the click")
}

func TestModel_OverButton(t *testing.T) {
	m := newTestModel(t)
	row := m.buttonRow()
	width := buttonWidth("Start")

	assert.True(t, m.overButton(0, row))
	assert.True(t, m.overButton(width-1, row))
	assert.False(t, m.overButton(width, row))
	assert.False(t, m.overButton(0, row+1))
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	// presses are swallowed while help is open
	m, _ = update(t, m, enterKey)
	assert.Equal(t, wheel.PhaseIdle, m.machine.Phase())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, enterKey)
	m, _ = update(t, m, enterKey)
	require.True(t, m.machine.StopPending())

	m, cmd := update(t, m, runeKey('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
	assert.Equal(t, 0, m.host.activeTimers())
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 100, m.help.Width)
}

func TestModel_GraceProgress(t *testing.T) {
	m := newTestModel(t)
	now := time.Unix(100, 0)
	m.now = func() time.Time { return now }
	m, _ = update(t, m, enterKey)
	m, _ = update(t, m, enterKey)

	assert.Zero(t, m.graceProgress())

	now = now.Add(50 * time.Millisecond)
	assert.InDelta(t, 50, m.graceProgress(), 1e-9)

	now = now.Add(time.Second)
	assert.Equal(t, 100.0, m.graceProgress())
}
