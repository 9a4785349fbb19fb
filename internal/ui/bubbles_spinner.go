package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames are the status line animation frames (◐ ◓ ◑ ◒).
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10,
}

// SpinnerComponentState represents the state of the status indicator.
type SpinnerComponentState int

const (
	SpinnerComponentPending SpinnerComponentState = iota
	SpinnerComponentInProgress
	SpinnerComponentSuccess
	SpinnerComponentFailed
)

// SpinnerComponent is a Bubble Tea status indicator meant to be embedded in
// a larger model. It animates only while in progress.
type SpinnerComponent struct {
	spinner   spinner.Model
	Label     string
	State     SpinnerComponentState
	StartTime time.Time
	EndTime   time.Time
}

// NewSpinnerComponent creates a pending indicator with the given label.
func NewSpinnerComponent(label string) SpinnerComponent {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorSecondary)

	return SpinnerComponent{
		spinner: sp,
		Label:   label,
		State:   SpinnerComponentPending,
	}
}

// Init returns the first tick.
func (s SpinnerComponent) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update advances the animation on spinner ticks while in progress.
func (s SpinnerComponent) Update(msg tea.Msg) (SpinnerComponent, tea.Cmd) {
	if s.State != SpinnerComponentInProgress {
		return s, nil
	}

	if tickMsg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tickMsg)
		return s, cmd
	}
	return s, nil
}

// View renders the indicator in its current state.
func (s SpinnerComponent) View() string {
	switch s.State {
	case SpinnerComponentInProgress:
		return s.spinner.View() + " " + s.Label
	case SpinnerComponentSuccess:
		return s.viewFinal(SymbolSuccess, ColorSuccess)
	case SpinnerComponentFailed:
		return s.viewFinal(SymbolFail, ColorError)
	default:
		return lipgloss.NewStyle().Foreground(ColorMuted).Render(SymbolPending) + " " + s.Label
	}
}

func (s SpinnerComponent) viewFinal(symbol string, color lipgloss.Color) string {
	symbolStyle := lipgloss.NewStyle().Foreground(color)
	timingStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	return symbolStyle.Render(symbol) + " " + s.Label + " " + timingStyle.Render(FormatDuration(s.Elapsed()))
}

// Start switches to in progress and returns the tick that drives the
// animation. Calling Start while already in progress only relabels.
func (s *SpinnerComponent) Start(label string) tea.Cmd {
	s.Label = label
	if s.State == SpinnerComponentInProgress {
		return nil
	}
	s.State = SpinnerComponentInProgress
	s.StartTime = time.Now()
	s.EndTime = time.Time{}
	return s.spinner.Tick
}

// Success marks the indicator done.
func (s *SpinnerComponent) Success(label string) {
	s.Label = label
	s.State = SpinnerComponentSuccess
	s.EndTime = time.Now()
}

// Fail marks the indicator failed.
func (s *SpinnerComponent) Fail(label string) {
	s.Label = label
	s.State = SpinnerComponentFailed
	s.EndTime = time.Now()
}

// Reset returns to pending.
func (s *SpinnerComponent) Reset(label string) {
	s.Label = label
	s.State = SpinnerComponentPending
	s.StartTime = time.Time{}
	s.EndTime = time.Time{}
}

// Elapsed returns the time between Start and the final state, or since
// Start while still in progress.
func (s SpinnerComponent) Elapsed() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}
