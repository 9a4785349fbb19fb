package wheel

// Phase is the discrete state of the spin state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhaseDecelerating
	PhaseSettled
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseDecelerating:
		return "decelerating"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Active reports whether the frame loop runs in this phase.
func (p Phase) Active() bool {
	return p == PhaseSpinning || p == PhaseDecelerating
}

// pressActions is what the control button does in each phase.
// Phases without an entry ignore presses.
var pressActions = map[Phase]func(*Machine){
	PhaseIdle:     (*Machine).Start,
	PhaseSpinning: (*Machine).RequestStop,
	PhaseSettled:  (*Machine).Reset,
}
