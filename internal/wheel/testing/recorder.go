// Package testing provides test doubles for the wheel package.
package testing

import (
	"github.com/rileyhilliard/spinwheel/internal/wheel"
)

// DrawCall records a call to Draw.
type DrawCall struct {
	Angle   float64
	Sectors []wheel.Sector
	Pointer wheel.Pointer
}

// Recorder implements wheel.Renderer, wheel.ControlSurface and
// wheel.ResultDisplay, keeping every call for assertions.
type Recorder struct {
	Draws  []DrawCall
	Labels []string
	Styles []wheel.ButtonStyle
	Texts  []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Draw implements wheel.Renderer.
func (r *Recorder) Draw(angle float64, sectors []wheel.Sector, pointer wheel.Pointer) {
	cp := make([]wheel.Sector, len(sectors))
	copy(cp, sectors)
	r.Draws = append(r.Draws, DrawCall{Angle: angle, Sectors: cp, Pointer: pointer})
}

// SetLabel implements wheel.ControlSurface.
func (r *Recorder) SetLabel(text string) {
	r.Labels = append(r.Labels, text)
}

// SetStyle implements wheel.ControlSurface.
func (r *Recorder) SetStyle(style wheel.ButtonStyle) {
	r.Styles = append(r.Styles, style)
}

// SetText implements wheel.ResultDisplay.
func (r *Recorder) SetText(text string) {
	r.Texts = append(r.Texts, text)
}

// Label returns the current button label.
func (r *Recorder) Label() string {
	if len(r.Labels) == 0 {
		return ""
	}
	return r.Labels[len(r.Labels)-1]
}

// Style returns the current button style.
func (r *Recorder) Style() wheel.ButtonStyle {
	if len(r.Styles) == 0 {
		return wheel.ButtonStyle{}
	}
	return r.Styles[len(r.Styles)-1]
}

// Text returns the current result text.
func (r *Recorder) Text() string {
	if len(r.Texts) == 0 {
		return ""
	}
	return r.Texts[len(r.Texts)-1]
}

// LastDraw returns the most recent Draw call.
func (r *Recorder) LastDraw() (DrawCall, bool) {
	if len(r.Draws) == 0 {
		return DrawCall{}, false
	}
	return r.Draws[len(r.Draws)-1], true
}

// FixedRand returns the same value forever.
type FixedRand float64

// Float64 implements wheel.RandomSource.
func (f FixedRand) Float64() float64 { return float64(f) }

// SequenceRand replays values in order, repeating the last one.
type SequenceRand struct {
	Values []float64
	next   int
}

// Float64 implements wheel.RandomSource.
func (s *SequenceRand) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next]
	if s.next < len(s.Values)-1 {
		s.next++
	}
	return v
}
