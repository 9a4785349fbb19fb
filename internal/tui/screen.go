package tui

import "github.com/rileyhilliard/spinwheel/internal/wheel"

// screen is the machine's renderer, control surface and result display in
// one. It only stores what it is told; View does the drawing.
type screen struct {
	angle   float64
	sectors []wheel.Sector
	pointer wheel.Pointer
	draws   int

	label string
	style wheel.ButtonStyle
	text  string
}

func (s *screen) Draw(angle float64, sectors []wheel.Sector, pointer wheel.Pointer) {
	s.angle = angle
	s.sectors = sectors
	s.pointer = pointer
	s.draws++
}

func (s *screen) SetLabel(text string) { s.label = text }

func (s *screen) SetStyle(style wheel.ButtonStyle) { s.style = style }

func (s *screen) SetText(text string) { s.text = text }
