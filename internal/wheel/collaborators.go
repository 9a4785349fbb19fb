package wheel

// Sector is one slice as handed to the renderer, with any highlight applied.
type Sector struct {
	Index       int
	Label       int
	Color       string
	Highlighted bool
}

// Pointer describes the fixed pointer geometry.
type Pointer struct {
	Angle float64 // screen direction, radians
}

// Renderer draws the wheel rotated by angle with the pointer on top.
type Renderer interface {
	Draw(angle float64, sectors []Sector, pointer Pointer)
}

// ButtonStyle is the look of the control surface for one phase.
type ButtonStyle struct {
	Foreground string
	Background string
	Hover      string
}

// ControlSurface is the button the user presses. Its action is always
// Machine.Press; only the label and style change between phases.
type ControlSurface interface {
	SetLabel(text string)
	SetStyle(style ButtonStyle)
}

// ResultDisplay is the one-line result sink.
type ResultDisplay interface {
	SetText(text string)
}

// RandomSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type nopRenderer struct{}

func (nopRenderer) Draw(float64, []Sector, Pointer) {}

type nopControl struct{}

func (nopControl) SetLabel(string)      {}
func (nopControl) SetStyle(ButtonStyle) {}

type nopDisplay struct{}

func (nopDisplay) SetText(string) {}
