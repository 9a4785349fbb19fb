package wheel

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// PointerAngle is the fixed screen direction of the pointer (straight up).
const PointerAngle = -math.Pi / 2

// DefaultSectors is the number of sectors on the stock wheel.
const DefaultSectors = 10

// boundaryTolerance snaps sector positions that are within float noise of a
// boundary onto it, so exact boundaries resolve left-inclusively.
const boundaryTolerance = 1e-9

// DefaultColors is the stock sector palette.
var DefaultColors = []string{
	"#ffed67", "#fecd67", "#ef4649", "#fc78a5", "#aa5590",
	"#5a5490", "#4e80c9", "#50ccf1", "#4fad52", "#b0dd42",
}

// DefaultHighlightColors pairs each stock colour with its lighter blink variant.
var DefaultHighlightColors = []string{
	"#fdf1a3", "#fbe1b0", "#f5a1a4", "#f9c2d5", "#d3a6c3",
	"#a79bca", "#8ab2e0", "#a3e1f3", "#94d4a1", "#d4e68b",
}

// Wheel is the static description of the sectors.
type Wheel struct {
	Labels          []int
	Colors          []string
	HighlightColors []string
}

// NewWheel builds a wheel with labels 1..n. Colour tables are cycled, so
// they may be shorter than n; nil tables fall back to the defaults.
func NewWheel(n int, colors, highlight []string) Wheel {
	if n <= 0 {
		n = DefaultSectors
	}
	if len(colors) == 0 {
		colors = DefaultColors
	}
	if len(highlight) == 0 {
		highlight = DefaultHighlightColors
	}
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i + 1
	}
	return Wheel{
		Labels:          labels,
		Colors:          append([]string(nil), colors...),
		HighlightColors: append([]string(nil), highlight...),
	}
}

// DefaultWheel returns the stock ten-sector wheel.
func DefaultWheel() Wheel {
	return NewWheel(DefaultSectors, DefaultColors, DefaultHighlightColors)
}

// Len returns the number of sectors.
func (w Wheel) Len() int {
	return len(w.Labels)
}

// Color returns the base colour of sector i.
func (w Wheel) Color(i int) string {
	if len(w.Colors) == 0 {
		return DefaultColors[i%len(DefaultColors)]
	}
	return w.Colors[i%len(w.Colors)]
}

// HighlightColor returns the blink colour of sector i.
func (w Wheel) HighlightColor(i int) string {
	if len(w.HighlightColors) == 0 {
		return w.Color(i)
	}
	return w.HighlightColors[i%len(w.HighlightColors)]
}

// SectorWidth is the angular size of one of n sectors.
func SectorWidth(n int) float64 {
	return TwoPi / float64(n)
}

// NormalizeAngle maps any angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	r := math.Mod(a, TwoPi)
	if r < 0 {
		r += TwoPi
	}
	// -tiny + 2π rounds up to 2π
	if r >= TwoPi {
		r = 0
	}
	return r
}

// Result is a settled outcome.
type Result struct {
	Index int     // winning sector index into Wheel.Labels
	Label int     // label shown to the user
	Angle float64 // rotation angle at settle
}

// pointerIndex returns floor(((a - π/2 + π) mod 2π) / w): the count of
// sector widths between the pointer and the rotated wheel's zero edge.
func pointerIndex(angle float64, n int) int {
	x := NormalizeAngle(NormalizeAngle(angle) - PointerAngle)
	f := x / SectorWidth(n)
	if r := math.Round(f); math.Abs(f-r) < boundaryTolerance {
		f = r
	}
	return int(math.Floor(f)) % n
}

// ResultAt returns the sector under the pointer for the given rotation.
// Positions count backwards from the pointer index; position 0 wraps to n.
func ResultAt(angle float64, labels []int) Result {
	n := len(labels)
	if n == 0 {
		return Result{Angle: angle}
	}
	pos := (n - pointerIndex(angle, n)) % n
	if pos == 0 {
		pos = n
	}
	return Result{
		Index: pos - 1,
		Label: labels[pos-1],
		Angle: angle,
	}
}

// SectorAt returns the index of the sector covering local angle a in the
// unrotated wheel.
func SectorAt(a float64, n int) int {
	f := NormalizeAngle(a) / SectorWidth(n)
	if r := math.Round(f); math.Abs(f-r) < boundaryTolerance {
		f = r
	}
	return int(math.Floor(f)) % n
}
