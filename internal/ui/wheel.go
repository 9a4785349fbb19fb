package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/spinwheel/internal/wheel"
)

// DefaultRadius is the wheel radius in terminal rows.
const DefaultRadius = 8

// labelRadius places sector numbers at this fraction of the radius.
const labelRadius = 0.7

// plainFills are the sector fills used when colour is off.
var plainFills = []rune{'░', '▒', '▓', '▞', '▚'}

const plainHighlight = '█'

// WheelOptions controls the terminal raster.
type WheelOptions struct {
	Radius int  // rows; columns are doubled so the disc looks round
	Plain  bool // draw with fill runes instead of colour
}

type wheelCell struct {
	r      rune
	sector int // -1 outside the disc
	label  bool
}

// WheelSize returns the rendered width and height for radius, including the
// one-cell margin that holds the pointer.
func WheelSize(radius int) (width, height int) {
	radius = clampRadius(radius)
	return 4*radius + 5, 2*radius + 3
}

// RenderWheel rasterises the wheel rotated by angle. Each cell is assigned to
// the sector whose arc contains it, using the same angle convention as the
// result calculation, so the sector drawn under the pointer is the one that
// wins.
func RenderWheel(angle float64, sectors []wheel.Sector, pointer wheel.Pointer, opts WheelOptions) string {
	radius := clampRadius(opts.Radius)
	width, height := WheelSize(radius)
	cy, cx := radius+1, 2*radius+2
	n := len(sectors)

	grid := make([][]wheelCell, height)
	for row := range grid {
		grid[row] = make([]wheelCell, width)
		for col := range grid[row] {
			grid[row][col] = wheelCell{r: ' ', sector: -1}
			if n == 0 {
				continue
			}
			dy := float64(row - cy)
			dx := float64(col-cx) / 2
			if math.Hypot(dx, dy) > float64(radius)+0.25 {
				continue
			}
			local := wheel.NormalizeAngle(math.Atan2(dy, dx) - angle)
			idx := wheel.SectorAt(local, n)
			grid[row][col] = wheelCell{r: fillRune(sectors[idx], n, opts.Plain), sector: idx}
		}
	}

	if n > 0 {
		placeLabels(grid, angle, sectors, radius, cy, cx)
	}
	placePointer(grid, pointer, radius, cy, cx)

	lines := make([]string, height)
	for row := range grid {
		lines[row] = renderRow(grid[row], sectors, opts.Plain)
	}
	return strings.Join(lines, "\n")
}

func clampRadius(r int) int {
	if r < 3 {
		return DefaultRadius
	}
	return r
}

func fillRune(s wheel.Sector, n int, plain bool) rune {
	if !plain {
		return ' '
	}
	if s.Highlighted {
		return plainHighlight
	}
	i := s.Index % len(plainFills)
	// the last sector borders sector 0; keep their fills distinct
	if s.Index == n-1 && n > 1 && i == 0 {
		i = 1
	}
	return plainFills[i]
}

func placeLabels(grid [][]wheelCell, angle float64, sectors []wheel.Sector, radius, cy, cx int) {
	w := wheel.SectorWidth(len(sectors))
	lr := labelRadius * float64(radius)
	for _, s := range sectors {
		mid := angle + (float64(s.Index)+0.5)*w
		row := cy + int(math.Round(lr*math.Sin(mid)))
		col := cx + int(math.Round(2*lr*math.Cos(mid)))
		text := []rune(strconv.Itoa(s.Label))
		start := col - len(text)/2
		for i, r := range text {
			c := start + i
			if row < 0 || row >= len(grid) || c < 0 || c >= len(grid[row]) {
				continue
			}
			if grid[row][c].sector < 0 {
				continue
			}
			grid[row][c] = wheelCell{r: r, sector: s.Index, label: true}
		}
	}
}

func placePointer(grid [][]wheelCell, pointer wheel.Pointer, radius, cy, cx int) {
	dist := float64(radius + 1)
	row := cy + int(math.Round(dist*math.Sin(pointer.Angle)))
	col := cx + int(math.Round(2*dist*math.Cos(pointer.Angle)))
	row = min(max(row, 0), len(grid)-1)
	col = min(max(col, 0), len(grid[row])-1)
	grid[row][col] = wheelCell{r: []rune(pointerGlyph(pointer.Angle))[0], sector: -1}
}

// pointerGlyph returns the arrow that points from the rim toward the hub.
func pointerGlyph(a float64) string {
	a = wheel.NormalizeAngle(a)
	switch {
	case a >= math.Pi/4 && a < 3*math.Pi/4:
		return PointerUp
	case a >= 3*math.Pi/4 && a < 5*math.Pi/4:
		return PointerRight
	case a >= 5*math.Pi/4 && a < 7*math.Pi/4:
		return PointerDown
	default:
		return PointerLeft
	}
}

func renderRow(cells []wheelCell, sectors []wheel.Sector, plain bool) string {
	var b strings.Builder
	if plain {
		for _, c := range cells {
			b.WriteRune(c.r)
		}
		return b.String()
	}

	pointerStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && cells[i].sector == cells[start].sector && cells[i].label == cells[start].label {
			continue
		}
		run := make([]rune, 0, i-start)
		for _, c := range cells[start:i] {
			run = append(run, c.r)
		}
		first := cells[start]
		switch {
		case first.sector >= 0:
			style := lipgloss.NewStyle().Background(lipgloss.Color(sectors[first.sector].Color))
			if first.label {
				style = style.Foreground(ColorLabel).Bold(true)
			}
			b.WriteString(style.Render(string(run)))
		case strings.TrimSpace(string(run)) != "":
			b.WriteString(pointerStyle.Render(string(run)))
		default:
			b.WriteString(string(run))
		}
		start = i
	}
	return b.String()
}
