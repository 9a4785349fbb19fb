package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline draws the most recent width samples, scaled from zero to
// peak. Samples above peak are clipped to the top block; a peak of zero or
// less scales to the largest sample instead. The colour follows the last
// sample's share of peak.
func RenderSparkline(data []float64, width int, peak float64) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}

	if peak <= 0 {
		for _, v := range data {
			peak = max(peak, v)
		}
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)

	top := len(sparklineBlockRunes) - 1
	for _, v := range data {
		level := 0
		if peak > 0 {
			level = int(v / peak * float64(top))
		}
		level = min(max(level, 0), top)
		sb.WriteRune(sparklineBlockRunes[level])
	}

	percent := 0.0
	if peak > 0 {
		percent = data[len(data)-1] / peak * 100
	}
	return lipgloss.NewStyle().Foreground(speedColor(percent)).Render(sb.String())
}

// speedColor: fast is green, slowing is yellow, nearly stopped is red.
func speedColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 50:
		return ColorSuccess
	case percent >= 15:
		return ColorWarning
	default:
		return ColorError
	}
}
