package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Progress bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// BarConfig configures progress bar rendering.
type BarConfig struct {
	Width    int            // Width of the bar in characters
	Brackets bool           // Whether to wrap bar in [ ]
	Color    lipgloss.Color // Empty for no styling
}

// GraceBarConfig is the look of the stop grace countdown.
func GraceBarConfig(width int) BarConfig {
	return BarConfig{Width: width, Brackets: true, Color: ColorWarning}
}

// ClampPercent clamps a percentage to the 0-100 range.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// CalculateBarCounts returns the number of filled and empty characters for a bar.
// Percent should be 0-100, width is the total bar width.
func CalculateBarCounts(percent float64, width int) (filled, empty int) {
	filled = int((percent / 100.0) * float64(width))
	empty = width - filled
	return
}

// BuildBarString builds the raw bar string (without styling) from filled/empty counts.
func BuildBarString(filledCount, emptyCount int, brackets bool) string {
	var sb strings.Builder
	sb.Grow(filledCount + emptyCount + 2)

	if brackets {
		sb.WriteRune('[')
	}
	sb.WriteString(strings.Repeat(string(BarFilled), filledCount))
	sb.WriteString(strings.Repeat(string(BarEmpty), emptyCount))
	if brackets {
		sb.WriteRune(']')
	}

	return sb.String()
}

// RenderBar renders a progress bar. Percent should be 0-100.
func RenderBar(percent float64, config BarConfig) string {
	if config.Width <= 0 {
		return ""
	}

	percent = ClampPercent(percent)
	filled, empty := CalculateBarCounts(percent, config.Width)
	bar := BuildBarString(filled, empty, config.Brackets)

	if config.Color != "" {
		bar = lipgloss.NewStyle().Foreground(config.Color).Render(bar)
	}
	return bar
}
