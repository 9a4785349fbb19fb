package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication. ANSI codes keep them readable on
// any 16-colour terminal.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// ColorLabel is the sector number colour.
const ColorLabel lipgloss.Color = "#FFFFFF"

// ColorMode selects how colour output is decided.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ApplyColorMode sets the lipgloss colour profile for mode and returns the
// profile in effect. Auto keeps whatever lipgloss detected for stdout.
func ApplyColorMode(mode ColorMode) termenv.Profile {
	switch mode {
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		if lipgloss.ColorProfile() == termenv.Ascii {
			lipgloss.SetColorProfile(termenv.TrueColor)
		}
	}
	return lipgloss.ColorProfile()
}

// DisableColors switches to monochrome output (for --no-color).
func DisableColors() {
	ApplyColorMode(ColorNever)
}

// ColorsEnabled reports whether styled output will carry colour.
func ColorsEnabled() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}
