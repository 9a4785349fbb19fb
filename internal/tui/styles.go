package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/spinwheel/internal/wheel"
)

// Chrome colours. The wheel and button colours come from config.
const (
	ColorBorder        = lipgloss.Color("#2A2A4A")
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")
	ColorAccent        = lipgloss.Color("#0957D0")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)
)

// buttonPadding is the horizontal padding inside the button.
const buttonPadding = 2

// ButtonStyle renders the control in its current phase colours. hover swaps
// the background for the hover variant when one is set.
func ButtonStyle(s wheel.ButtonStyle, hover bool) lipgloss.Style {
	bg := s.Background
	if hover && s.Hover != "" {
		bg = s.Hover
	}
	style := lipgloss.NewStyle().Bold(true).Padding(0, buttonPadding)
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	return style
}

// buttonWidth is the rendered width of a button with label.
func buttonWidth(label string) int {
	return lipgloss.Width(label) + 2*buttonPadding
}
