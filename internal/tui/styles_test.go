package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/spinwheel/internal/wheel"
	"github.com/stretchr/testify/assert"
)

func TestButtonStyle_Hover(t *testing.T) {
	s := wheel.ButtonStyle{Foreground: "#FFFFFF", Background: "#0957D0", Hover: "#0747A0"}

	assert.Equal(t, lipgloss.Color("#0957D0"), ButtonStyle(s, false).GetBackground())
	assert.Equal(t, lipgloss.Color("#0747A0"), ButtonStyle(s, true).GetBackground())
}

func TestButtonStyle_NoHoverColour(t *testing.T) {
	s := wheel.ButtonStyle{Background: "#F39C12"}

	assert.Equal(t, lipgloss.Color("#F39C12"), ButtonStyle(s, true).GetBackground())
}

func TestButtonWidth(t *testing.T) {
	assert.Equal(t, len("Next player")+2*buttonPadding, buttonWidth("Next player"))
}
