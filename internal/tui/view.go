package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/spinwheel/internal/ui"
)

// Fixed rows above the wheel: the header and a blank line.
const wheelTop = 2

const graceBarWidth = 16

// View renders the wheel screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderScreen()
}

func (m Model) renderScreen() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(ui.RenderWheel(m.screen.angle, m.screen.sectors, m.screen.pointer,
		ui.WheelOptions{Radius: m.radius, Plain: m.plain}))
	b.WriteString("\n\n")

	b.WriteString(ResultStyle.Render(m.screen.text))
	b.WriteString("\n")
	b.WriteString(ButtonStyle(m.screen.style, m.hover).Render(m.screen.label))
	b.WriteString("\n")
	b.WriteString(" " + m.status.View())
	b.WriteString("\n")
	b.WriteString(m.renderMotion())
	b.WriteString("\n\n")
	b.WriteString(FooterStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// buttonRow is the screen row the button is drawn on.
func (m Model) buttonRow() int {
	_, h := ui.WheelSize(m.radius)
	// header, blank, wheel, blank, result, then the button
	return wheelTop + h + 2
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Render("wheel")

	round := "no spins yet"
	if n := m.machine.Round(); n > 0 {
		round = humanize.Ordinal(n) + " round"
	}
	stats := " | " + round

	if recent := m.recentLabels(); recent != "" {
		stats += " | last " + recent
	}

	return HeaderStyle.Render(title + LabelStyle.Render(stats))
}

// recentLabels lists the latest results, newest first.
func (m Model) recentLabels() string {
	history := m.machine.History()
	var parts []string
	for i := len(history) - 1; i >= 0 && len(parts) < recentResults; i-- {
		parts = append(parts, strconv.Itoa(history[i].Label))
	}
	return strings.Join(parts, ", ")
}

// renderMotion draws the velocity sparkline, plus the grace countdown while
// a stop is pending.
func (m Model) renderMotion() string {
	samples := m.trace.slice()
	if len(samples) == 0 {
		return ""
	}

	line := " " + ui.RenderSparkline(samples, DefaultTraceSize, m.trace.peak)
	line += LabelStyle.Render(fmt.Sprintf(" %.3f rad/frame", m.machine.Velocity()))

	if m.machine.StopPending() {
		line += "  " + ui.RenderBar(m.graceProgress(), ui.GraceBarConfig(graceBarWidth))
	}
	return line
}
