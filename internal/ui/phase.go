package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// DividerWidth is the default width for divider lines.
const DividerWidth = 48

// RoundReport is one finished spin as printed by the headless runner.
type RoundReport struct {
	Round      int
	Label      int
	SpinTime   time.Duration // start to settle, virtual time
	Frames     int
	PeakSpeed  float64
	Velocities []float64
}

// PhaseDisplay renders headless spin progress to an output writer.
type PhaseDisplay struct {
	w      io.Writer
	prefix string
}

// NewPhaseDisplay creates a display writing to w. prefix is printed before
// every result label ("Result: ").
func NewPhaseDisplay(w io.Writer, prefix string) *PhaseDisplay {
	return &PhaseDisplay{w: w, prefix: prefix}
}

// RenderPhase renders a phase change inside a round.
// Shows:   ◐ spinning (0.00s)
func (pd *PhaseDisplay) RenderPhase(symbol, name string, at time.Duration) {
	style := lipgloss.NewStyle().Foreground(ColorSecondary)
	timingStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	fmt.Fprintf(pd.w, "  %s %s %s\n", style.Render(symbol), name, timingStyle.Render("("+FormatDuration(at)+")"))
}

// RenderRound renders a settled round.
// Shows: ✓ 3rd round  Result: 7  4.6s, 274 frames
func (pd *PhaseDisplay) RenderRound(r RoundReport) {
	symbolStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	resultStyle := lipgloss.NewStyle().Bold(true)
	timingStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	fmt.Fprintf(pd.w, "%s %s round  %s  %s\n",
		symbolStyle.Render(SymbolSuccess),
		humanize.Ordinal(r.Round),
		resultStyle.Render(fmt.Sprintf("%s%d", pd.prefix, r.Label)),
		timingStyle.Render(fmt.Sprintf("%s, %s frames", FormatDuration(r.SpinTime), humanize.Comma(int64(r.Frames)))),
	)
	if len(r.Velocities) > 0 {
		fmt.Fprintf(pd.w, "  %s\n", RenderSparkline(r.Velocities, DividerWidth, r.PeakSpeed))
	}
}

// RenderTally renders how often each label won.
func (pd *PhaseDisplay) RenderTally(labels []int, counts map[int]int, rounds int) {
	style := lipgloss.NewStyle().Foreground(ColorMuted)
	for _, l := range labels {
		c := counts[l]
		pct := 0.0
		if rounds > 0 {
			pct = float64(c) / float64(rounds) * 100
		}
		fmt.Fprintf(pd.w, "  %3d %s %s\n", l, RenderBar(pct, BarConfig{Width: 20}), style.Render(fmt.Sprintf("%d (%.0f%%)", c, pct)))
	}
}

// Divider renders a horizontal line.
func (pd *PhaseDisplay) Divider() {
	fmt.Fprintf(pd.w, "%s\n", FormatDivider(DividerWidth))
}

// Newline writes an empty line.
func (pd *PhaseDisplay) Newline() {
	fmt.Fprintln(pd.w)
}

// FormatDivider returns a divider line as a string.
func FormatDivider(width int) string {
	style := lipgloss.NewStyle().Foreground(ColorMuted)
	return style.Render(strings.Repeat("━", width))
}

// FormatDuration formats a duration for display (e.g., "0.30s", "1.2s").
func FormatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
