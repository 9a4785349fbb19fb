package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/spinwheel/internal/errors"
	"github.com/rileyhilliard/spinwheel/internal/logger"
	"github.com/rileyhilliard/spinwheel/internal/tui"
	"github.com/rileyhilliard/spinwheel/internal/ui"
	"github.com/rileyhilliard/spinwheel/internal/wheel"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// debugLogFile receives log output while the TUI owns the terminal.
const debugLogFile = "wheel-debug.log"

var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Spin the wheel interactively (same as running wheel with no command)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return spinCommand(cmd)
	},
}

func init() {
	rootCmd.AddCommand(spinCmd)
}

// spinCommand runs the interactive wheel, or a single headless round when
// there is no terminal.
func spinCommand(cmd *cobra.Command) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if !isInteractive() {
		s.log.Debug("no terminal attached, running one headless round")
		return simulateOneRound(cmd.OutOrStdout(), s)
	}

	if verbose || logger.DebugEnabled() {
		f, err := openDebugLog(debugLogFile)
		if err != nil {
			return err
		}
		defer f.Close()
	}

	model := tui.NewModel(tui.Options{
		Wheel:         s.cfg.WheelLayout(),
		Params:        s.cfg.Params(),
		Controls:      s.cfg.ControlSet(),
		FrameInterval: s.cfg.Spin.FrameInterval,
		Radius:        s.cfg.Wheel.Radius,
		Plain:         s.plain,
		Rand:          s.rand,
		Logger:        s.log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"The wheel UI stopped unexpectedly",
			"Try a larger terminal, or run 'wheel simulate' instead")
	}

	if fm, ok := final.(tui.Model); ok {
		printSession(cmd.OutOrStdout(), fm.Machine().History())
	}
	return nil
}

// openDebugLog points the standard logger at path while the TUI runs.
func openDebugLog(path string) (io.Closer, error) {
	f, err := tea.LogToFile(path, "wheel")
	if err != nil {
		return nil, errors.Wrap(err, "Failed to open debug log "+path)
	}
	return f, nil
}

// isInteractive reports whether both stdin and stdout are terminals.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// printSession prints the results of the rounds played in the TUI.
func printSession(w io.Writer, history []wheel.Result) {
	if len(history) == 0 {
		return
	}
	labels := make([]string, len(history))
	for i, r := range history {
		labels[i] = fmt.Sprint(r.Label)
	}
	muted := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	noun := "rounds"
	if len(history) == 1 {
		noun = "round"
	}
	fmt.Fprintf(w, "%s %d %s: %s\n",
		lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render(ui.SymbolSuccess),
		len(history), noun, muted.Render(strings.Join(labels, ", ")))
}
