package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/spinwheel/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile  string
	seedFlag int64
	noColor  bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Spin a numbered wheel of fortune in the terminal",
	Long: `wheel draws a wheel of numbered sectors and spins it.

Press space (or click the button) to start. Press again to stop: the wheel
keeps full speed for a grace period, then slows down and lands on a
number, which blinks and is shown as the result. Press once more for the
next player.

When stdout is not a terminal, wheel runs a single headless round instead.

Examples:
  wheel
  wheel --seed 42
  wheel simulate --rounds 20
  wheel init`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return spinCommand(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .wheel.yaml, then ~/.config/wheel/config.yaml)")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "seed the random source for reproducible spins")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colour output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs (to wheel-debug.log in the TUI)")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError turns cobra's plain errors into the same shape as our
// structured ones.
func formatError(err error) string {
	if !isUnknownCommandError(err) {
		msg := err.Error()
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		return msg
	}

	failStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	hint := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("Run 'wheel --help' to see available commands.")
	if name := extractUnknownCommand(err); name != "" {
		return fmt.Sprintf("%s Unknown command: %s\n\n  %s\n", failStyle.Render(ui.SymbolFail), name, hint)
	}
	return fmt.Sprintf("%s %s\n\n  %s\n", failStyle.Render(ui.SymbolFail), err.Error(), hint)
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the quoted name out of
// `unknown command "foo" for "wheel"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
