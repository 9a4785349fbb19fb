package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/spinwheel/internal/errors"
	"github.com/rileyhilliard/spinwheel/internal/ui"
	"github.com/rileyhilliard/spinwheel/internal/wheel"
	"github.com/spf13/cobra"
)

// maxRoundSteps bounds a single round so a bad decay can't hang the runner.
const maxRoundSteps = 1_000_000

// simulateOptions holds options for the simulate command.
type simulateOptions struct {
	Rounds    int
	StopAfter time.Duration // virtual time between start and the stop press
	Tally     bool
	Quiet     bool // only print round lines
}

var simOpts simulateOptions

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Spin the wheel headlessly on a virtual clock",
	Long: `Run one or more rounds without a terminal UI.

Time is simulated, so a round with a four second stop grace finishes
instantly. Combine with --seed for reproducible results.

Examples:
  wheel simulate
  wheel simulate --rounds 50 --tally --quiet
  wheel simulate --seed 7 --stop-after 2s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		return runSimulation(cmd.OutOrStdout(), s, simOpts)
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntVarP(&simOpts.Rounds, "rounds", "n", 1, "number of rounds to spin")
	simulateCmd.Flags().DurationVar(&simOpts.StopAfter, "stop-after", time.Second, "virtual time to spin before pressing stop")
	simulateCmd.Flags().BoolVar(&simOpts.Tally, "tally", false, "print how often each number won")
	simulateCmd.Flags().BoolVarP(&simOpts.Quiet, "quiet", "q", false, "print only the round results")
}

// runSimulation drives a Machine on a VirtualClock, pressing the control the
// way a player would, and reports each round to w.
func runSimulation(w io.Writer, s *settings, opts simulateOptions) error {
	if opts.Rounds < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("--rounds must be at least 1, got %d", opts.Rounds),
			"Pass a positive number of rounds")
	}
	if opts.StopAfter < 0 {
		return errors.New(errors.ErrConfig,
			"--stop-after cannot be negative",
			"Use a duration like 500ms or 2s")
	}

	clock := wheel.NewVirtualClock(s.cfg.Spin.FrameInterval)
	m := wheel.New(s.machineOptions(clock))
	defer m.Close()

	pd := ui.NewPhaseDisplay(w, s.cfg.Controls.ResultPrefix)
	counts := make(map[int]int)

	for round := 1; round <= opts.Rounds; round++ {
		report, err := simulateRound(clock, m, pd, opts)
		if err != nil {
			return err
		}
		counts[report.Label]++
		pd.RenderRound(report)
	}

	if opts.Tally {
		pd.Newline()
		pd.Divider()
		pd.RenderTally(m.Wheel().Labels, counts, opts.Rounds)
	}
	return nil
}

// simulateRound plays one round: press to start, spin for StopAfter, press
// to stop, then step until the wheel settles.
func simulateRound(clock *wheel.VirtualClock, m *wheel.Machine, pd *ui.PhaseDisplay, opts simulateOptions) (ui.RoundReport, error) {
	if m.Phase() == wheel.PhaseSettled {
		m.Press()
	}

	start := clock.Now()
	startFrames := clock.Frames()
	m.Press()

	report := ui.RoundReport{Round: m.Round()}
	phase := m.Phase()
	if !opts.Quiet {
		pd.RenderPhase(ui.SymbolProgress, phase.String(), 0)
	}

	sample := func() {
		v := m.Velocity()
		if m.Phase().Active() {
			report.Velocities = append(report.Velocities, v)
		}
		if v > report.PeakSpeed {
			report.PeakSpeed = v
		}
		if p := m.Phase(); p != phase {
			phase = p
			if !opts.Quiet && p != wheel.PhaseSettled {
				pd.RenderPhase(ui.SymbolStopping, p.String(), clock.Now()-start)
			}
		}
	}
	sample()

	steps := 0
	for clock.Now()-start < opts.StopAfter && steps < maxRoundSteps {
		clock.Step()
		sample()
		steps++
	}

	m.Press()
	if !opts.Quiet && m.StopPending() {
		pd.RenderPhase(ui.SymbolPending, "stop requested", clock.Now()-start)
	}

	for m.Phase() != wheel.PhaseSettled && steps < maxRoundSteps {
		clock.Step()
		sample()
		steps++
	}
	if m.Phase() != wheel.PhaseSettled {
		return report, errors.New(errors.ErrRender,
			fmt.Sprintf("Round %d did not settle after %d frames", report.Round, steps),
			"Check spin.decay and spin.epsilon in your config")
	}

	res, _ := m.Result()
	report.Label = res.Label
	report.SpinTime = clock.Now() - start
	report.Frames = clock.Frames() - startFrames
	return report, nil
}

// simulateOneRound is the fallback when stdout is not a terminal.
func simulateOneRound(w io.Writer, s *settings) error {
	return runSimulation(w, s, simulateOptions{Rounds: 1, StopAfter: time.Second})
}
