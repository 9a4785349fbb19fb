package cli

import (
	"math/rand/v2"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/spinwheel/internal/config"
	"github.com/rileyhilliard/spinwheel/internal/logger"
	"github.com/rileyhilliard/spinwheel/internal/ui"
	"github.com/rileyhilliard/spinwheel/internal/wheel"
	"github.com/spf13/cobra"
)

// logPrefix tags every log line from the CLI.
const logPrefix = "[wheel]"

// settings is the merged result of the global flags and the config file.
type settings struct {
	cfg   *config.Config
	rand  wheel.RandomSource // nil means the global source
	log   logger.Logger
	plain bool // colour is off, draw the wheel with fill runes
}

// loadSettings reads the config and applies the global flags on top. cmd
// is the command being run; it sees the root's persistent flags.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}

	mode := ui.ColorMode(cfg.Output.Color)
	if noColor {
		mode = ui.ColorNever
	}
	profile := ui.ApplyColorMode(mode)

	s := &settings{
		cfg:   cfg,
		rand:  seededRand(seedFlag, flagChanged(cmd, "seed")),
		log:   logger.NewEnvLogger(logPrefix),
		plain: profile == termenv.Ascii,
	}
	if verbose {
		s.log = logger.NewVerboseLogger(logPrefix)
	}
	logger.SetDefault(s.log)
	return s, nil
}

// flagChanged reports whether name was set on the command line, looking
// through inherited flags too.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// seededRand returns a deterministic source when a seed was given.
func seededRand(seed int64, set bool) wheel.RandomSource {
	if !set {
		return nil
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// machineOptions fills the wheel options every command shares.
func (s *settings) machineOptions(sched wheel.Scheduler) wheel.Options {
	return wheel.Options{
		Wheel:     s.cfg.WheelLayout(),
		Params:    s.cfg.Params(),
		Controls:  s.cfg.ControlSet(),
		Scheduler: sched,
		Rand:      s.rand,
		Logger:    s.log,
	}
}
