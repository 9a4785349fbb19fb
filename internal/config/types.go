package config

import (
	"time"

	"github.com/rileyhilliard/spinwheel/internal/wheel"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .wheel.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Wheel     WheelConfig     `yaml:"wheel" mapstructure:"wheel"`
	Spin      SpinConfig      `yaml:"spin" mapstructure:"spin"`
	Highlight HighlightConfig `yaml:"highlight" mapstructure:"highlight"`
	Controls  ControlsConfig  `yaml:"controls" mapstructure:"controls"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// WheelConfig describes the sectors.
type WheelConfig struct {
	// Sectors is the number of numbered slices (labels run 1..Sectors).
	Sectors int `yaml:"sectors" mapstructure:"sectors"`

	// Colors are hex fills, cycled when shorter than Sectors.
	Colors []string `yaml:"colors" mapstructure:"colors"`

	// HighlightColors are the blink variants, paired with Colors by index.
	HighlightColors []string `yaml:"highlight_colors" mapstructure:"highlight_colors"`

	// Radius is the wheel radius in terminal rows.
	Radius int `yaml:"radius" mapstructure:"radius"`
}

// SpinConfig controls the physics of a spin.
type SpinConfig struct {
	MinVelocity   float64       `yaml:"min_velocity" mapstructure:"min_velocity"`
	VelocityRange float64       `yaml:"velocity_range" mapstructure:"velocity_range"`
	Decay         float64       `yaml:"decay" mapstructure:"decay"`
	Epsilon       float64       `yaml:"epsilon" mapstructure:"epsilon"`
	StepScale     float64       `yaml:"step_scale" mapstructure:"step_scale"`
	StopGrace     time.Duration `yaml:"stop_grace" mapstructure:"stop_grace"`
	FrameInterval time.Duration `yaml:"frame_interval" mapstructure:"frame_interval"`
}

// HighlightConfig controls the winner blink.
type HighlightConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
	Toggles  int           `yaml:"toggles" mapstructure:"toggles"`
}

// ButtonConfig is the look of the control button in one phase.
type ButtonConfig struct {
	Label      string `yaml:"label" mapstructure:"label"`
	Foreground string `yaml:"foreground" mapstructure:"foreground"`
	Background string `yaml:"background" mapstructure:"background"`
	Hover      string `yaml:"hover" mapstructure:"hover"`
}

// ControlsConfig holds the button and result line text.
type ControlsConfig struct {
	Start        ButtonConfig `yaml:"start" mapstructure:"start"`
	Stop         ButtonConfig `yaml:"stop" mapstructure:"stop"`
	Next         ButtonConfig `yaml:"next" mapstructure:"next"`
	ResultPrefix string       `yaml:"result_prefix" mapstructure:"result_prefix"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with the stock wheel.
func DefaultConfig() *Config {
	params := wheel.DefaultParams()
	controls := wheel.DefaultControls()

	return &Config{
		Version: CurrentConfigVersion,
		Wheel: WheelConfig{
			Sectors:         wheel.DefaultSectors,
			Colors:          append([]string(nil), wheel.DefaultColors...),
			HighlightColors: append([]string(nil), wheel.DefaultHighlightColors...),
			Radius:          8,
		},
		Spin: SpinConfig{
			MinVelocity:   params.MinVelocity,
			VelocityRange: params.VelocityRange,
			Decay:         params.Decay,
			Epsilon:       params.Epsilon,
			StepScale:     params.StepScale,
			StopGrace:     params.StopGrace,
			FrameInterval: wheel.DefaultFrameInterval,
		},
		Highlight: HighlightConfig{
			Interval: params.HighlightInterval,
			Toggles:  params.HighlightToggles,
		},
		Controls: ControlsConfig{
			Start:        buttonConfig(controls.StartLabel, controls.StartStyle),
			Stop:         buttonConfig(controls.StopLabel, controls.StopStyle),
			Next:         buttonConfig(controls.NextLabel, controls.NextStyle),
			ResultPrefix: controls.ResultPrefix,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

func buttonConfig(label string, style wheel.ButtonStyle) ButtonConfig {
	return ButtonConfig{
		Label:      label,
		Foreground: style.Foreground,
		Background: style.Background,
		Hover:      style.Hover,
	}
}

func (b ButtonConfig) style() wheel.ButtonStyle {
	return wheel.ButtonStyle{Foreground: b.Foreground, Background: b.Background, Hover: b.Hover}
}

// WheelLayout builds the sector table.
func (c *Config) WheelLayout() wheel.Wheel {
	return wheel.NewWheel(c.Wheel.Sectors, c.Wheel.Colors, c.Wheel.HighlightColors)
}

// Params converts the spin and highlight sections for the state machine.
func (c *Config) Params() wheel.Params {
	return wheel.Params{
		MinVelocity:       c.Spin.MinVelocity,
		VelocityRange:     c.Spin.VelocityRange,
		Decay:             c.Spin.Decay,
		Epsilon:           c.Spin.Epsilon,
		StepScale:         c.Spin.StepScale,
		StopGrace:         c.Spin.StopGrace,
		HighlightInterval: c.Highlight.Interval,
		HighlightToggles:  c.Highlight.Toggles,
	}
}

// ControlSet converts the controls section for the state machine.
func (c *Config) ControlSet() wheel.Controls {
	return wheel.Controls{
		StartLabel:   c.Controls.Start.Label,
		StopLabel:    c.Controls.Stop.Label,
		NextLabel:    c.Controls.Next.Label,
		ResultPrefix: c.Controls.ResultPrefix,
		StartStyle:   c.Controls.Start.style(),
		StopStyle:    c.Controls.Stop.style(),
		NextStyle:    c.Controls.Next.style(),
	}
}
