package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/rileyhilliard/spinwheel/internal/errors"
)

// Limits for wheel layout.
const (
	MinSectors = 2
	MaxSectors = 36
	MinRadius  = 3
	MaxRadius  = 40
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but wheel only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade wheel, or lower the version field.")
	}

	if err := validateWheel(cfg.Wheel); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'wheel' section in your .wheel.yaml.")
	}
	if err := validateSpin(cfg.Spin); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'spin' section in your .wheel.yaml.")
	}
	if err := validateHighlight(cfg.Highlight); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'highlight' section in your .wheel.yaml.")
	}
	if err := validateControls(cfg.Controls); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'controls' section in your .wheel.yaml.")
	}
	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .wheel.yaml.")
	}

	return nil
}

func validateWheel(w WheelConfig) error {
	if w.Sectors < MinSectors || w.Sectors > MaxSectors {
		return fmt.Errorf("wheel.sectors must be between %d and %d, got %d", MinSectors, MaxSectors, w.Sectors)
	}
	if len(w.Colors) == 0 {
		return fmt.Errorf("wheel.colors needs at least one colour")
	}
	for i, c := range w.Colors {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("wheel.colors[%d] %q is not a hex colour like #ffed67", i, c)
		}
	}
	for i, c := range w.HighlightColors {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("wheel.highlight_colors[%d] %q is not a hex colour like #fdf1a3", i, c)
		}
	}
	if w.Radius < MinRadius || w.Radius > MaxRadius {
		return fmt.Errorf("wheel.radius must be between %d and %d, got %d", MinRadius, MaxRadius, w.Radius)
	}
	return nil
}

func validateSpin(s SpinConfig) error {
	if s.MinVelocity <= 0 {
		return fmt.Errorf("spin.min_velocity must be positive, got %g", s.MinVelocity)
	}
	if s.VelocityRange < 0 {
		return fmt.Errorf("spin.velocity_range cannot be negative, got %g", s.VelocityRange)
	}
	if s.Decay <= 0 || s.Decay >= 1 {
		return fmt.Errorf("spin.decay must be between 0 and 1 (exclusive), got %g", s.Decay)
	}
	if s.Epsilon <= 0 {
		return fmt.Errorf("spin.epsilon must be positive, got %g", s.Epsilon)
	}
	if s.Epsilon >= s.MinVelocity {
		return fmt.Errorf("spin.epsilon (%g) must be below spin.min_velocity (%g)", s.Epsilon, s.MinVelocity)
	}
	if s.StepScale <= 0 {
		return fmt.Errorf("spin.step_scale must be positive, got %g", s.StepScale)
	}
	if s.StopGrace < 0 {
		return fmt.Errorf("spin.stop_grace cannot be negative, got %s", s.StopGrace)
	}
	if s.FrameInterval < time.Millisecond || s.FrameInterval > time.Second {
		return fmt.Errorf("spin.frame_interval must be between 1ms and 1s, got %s", s.FrameInterval)
	}
	return nil
}

func validateHighlight(h HighlightConfig) error {
	if h.Interval <= 0 {
		return fmt.Errorf("highlight.interval must be positive, got %s", h.Interval)
	}
	if h.Toggles < 0 {
		return fmt.Errorf("highlight.toggles cannot be negative, got %d", h.Toggles)
	}
	return nil
}

func validateControls(c ControlsConfig) error {
	for name, b := range map[string]ButtonConfig{"start": c.Start, "stop": c.Stop, "next": c.Next} {
		if b.Label == "" {
			return fmt.Errorf("controls.%s.label cannot be empty", name)
		}
		for field, v := range map[string]string{"foreground": b.Foreground, "background": b.Background, "hover": b.Hover} {
			if v != "" && !hexColor.MatchString(v) {
				return fmt.Errorf("controls.%s.%s %q is not a hex colour", name, field, v)
			}
		}
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	switch o.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("output.color must be auto, always, or never, got %q", o.Color)
	}
}
