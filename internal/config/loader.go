package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/spinwheel/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".wheel.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/wheel"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix is the prefix for environment overrides (WHEEL_SPIN_DECAY, ...).
	EnvPrefix = "WHEEL"
)

// Load reads config from the specified path. An empty path yields the
// defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Run 'wheel init' to create one, or point --config at an existing file")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	return parseConfig(v, path)
}

// LoadOrDefault finds and loads the config, falling back to defaults when
// no file exists. The result is validated.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .wheel.yaml in current directory
// 3. .wheel.yaml in parent directories (stops at git root or home)
// 4. ~/.config/wheel/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		if home != "" && parent == home {
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}
	}

	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults registers every key so that AutomaticEnv can override keys
// missing from the file.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("version", d.Version)
	v.SetDefault("wheel.sectors", d.Wheel.Sectors)
	v.SetDefault("wheel.colors", d.Wheel.Colors)
	v.SetDefault("wheel.highlight_colors", d.Wheel.HighlightColors)
	v.SetDefault("wheel.radius", d.Wheel.Radius)

	v.SetDefault("spin.min_velocity", d.Spin.MinVelocity)
	v.SetDefault("spin.velocity_range", d.Spin.VelocityRange)
	v.SetDefault("spin.decay", d.Spin.Decay)
	v.SetDefault("spin.epsilon", d.Spin.Epsilon)
	v.SetDefault("spin.step_scale", d.Spin.StepScale)
	v.SetDefault("spin.stop_grace", d.Spin.StopGrace.String())
	v.SetDefault("spin.frame_interval", d.Spin.FrameInterval.String())

	v.SetDefault("highlight.interval", d.Highlight.Interval.String())
	v.SetDefault("highlight.toggles", d.Highlight.Toggles)

	for name, b := range map[string]ButtonConfig{
		"start": d.Controls.Start,
		"stop":  d.Controls.Stop,
		"next":  d.Controls.Next,
	} {
		v.SetDefault("controls."+name+".label", b.Label)
		v.SetDefault("controls."+name+".foreground", b.Foreground)
		v.SetDefault("controls."+name+".background", b.Background)
		v.SetDefault("controls."+name+".hover", b.Hover)
	}
	v.SetDefault("controls.result_prefix", d.Controls.ResultPrefix)

	v.SetDefault("output.color", d.Output.Color)
}

// parseConfig converts viper config to our Config struct.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		where := "your config"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+where)
	}

	return cfg, nil
}
