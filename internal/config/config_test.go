package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/spinwheel/internal/errors"
	"github.com/rileyhilliard/spinwheel/internal/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, 10, cfg.Wheel.Sectors)
	assert.Equal(t, wheel.DefaultColors, cfg.Wheel.Colors)
	assert.Equal(t, wheel.DefaultHighlightColors, cfg.Wheel.HighlightColors)
	assert.Equal(t, 8, cfg.Wheel.Radius)

	assert.Equal(t, 0.3, cfg.Spin.MinVelocity)
	assert.Equal(t, 0.4, cfg.Spin.VelocityRange)
	assert.Equal(t, 0.98, cfg.Spin.Decay)
	assert.Equal(t, 0.002, cfg.Spin.Epsilon)
	assert.Equal(t, 4*time.Second, cfg.Spin.StopGrace)
	assert.Equal(t, wheel.DefaultFrameInterval, cfg.Spin.FrameInterval)

	assert.Equal(t, 500*time.Millisecond, cfg.Highlight.Interval)
	assert.Equal(t, 4, cfg.Highlight.Toggles)

	assert.Equal(t, "Start", cfg.Controls.Start.Label)
	assert.Equal(t, "Stop", cfg.Controls.Stop.Label)
	assert.Equal(t, "Next player", cfg.Controls.Next.Label)
	assert.Equal(t, "#0957D0", cfg.Controls.Start.Background)
	assert.Equal(t, "#B34743", cfg.Controls.Stop.Hover)
	assert.Equal(t, "Result: ", cfg.Controls.ResultPrefix)
	assert.Equal(t, "auto", cfg.Output.Color)

	require.NoError(t, Validate(cfg))
}

func TestDefaultConfig_PaletteIsCopied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Wheel.Colors[0] = "#000000"

	assert.NotEqual(t, "#000000", wheel.DefaultColors[0])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	content := `
version: 1
wheel:
  sectors: 6
  colors: ["#111111", "#222222"]
  radius: 5
spin:
  decay: 0.9
  stop_grace: 2s
highlight:
  interval: 250ms
  toggles: 6
controls:
  next:
    label: Again
  result_prefix: "Winner: "
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Wheel.Sectors)
	assert.Equal(t, []string{"#111111", "#222222"}, cfg.Wheel.Colors)
	assert.Equal(t, 5, cfg.Wheel.Radius)
	assert.Equal(t, 0.9, cfg.Spin.Decay)
	assert.Equal(t, 2*time.Second, cfg.Spin.StopGrace)
	assert.Equal(t, 250*time.Millisecond, cfg.Highlight.Interval)
	assert.Equal(t, 6, cfg.Highlight.Toggles)
	assert.Equal(t, "Again", cfg.Controls.Next.Label)
	assert.Equal(t, "Winner: ", cfg.Controls.ResultPrefix)

	// untouched keys keep their defaults
	assert.Equal(t, 0.3, cfg.Spin.MinVelocity)
	assert.Equal(t, "Start", cfg.Controls.Start.Label)
	assert.Equal(t, "#DA5A56", cfg.Controls.Stop.Background)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WHEEL_SPIN_DECAY", "0.95")
	t.Setenv("WHEEL_WHEEL_SECTORS", "12")
	t.Setenv("WHEEL_SPIN_STOP_GRACE", "1500ms")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.95, cfg.Spin.Decay)
	assert.Equal(t, 12, cfg.Wheel.Sectors)
	assert.Equal(t, 1500*time.Millisecond, cfg.Spin.StopGrace)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("wheel: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadOrDefault_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("spin:\n  decay: 1.5\n"), 0644))

	_, err := LoadOrDefault(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spin.decay")
}

func TestConfig_Conversions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Wheel.Sectors = 4
	cfg.Spin.StopGrace = time.Second
	cfg.Controls.Stop.Label = "Halt"

	w := cfg.WheelLayout()
	assert.Equal(t, []int{1, 2, 3, 4}, w.Labels)

	p := cfg.Params()
	assert.Equal(t, time.Second, p.StopGrace)
	assert.Equal(t, 0.98, p.Decay)
	assert.Equal(t, 4, p.HighlightToggles)

	c := cfg.ControlSet()
	assert.Equal(t, "Halt", c.StopLabel)
	assert.Equal(t, wheel.DefaultControls().StartStyle, c.StartStyle)
}

func TestFind(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

		found, err := Find(path)
		require.NoError(t, err)
		assert.Equal(t, path, found)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("current directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))
		t.Chdir(dir)

		found, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, mustEval(t, path), mustEval(t, found))
	})

	t.Run("parent directory stops at git root", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
		path := filepath.Join(root, ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))
		sub := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0755))
		t.Chdir(sub)

		found, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, mustEval(t, path), mustEval(t, found))
	})

	t.Run("global config", func(t *testing.T) {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		require.NoError(t, os.MkdirAll(filepath.Dir(global), 0755))
		require.NoError(t, os.WriteFile(global, []byte("version: 1\n"), 0644))
		t.Cleanup(func() { os.Remove(global) })

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
		t.Chdir(dir)

		found, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, global, found)
	})

	t.Run("nothing found", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
		t.Chdir(dir)

		found, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "# wheel configuration")
	assert.Contains(t, text, `stop_grace: "4s"`)
	assert.Contains(t, text, `"#ffed67"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// mustEval resolves symlinks so /tmp and /private/tmp compare equal on macOS.
func mustEval(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}
