package config

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 90, cfg.Width)
	assert.Equal(t, 26, cfg.Height)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, 0.05, cfg.Step)
	assert.Equal(t, 1.5, cfg.Distance)
	assert.Equal(t, 0.7, cfg.Saturation)
	assert.Equal(t, 0.8, cfg.Value)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "cube.toml", `
width = 120
height = 40
fps = 30
saturation = 1.0
palette = " .:#"
record = "out.gif"
frames = 120
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 40, cfg.Height)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, 1.0, cfg.Saturation)
	assert.Equal(t, " .:#", cfg.Palette)
	assert.Equal(t, "out.gif", cfg.Record)
	assert.Equal(t, 120, cfg.Frames)
	// Unset keys keep their defaults.
	assert.Equal(t, 1.5, cfg.Distance)
	assert.Equal(t, 0.8, cfg.Value)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "cube.yml", "width: 60\nhue_speed: 25.5\nlog_level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Width)
	assert.Equal(t, 25.5, cfg.HueSpeed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 26, cfg.Height)
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{"unknown toml key", "a.toml", "colour = 3\n"},
		{"unknown yaml key", "a.yaml", "colour: 3\n"},
		{"bad toml", "a.toml", "width = \n"},
		{"wrong type", "a.yaml", "width: wide\n"},
		{"extension", "a.json", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"width", func(c *Config) { c.Width = 2 }},
		{"height", func(c *Config) { c.Height = 0 }},
		{"fps zero", func(c *Config) { c.FPS = 0 }},
		{"fps high", func(c *Config) { c.FPS = 1000 }},
		{"frames", func(c *Config) { c.Frames = -1 }},
		{"size", func(c *Config) { c.Size = 0 }},
		{"distance inside cube", func(c *Config) { c.Distance = 0.8 }},
		{"distance nan", func(c *Config) { c.Distance = math.NaN() }},
		{"saturation", func(c *Config) { c.Saturation = 1.5 }},
		{"value", func(c *Config) { c.Value = -0.1 }},
		{"brightness", func(c *Config) { c.Brightness = 2 }},
		{"step", func(c *Config) { c.Step = math.Inf(1) }},
		{"hue speed", func(c *Config) { c.HueSpeed = math.NaN() }},
		{"palette", func(c *Config) { c.Palette = "#" }},
		{"wide palette", func(c *Config) { c.Palette = " 中" }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"endless record", func(c *Config) { c.Record = "out.gif" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	cfg.FPS = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width 0")
	assert.Contains(t, err.Error(), "fps 0")
}

func TestGlyphPalette(t *testing.T) {
	cfg := Default()
	pal, err := cfg.GlyphPalette()
	require.NoError(t, err)
	assert.Equal(t, 5, pal.Len())

	cfg.Palette = " .oO@"
	pal, err = cfg.GlyphPalette()
	require.NoError(t, err)
	assert.Equal(t, []rune(" .oO@"), pal.Glyphs())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
