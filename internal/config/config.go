// Package config holds the settings of the termcube animation and loads
// them from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/termcube"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Config describes one animation run.
type Config struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
	FPS    int `toml:"fps" yaml:"fps"`
	// Frames stops the animation after that many frames. Zero runs forever.
	Frames int `toml:"frames" yaml:"frames"`

	// Step is the rotation angle added per frame, in radians.
	Step float64 `toml:"step" yaml:"step"`
	// Distance is the Z translation applied after rotation.
	Distance float64 `toml:"distance" yaml:"distance"`
	// Size is the cube edge length.
	Size float64 `toml:"size" yaml:"size"`

	HueSpeed   float64 `toml:"hue_speed" yaml:"hue_speed"`
	Saturation float64 `toml:"saturation" yaml:"saturation"`
	Value      float64 `toml:"value" yaml:"value"`
	// Brightness caps the coverage of a single line.
	Brightness float64 `toml:"brightness" yaml:"brightness"`
	// Palette lists glyphs from empty to full. Empty means the default.
	Palette string `toml:"palette" yaml:"palette"`

	Record   string `toml:"record" yaml:"record"`
	Snapshot string `toml:"snapshot" yaml:"snapshot"`
	LogFile  string `toml:"log_file" yaml:"log_file"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the settings of the classic spinning cube.
func Default() Config {
	return Config{
		Width:      90,
		Height:     26,
		FPS:        60,
		Step:       0.05,
		Distance:   1.5,
		Size:       1,
		HueSpeed:   10,
		Saturation: 0.7,
		Value:      0.8,
		Brightness: 1,
		LogLevel:   "info",
	}
}

// Load reads a config file over the defaults. The format is chosen by
// extension: .toml, .yaml or .yml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return Config{}, fmt.Errorf("config: unsupported file type %q", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	// A 3x3 grid is the smallest with an interior cell.
	check(c.Width >= 3, "width %d must be at least 3", c.Width)
	check(c.Height >= 3, "height %d must be at least 3", c.Height)
	check(c.FPS >= 1 && c.FPS <= 240, "fps %d must be in [1, 240]", c.FPS)
	check(c.Frames >= 0, "frames %d must not be negative", c.Frames)
	// Recorded frames are kept in memory until exit.
	check(c.Record == "" || c.Frames > 0, "record requires a positive frame count")
	check(c.Size > 0, "size %v must be positive", c.Size)
	// Rotated vertices stay within the circumscribed sphere, so this keeps
	// every projected z positive.
	check(c.Distance > c.Size*math.Sqrt(3)/2, "distance %v must exceed the cube radius %.3f", c.Distance, c.Size*math.Sqrt(3)/2)
	check(in01(c.Saturation), "saturation %v must be in [0, 1]", c.Saturation)
	check(in01(c.Value), "value %v must be in [0, 1]", c.Value)
	check(in01(c.Brightness), "brightness %v must be in [0, 1]", c.Brightness)
	check(!math.IsNaN(c.Step) && !math.IsInf(c.Step, 0), "step %v must be finite", c.Step)
	check(!math.IsNaN(c.HueSpeed) && !math.IsInf(c.HueSpeed, 0), "hue_speed %v must be finite", c.HueSpeed)
	if _, err := c.GlyphPalette(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}

// GlyphPalette returns the configured palette, or the default one.
func (c Config) GlyphPalette() (termcube.Palette, error) {
	if c.Palette == "" {
		return termcube.DefaultPalette(), nil
	}
	return termcube.NewPalette([]rune(c.Palette)...)
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog level.
// An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

func in01(x float64) bool {
	return x >= 0 && x <= 1
}
