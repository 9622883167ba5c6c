// Command termcube spins a colored wireframe cube in the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gogpu/termcube"
	"github.com/gogpu/termcube/internal/config"
	"github.com/gogpu/termcube/internal/record"
	"github.com/gogpu/termcube/internal/scene"
	"github.com/gogpu/termcube/internal/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	flagCfg := config.Default()

	cmd := &cobra.Command{
		Use:           "termcube",
		Short:         "Spin a colored wireframe cube in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage: true,
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "config file (.toml, .yaml)")
	f.IntVar(&flagCfg.Width, "width", flagCfg.Width, "grid width in cells")
	f.IntVar(&flagCfg.Height, "height", flagCfg.Height, "grid height in cells")
	f.IntVar(&flagCfg.FPS, "fps", flagCfg.FPS, "frames per second")
	f.IntVarP(&flagCfg.Frames, "frames", "n", flagCfg.Frames, "stop after this many frames (0 runs until interrupted)")
	f.Float64Var(&flagCfg.Step, "step", flagCfg.Step, "rotation per frame in radians")
	f.Float64Var(&flagCfg.Distance, "distance", flagCfg.Distance, "distance from the viewer to the cube center")
	f.Float64Var(&flagCfg.Size, "size", flagCfg.Size, "cube edge length")
	f.Float64Var(&flagCfg.HueSpeed, "hue-speed", flagCfg.HueSpeed, "hue shift in degrees per radian")
	f.Float64Var(&flagCfg.Saturation, "saturation", flagCfg.Saturation, "line color saturation [0, 1]")
	f.Float64Var(&flagCfg.Value, "value", flagCfg.Value, "line color value [0, 1]")
	f.Float64Var(&flagCfg.Brightness, "brightness", flagCfg.Brightness, "maximum line coverage [0, 1]")
	f.StringVar(&flagCfg.Palette, "palette", flagCfg.Palette, "glyphs from empty to full (default \" ░▒▓█\")")
	f.StringVar(&flagCfg.Record, "record", flagCfg.Record, "write the animation to this GIF file")
	f.StringVar(&flagCfg.Snapshot, "snapshot", flagCfg.Snapshot, "write the last frame to this PNG file")
	f.StringVar(&flagCfg.LogFile, "log-file", flagCfg.LogFile, "write logs to this file")
	f.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "log level: debug, info, warn, error")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(cmd, configPath, flagCfg)
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg, cmd.OutOrStdout())
	}
	return cmd
}

// resolveConfig layers explicitly set flags over the config file, which
// itself is layered over the defaults.
func resolveConfig(cmd *cobra.Command, path string, flags config.Config) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	set := cmd.Flags().Changed
	overlay := []struct {
		name  string
		apply func()
	}{
		{"width", func() { cfg.Width = flags.Width }},
		{"height", func() { cfg.Height = flags.Height }},
		{"fps", func() { cfg.FPS = flags.FPS }},
		{"frames", func() { cfg.Frames = flags.Frames }},
		{"step", func() { cfg.Step = flags.Step }},
		{"distance", func() { cfg.Distance = flags.Distance }},
		{"size", func() { cfg.Size = flags.Size }},
		{"hue-speed", func() { cfg.HueSpeed = flags.HueSpeed }},
		{"saturation", func() { cfg.Saturation = flags.Saturation }},
		{"value", func() { cfg.Value = flags.Value }},
		{"brightness", func() { cfg.Brightness = flags.Brightness }},
		{"palette", func() { cfg.Palette = flags.Palette }},
		{"record", func() { cfg.Record = flags.Record }},
		{"snapshot", func() { cfg.Snapshot = flags.Snapshot }},
		{"log-file", func() { cfg.LogFile = flags.LogFile }},
		{"log-level", func() { cfg.LogLevel = flags.LogLevel }},
	}
	for _, o := range overlay {
		if set(o.name) {
			o.apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	closeLog, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	pal, err := cfg.GlyphPalette()
	if err != nil {
		return err
	}

	tty := term.New(stdout)
	sinks := []scene.Sink{tty}

	var gifRec *record.GIF
	if cfg.Record != "" {
		gifRec = record.NewGIF(record.DefaultCellWidth, record.DefaultCellHeight, record.DelayForFPS(cfg.FPS))
		sinks = append(sinks, gifRec)
	}
	var snap *record.Snapshot
	if cfg.Snapshot != "" {
		snap = record.NewSnapshot(record.DefaultCellWidth, record.DefaultCellHeight)
		sinks = append(sinks, snap)
	}

	player := &scene.Player{
		Screen: termcube.NewScreen(cfg.Width, cfg.Height, termcube.WithPalette(pal)),
		Animation: scene.Animation{
			Model:      scene.Cube(float32(cfg.Size)),
			Distance:   float32(cfg.Distance),
			HueSpeed:   float32(cfg.HueSpeed),
			Saturation: cfg.Saturation,
			Value:      cfg.Value,
			Brightness: cfg.Brightness,
		},
		FPS:    cfg.FPS,
		Step:   float32(cfg.Step),
		Frames: cfg.Frames,
		Sinks:  sinks,
	}

	if err := tty.Start(); err != nil {
		return fmt.Errorf("termcube: %w", err)
	}
	_, runErr := player.Run(ctx)
	if err := tty.Stop(); err != nil && runErr == nil {
		runErr = fmt.Errorf("termcube: %w", err)
	}
	if runErr != nil {
		return runErr
	}

	if gifRec != nil {
		if err := gifRec.Save(cfg.Record); err != nil {
			return fmt.Errorf("termcube: record: %w", err)
		}
	}
	if snap != nil {
		if err := snap.Save(cfg.Snapshot); err != nil {
			return fmt.Errorf("termcube: snapshot: %w", err)
		}
	}
	return nil
}

// setupLogger installs a text logger writing to cfg.LogFile. Without a log
// file nothing is logged, since stdout carries the frames.
func setupLogger(cfg config.Config) (func(), error) {
	if cfg.LogFile == "" {
		return func() {}, nil
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("termcube: log file: %w", err)
	}
	termcube.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return func() {
		termcube.SetLogger(nil)
		_ = f.Close()
	}, nil
}
