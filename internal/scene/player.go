package scene

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/termcube"
)

// Sink consumes finished frames. The screen is only valid for the
// duration of the call; it is cleared right after.
type Sink interface {
	Present(s *termcube.Screen) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(s *termcube.Screen) error

// Present calls f(s).
func (f SinkFunc) Present(s *termcube.Screen) error {
	return f(s)
}

// Player runs the frame loop: draw, present to every sink, clear, wait
// for the next tick.
type Player struct {
	Screen    *termcube.Screen
	Animation Animation
	FPS       int
	// Step is the angle added per frame, in radians.
	Step float32
	// Frames limits the number of frames. Zero runs until ctx is done.
	Frames int
	Sinks  []Sink
}

// Run plays the animation and returns the number of frames presented.
// It returns when ctx is done, after Frames frames, or when a sink fails.
func (p *Player) Run(ctx context.Context) (int, error) {
	if p.FPS <= 0 {
		return 0, fmt.Errorf("scene: fps must be positive, got %d", p.FPS)
	}
	log := termcube.Logger()
	interval := time.Second / time.Duration(p.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("scene: playing",
		"width", p.Screen.Width(), "height", p.Screen.Height(),
		"fps", p.FPS, "edges", len(p.Animation.Model.Edges), "frames", p.Frames)

	var angle float32
	frames := 0
	for p.Frames == 0 || frames < p.Frames {
		if ctx.Err() != nil {
			break
		}
		p.Animation.DrawFrame(p.Screen, angle)
		for _, s := range p.Sinks {
			if err := s.Present(p.Screen); err != nil {
				return frames, fmt.Errorf("scene: frame %d: %w", frames, err)
			}
		}
		p.Screen.Clear()
		frames++
		angle += p.Step

		if p.Frames != 0 && frames == p.Frames {
			break
		}
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}

	log.Info("scene: stopped", "frames", frames)
	return frames, nil
}
