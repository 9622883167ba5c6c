// Package record captures frames as images: an animated GIF of the whole
// run or a PNG of the last frame.
package record

import (
	"errors"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/termcube"
)

// ErrNoFrames is returned when saving before any frame was captured.
var ErrNoFrames = errors.New("record: no frames captured")

// Terminal cells are roughly twice as tall as they are wide.
const (
	DefaultCellWidth  = 4
	DefaultCellHeight = 8
)

// scaleCells renders one cell as a cellW x cellH block.
func scaleCells(s *termcube.Screen, cellW, cellH int) *image.NRGBA {
	src := s.ToImage()
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*cellW, b.Dy()*cellH))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// GIF accumulates frames of an animated GIF.
type GIF struct {
	cellW, cellH int
	delay        int
	anim         gif.GIF
}

// NewGIF creates a recorder. delay is the frame time in 100ths of a
// second; see DelayForFPS.
func NewGIF(cellW, cellH, delay int) *GIF {
	return &GIF{
		cellW: max(cellW, 1),
		cellH: max(cellH, 1),
		delay: max(delay, 1),
	}
}

// DelayForFPS converts a frame rate to a GIF frame delay.
func DelayForFPS(fps int) int {
	if fps <= 0 {
		return 1
	}
	return max(1, int(math.Round(100/float64(fps))))
}

// Present implements scene.Sink by capturing the frame.
func (g *GIF) Present(s *termcube.Screen) error {
	rgba := scaleCells(s, g.cellW, g.cellH)
	frame := image.NewPaletted(rgba.Bounds(), palette.Plan9)
	xdraw.FloydSteinberg.Draw(frame, frame.Bounds(), rgba, image.Point{})

	g.anim.Image = append(g.anim.Image, frame)
	g.anim.Delay = append(g.anim.Delay, g.delay)
	return nil
}

// Len returns the number of captured frames.
func (g *GIF) Len() int {
	return len(g.anim.Image)
}

// Encode writes the animation. It loops forever.
func (g *GIF) Encode(w io.Writer) error {
	if g.Len() == 0 {
		return ErrNoFrames
	}
	return gif.EncodeAll(w, &g.anim)
}

// Save writes the animation to a file.
func (g *GIF) Save(path string) error {
	if g.Len() == 0 {
		return ErrNoFrames
	}
	return writeFile(path, g.Encode)
}

// Snapshot keeps the most recent frame.
type Snapshot struct {
	cellW, cellH int
	last         *image.NRGBA
}

// NewSnapshot creates a snapshot sink.
func NewSnapshot(cellW, cellH int) *Snapshot {
	return &Snapshot{cellW: max(cellW, 1), cellH: max(cellH, 1)}
}

// Present implements scene.Sink.
func (s *Snapshot) Present(screen *termcube.Screen) error {
	s.last = scaleCells(screen, s.cellW, s.cellH)
	return nil
}

// Image returns the last captured frame, or nil.
func (s *Snapshot) Image() *image.NRGBA {
	return s.last
}

// Save writes the last frame as PNG.
func (s *Snapshot) Save(path string) error {
	if s.last == nil {
		return ErrNoFrames
	}
	return writeFile(path, func(w io.Writer) error {
		return png.Encode(w, s.last)
	})
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := encode(f); err != nil {
		return err
	}
	termcube.Logger().Info("record: saved", "path", path)
	return nil
}
