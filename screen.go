package termcube

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"strings"
)

// lineRadiusSq is the squared distance from the ideal line within which
// a cell receives coverage.
const lineRadiusSq = 0.5

// Screen is a fixed size grid of pixels, stored row-major.
//
// A Screen is owned by a single goroutine. Per frame the caller draws any
// number of lines and dots, renders once, then clears.
type Screen struct {
	width   int
	height  int
	pixels  []Pixel
	palette Palette
	border  rune
}

// NewScreen allocates a width x height screen of empty pixels.
// It panics if either dimension is not positive.
func NewScreen(width, height int, opts ...ScreenOption) *Screen {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("termcube: invalid screen size %dx%d", width, height))
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Screen{
		width:   width,
		height:  height,
		pixels:  make([]Pixel, width*height),
		palette: o.palette,
		border:  o.border,
	}
}

// Width returns the number of columns.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the number of rows.
func (s *Screen) Height() int {
	return s.height
}

// Palette returns the glyph palette of interior cells.
func (s *Screen) Palette() Palette {
	return s.palette
}

// Clear resets every cell to an empty pixel.
func (s *Screen) Clear() {
	clear(s.pixels)
}

// At returns the pixel at the given cell.
// Cells outside the grid read as empty.
func (s *Screen) At(col, row int) Pixel {
	if !s.inside(col, row) {
		return Pixel{}
	}
	return s.pixels[row*s.width+col]
}

func (s *Screen) inside(col, row int) bool {
	return col >= 0 && col < s.width && row >= 0 && row < s.height
}

// add blends p into a cell. Writes outside the grid are dropped.
func (s *Screen) add(col, row int, p Pixel) {
	if !s.inside(col, row) {
		return
	}
	i := row*s.width + col
	s.pixels[i] = Blend(s.pixels[i], p)
}

// Project maps a point in normalized device space to a grid cell.
// Y is flipped since rows grow downward. The result is not clamped to
// the grid: points outside [-1, 1) land outside it.
func (s *Screen) Project(v Vec2[float64]) (col, row int) {
	xNorm := (v.X + 1) / 2
	yNorm := 1 - (v.Y+1)/2
	return gridIndex(xNorm * float64(s.width)), gridIndex(yNorm * float64(s.height))
}

// gridIndex floors f, saturating to the int32 range so that non-finite
// coordinates still convert to a well defined, off-grid index.
func gridIndex(f float64) int {
	switch {
	case math.IsNaN(f), f <= math.MinInt32:
		return math.MinInt32
	case f >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(math.Floor(f))
}

// DrawDot blends p into the cell under pos.
func (s *Screen) DrawDot(p Pixel, pos Vec2[float64]) {
	col, row := s.Project(pos)
	s.add(col, row, p)
}

// DrawLine rasterizes an anti-aliased segment between two points in
// normalized device space.
//
// Every cell of the bounding box of the projected endpoints whose center
// lies within sqrt(0.5) of the segment receives coverage 1-2*d², capped at
// p.Alpha, where d is the distance from the center to the segment. Coverage
// accumulates with Blend, so overlapping segments brighten.
func (s *Screen) DrawLine(p Pixel, start, end Vec2[float64]) {
	c0, r0 := s.Project(start)
	c1, r1 := s.Project(end)

	// Cells outside the grid would be dropped anyway.
	minCol, maxCol := max(min(c0, c1), 0), min(max(c0, c1), s.width-1)
	minRow, maxRow := max(min(r0, r1), 0), min(max(r0, r1), s.height-1)

	x0, y0 := float64(c0), float64(r0)
	dx, dy := float64(c1)-x0, float64(r1)-y0
	lenSq := dx*dx + dy*dy
	maxCoverage := clamp01(p.Alpha)

	for row := minRow; row <= maxRow; row++ {
		py := float64(row) + 0.5
		for col := minCol; col <= maxCol; col++ {
			px := float64(col) + 0.5

			t := 0.0
			if lenSq != 0 {
				t = clamp01(((px-x0)*dx + (py-y0)*dy) / lenSq)
			}
			cx, cy := x0+t*dx, y0+t*dy
			dist := (px-cx)*(px-cx) + (py-cy)*(py-cy)
			if dist > lineRadiusSq {
				continue
			}

			coverage := clamp(1-2*dist, 0, maxCoverage)
			s.add(col, row, Pixel{Color: p.Color, Alpha: coverage})
		}
	}
}

// isBorder reports whether the cell is on the outermost ring.
func (s *Screen) isBorder(col, row int) bool {
	return row == 0 || row == s.height-1 || col == 0 || col == s.width-1
}

// Render writes the grid as text, one line per row. Border cells are the
// border glyph; interior cells are colored palette glyphs.
func (s *Screen) Render(w io.Writer) error {
	var sb strings.Builder
	s.renderTo(&sb)
	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the rendered grid.
func (s *Screen) String() string {
	var sb strings.Builder
	s.renderTo(&sb)
	return sb.String()
}

func (s *Screen) renderTo(sb *strings.Builder) {
	// Roughly 20 bytes per colored cell.
	sb.Grow(s.width * s.height * 20)
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			if s.isBorder(col, row) {
				sb.WriteRune(s.border)
				continue
			}
			s.pixels[row*s.width+col].appendTo(sb, s.palette)
		}
		sb.WriteByte('\n')
	}
}

// ToImage converts the screen to an image with one pixel per cell. Each
// cell color is scaled by its coverage over an opaque black background.
func (s *Screen) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			p := s.pixels[row*s.width+col]
			c := p.Color.Scale(p.Alpha)
			img.SetNRGBA(col, row, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return img
}

// SavePNG saves the screen, one pixel per cell, to a PNG file.
func (s *Screen) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.ToImage())
}
