package termcube

import (
	"strconv"
	"strings"
)

// ANSI sequences around every interior cell.
const (
	fgTrueColor = "\x1b[38;2;"
	resetStyle  = "\x1b[0m"
)

// Pixel is the accumulated state of one cell: a color and its coverage.
// Alpha is kept in [0, 1].
type Pixel struct {
	Color Color
	Alpha float64
}

// NewPixel creates a pixel, clamping alpha to [0, 1].
func NewPixel(c Color, alpha float64) Pixel {
	return Pixel{Color: c, Alpha: clamp01(alpha)}
}

// PixelFrom returns a fully covering pixel of the given color.
func PixelFrom(c Color) Pixel {
	return Pixel{Color: c, Alpha: 1}
}

// Coverage returns the pixel coverage.
func (p Pixel) Coverage() float64 {
	return p.Alpha
}

// Add blends q into p. See Blend.
func (p Pixel) Add(q Pixel) Pixel {
	return Blend(p, q)
}

// Blend accumulates two pixels additively: color channels add with
// saturation at 255 and alpha adds with clamping at 1.
func Blend(a, b Pixel) Pixel {
	return Pixel{
		Color: Color{
			R: addSat(a.Color.R, b.Color.R),
			G: addSat(a.Color.G, b.Color.G),
			B: addSat(a.Color.B, b.Color.B),
		},
		Alpha: clamp01(a.Alpha + b.Alpha),
	}
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// String formats the pixel with the default palette.
func (p Pixel) String() string {
	var sb strings.Builder
	p.appendTo(&sb, DefaultPalette())
	return sb.String()
}

// Format returns the truecolor escape, the glyph for the pixel coverage
// and a reset sequence.
func (p Pixel) Format(palette Palette) string {
	var sb strings.Builder
	p.appendTo(&sb, palette)
	return sb.String()
}

func (p Pixel) appendTo(sb *strings.Builder, palette Palette) {
	var num [3]byte
	sb.WriteString(fgTrueColor)
	sb.Write(strconv.AppendUint(num[:0], uint64(p.Color.R), 10))
	sb.WriteByte(';')
	sb.Write(strconv.AppendUint(num[:0], uint64(p.Color.G), 10))
	sb.WriteByte(';')
	sb.Write(strconv.AppendUint(num[:0], uint64(p.Color.B), 10))
	sb.WriteByte('m')
	sb.WriteRune(palette.Glyph(p.Alpha))
	sb.WriteString(resetStyle)
}
