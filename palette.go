package termcube

import (
	"errors"
	"fmt"
	"math"
	"unicode"

	"golang.org/x/text/width"
)

// ErrInvalidPalette is returned when a glyph palette cannot be used on a
// character grid.
var ErrInvalidPalette = errors.New("termcube: invalid palette")

// Glyphs of the default palette, in order of increasing density.
const (
	GlyphEmpty  = ' '
	GlyphLight  = '░'
	GlyphMedium = '▒'
	GlyphDark   = '▓'
	GlyphFull   = '█'
)

// DefaultBorderGlyph frames the grid. It is drawn without color escapes.
const DefaultBorderGlyph = '█'

// Palette maps coverage to glyphs, ordered from empty to full.
type Palette struct {
	glyphs []rune
}

// DefaultPalette returns the five glyph shade palette.
func DefaultPalette() Palette {
	return Palette{glyphs: []rune{GlyphEmpty, GlyphLight, GlyphMedium, GlyphDark, GlyphFull}}
}

// NewPalette creates a palette from glyphs ordered by increasing density.
// Every glyph must be printable and occupy a single terminal cell.
func NewPalette(glyphs ...rune) (Palette, error) {
	if len(glyphs) < 2 {
		return Palette{}, fmt.Errorf("%w: need at least 2 glyphs, got %d", ErrInvalidPalette, len(glyphs))
	}
	for i, r := range glyphs {
		if err := checkGlyph(r); err != nil {
			return Palette{}, fmt.Errorf("%w: glyph %d: %w", ErrInvalidPalette, i, err)
		}
	}
	return Palette{glyphs: append([]rune(nil), glyphs...)}, nil
}

// checkGlyph reports whether r can fill exactly one grid cell.
func checkGlyph(r rune) error {
	if r == unicode.ReplacementChar || !unicode.IsPrint(r) {
		return fmt.Errorf("%U is not printable", r)
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return fmt.Errorf("%U is double width", r)
	}
	return nil
}

// Len returns the number of glyphs.
func (p Palette) Len() int {
	return len(p.glyphs)
}

// Glyphs returns a copy of the glyphs.
func (p Palette) Glyphs() []rune {
	return append([]rune(nil), p.glyphs...)
}

// Glyph selects the glyph for a coverage value.
func (p Palette) Glyph(alpha float64) rune {
	n := len(p.glyphs)
	switch {
	case n == 0:
		return GlyphEmpty
	case math.IsNaN(alpha), alpha < 0:
		return p.glyphs[0]
	case alpha >= 1:
		return p.glyphs[n-1]
	}
	idx := int(math.Round(alpha * float64(n-1)))
	return p.glyphs[min(max(idx, 0), n-1)]
}
