package termcube

import (
	"errors"
	"math"
	"testing"
)

func TestPalette_Glyph(t *testing.T) {
	tests := []struct {
		alpha  float64
		expect rune
	}{
		{-1, ' '},
		{math.NaN(), ' '},
		{0, ' '},
		{0.1, ' '},
		{0.125, '░'},
		{0.25, '░'},
		{0.5, '▒'},
		{0.6, '▒'},
		{0.75, '▓'},
		{0.9, '█'},
		{1, '█'},
		{2, '█'},
	}

	p := DefaultPalette()
	for _, tt := range tests {
		if got := p.Glyph(tt.alpha); got != tt.expect {
			t.Errorf("Glyph(%v) = %q, want %q", tt.alpha, got, tt.expect)
		}
	}
}

func TestPalette_GlyphMonotonic(t *testing.T) {
	p := DefaultPalette()
	index := func(r rune) int {
		for i, g := range p.Glyphs() {
			if g == r {
				return i
			}
		}
		return -1
	}
	prev := 0
	for a := 0.0; a <= 1; a += 0.01 {
		i := index(p.Glyph(a))
		if i < prev {
			t.Fatalf("Glyph(%v) index %d < %d", a, i, prev)
		}
		prev = i
	}
}

func TestNewPalette(t *testing.T) {
	tests := []struct {
		name    string
		glyphs  []rune
		wantErr bool
	}{
		{"ascii", []rune(" .:-=+*#%@"), false},
		{"two", []rune(" #"), false},
		{"shades", []rune(" ░▒▓█"), false},
		{"empty", nil, true},
		{"single", []rune("#"), true},
		{"control", []rune(" \n#"), true},
		{"wide", []rune(" 中"), true},
		{"fullwidth", []rune(" Ａ"), true},
		{"replacement", []rune{' ', '�'}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPalette(tt.glyphs...)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPalette) {
					t.Fatalf("NewPalette(%q) error = %v, want ErrInvalidPalette", string(tt.glyphs), err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPalette(%q) unexpected error: %v", string(tt.glyphs), err)
			}
			if p.Len() != len(tt.glyphs) {
				t.Errorf("Len() = %d, want %d", p.Len(), len(tt.glyphs))
			}
		})
	}
}

func TestNewPalette_Copies(t *testing.T) {
	glyphs := []rune(" #")
	p, err := NewPalette(glyphs...)
	if err != nil {
		t.Fatal(err)
	}
	glyphs[1] = '@'
	if p.Glyph(1) != '#' {
		t.Errorf("palette aliases caller slice")
	}
}
