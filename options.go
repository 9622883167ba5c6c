package termcube

// ScreenOption configures a Screen during creation.
//
// Example:
//
//	pal, err := termcube.NewPalette(' ', '.', ':', '*', '#')
//	if err != nil {
//		return err
//	}
//	s := termcube.NewScreen(90, 26, termcube.WithPalette(pal))
type ScreenOption func(*screenOptions)

// screenOptions holds optional configuration for Screen creation.
type screenOptions struct {
	palette Palette
	border  rune
}

// defaultOptions returns the default screen options.
func defaultOptions() screenOptions {
	return screenOptions{
		palette: DefaultPalette(),
		border:  DefaultBorderGlyph,
	}
}

// WithPalette sets the glyph palette used for interior cells.
// A zero Palette keeps the default.
func WithPalette(p Palette) ScreenOption {
	return func(o *screenOptions) {
		if p.Len() > 0 {
			o.palette = p
		}
	}
}

// WithBorderGlyph sets the glyph drawn on the outermost ring of the grid.
func WithBorderGlyph(r rune) ScreenOption {
	return func(o *screenOptions) {
		o.border = r
	}
}
