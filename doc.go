// Package termcube renders wireframe geometry as colored text.
//
// # Overview
//
// termcube projects 3D points to normalized device space, maps them onto a
// fixed character grid and rasterizes anti-aliased lines by accumulating
// per-cell coverage. Each cell is printed as a density glyph wrapped in a
// 24-bit ANSI foreground color.
//
// # Quick Start
//
//	s := termcube.NewScreen(90, 26)
//	a := termcube.V3(-0.5, -0.5, 0.5).RotateY(0.3).TranslateZ(1.5)
//	b := termcube.V3(0.5, -0.5, 0.5).RotateY(0.3).TranslateZ(1.5)
//	c := termcube.FromHSV(200, 0.7, 0.8)
//	s.DrawLine(termcube.PixelFrom(c), termcube.Project(a), termcube.Project(b))
//	_ = s.Render(os.Stdout)
//	s.Clear()
//
// # Coordinate System
//
//   - Normalized device space spans roughly [-1, 1] on both axes, Y up
//   - Grid cells are addressed by column and row, origin at top-left
//   - Angles are in radians
//
// # Blending
//
// Drawing is additive: colors add with saturation at 255 and coverage adds
// with clamping at 1. Screen.Clear resets the grid between frames.
package termcube
