package scene

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/termcube"
)

// Animation turns a model and a rotation angle into a frame.
type Animation struct {
	Model Model
	// Distance moves the rotated model along +Z, in front of the viewer.
	Distance float32
	// HueSpeed is the hue shift in degrees per radian of rotation.
	HueSpeed   float32
	Saturation float64
	Value      float64
	// Brightness caps the coverage of each line.
	Brightness float64
}

// Transform applies the per-frame transforms to a model space vertex:
// rotate about Y by angle, about X by angle/2, then translate along Z.
func (a Animation) Transform(v termcube.Vec3[float32], angle float32) termcube.Vec3[float32] {
	return v.RotateY(angle).RotateX(angle / 2).TranslateZ(a.Distance)
}

// Hue returns the hue in degrees for the given angle, wrapped into [0, 360).
func (a Animation) Hue(angle float32) float32 {
	hue := math32.Mod(angle*a.HueSpeed, 360)
	if hue < 0 {
		hue += 360
	}
	return hue
}

// Color returns the line color for the given angle.
func (a Animation) Color(angle float32) termcube.Color {
	return termcube.FromHSV(float64(a.Hue(angle)), a.Saturation, a.Value)
}

// DrawFrame rasterizes every edge of the model into s.
func (a Animation) DrawFrame(s *termcube.Screen, angle float32) {
	p := termcube.NewPixel(a.Color(angle), a.Brightness)
	for _, e := range a.Model.Edges {
		v0 := termcube.Project(a.Transform(a.Model.Vertices[e[0]], angle))
		v1 := termcube.Project(a.Transform(a.Model.Vertices[e[1]], angle))
		s.DrawLine(p, v0.Float64(), v1.Float64())
	}
}
