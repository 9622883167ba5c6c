package termcube

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the scalar type of vectors.
type Float interface {
	~float32 | ~float64
}

// Vec2 represents a 2D point in normalized device space or on the grid.
type Vec2[T Float] struct {
	X, Y T
}

// V2 is a convenience function to create a Vec2.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Float64 widens the vector to float64 components.
func (v Vec2[T]) Float64() Vec2[float64] {
	return Vec2[float64]{X: float64(v.X), Y: float64(v.Y)}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2[T]) Approx(w Vec2[T], epsilon T) bool {
	return abs(v.X-w.X) < epsilon && abs(v.Y-w.Y) < epsilon
}

// Vec3 represents a point in model or view space.
// Transforms never mutate the receiver, they return a new value.
type Vec3[T Float] struct {
	X, Y, Z T
}

// V3 is a convenience function to create a Vec3.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Scale multiplies all components by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// TranslateX adds d to the X component.
func (v Vec3[T]) TranslateX(d T) Vec3[T] {
	return Vec3[T]{X: v.X + d, Y: v.Y, Z: v.Z}
}

// TranslateY adds d to the Y component.
func (v Vec3[T]) TranslateY(d T) Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y + d, Z: v.Z}
}

// TranslateZ adds d to the Z component.
func (v Vec3[T]) TranslateZ(d T) Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z + d}
}

// RotateX rotates the vector by theta radians in the YZ plane.
func (v Vec3[T]) RotateX(theta T) Vec3[T] {
	sin, cos := sincos(theta)
	return Vec3[T]{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY rotates the vector by theta radians in the XZ plane.
func (v Vec3[T]) RotateY(theta T) Vec3[T] {
	sin, cos := sincos(theta)
	return Vec3[T]{
		X: v.X*cos - v.Z*sin,
		Y: v.Y,
		Z: v.X*sin + v.Z*cos,
	}
}

// RotateZ rotates the vector by theta radians in the XY plane.
func (v Vec3[T]) RotateZ(theta T) Vec3[T] {
	sin, cos := sincos(theta)
	return Vec3[T]{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec3[T]) Approx(w Vec3[T], epsilon T) bool {
	return abs(v.X-w.X) < epsilon && abs(v.Y-w.Y) < epsilon && abs(v.Z-w.Z) < epsilon
}

// Project performs the perspective divide (x/z, y/z).
//
// The caller must keep z != 0; geometry is normally translated to z > 0
// before projecting. The result for z == 0 is not defined.
func Project[T Float](v Vec3[T]) Vec2[T] {
	return Vec2[T]{X: v.X / v.Z, Y: v.Y / v.Z}
}

// sincos uses single precision math for float32 vectors.
func sincos[T Float](theta T) (sin, cos T) {
	if f, ok := any(theta).(float32); ok {
		s, c := math32.Sincos(f)
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(theta))
	return T(s), T(c)
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
