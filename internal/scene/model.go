// Package scene drives the animation: it owns the cube model, applies the
// per-frame transforms and feeds finished frames to sinks.
package scene

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/termcube"
)

// Model is a wireframe: vertices in model space and the index pairs that
// form its edges.
type Model struct {
	Vertices []termcube.Vec3[float32]
	Edges    [][2]int
}

// Cube returns an axis aligned cube of the given edge length centered at
// the origin.
func Cube(size float32) Model {
	h := size / 2
	vertices := []termcube.Vec3[float32]{
		{X: -h, Y: -h, Z: h},  // 0
		{X: h, Y: -h, Z: h},   // 1
		{X: h, Y: h, Z: h},    // 2
		{X: -h, Y: h, Z: h},   // 3
		{X: -h, Y: -h, Z: -h}, // 4
		{X: h, Y: -h, Z: -h},  // 5
		{X: h, Y: h, Z: -h},   // 6
		{X: -h, Y: h, Z: -h},  // 7
	}
	edges := EdgesFromPaths(
		[]int{0, 1, 2, 3, 0}, // front face
		[]int{4, 5, 6, 7, 4}, // back face
		[]int{0, 4},
		[]int{1, 5},
		[]int{2, 6},
		[]int{3, 7},
	)
	return Model{Vertices: vertices, Edges: edges}
}

// EdgesFromPaths turns vertex paths into consecutive edge pairs.
func EdgesFromPaths(paths ...[]int) [][2]int {
	var edges [][2]int
	for _, p := range paths {
		for i := 0; i+1 < len(p); i++ {
			edges = append(edges, [2]int{p[i], p[i+1]})
		}
	}
	return edges
}

// Radius returns the largest vertex distance from the origin. Any rotation
// of the model stays inside a sphere of this radius.
func (m Model) Radius() float32 {
	var r float32
	for _, v := range m.Vertices {
		r = max(r, math32.Sqrt(v.X*v.X+v.Y*v.Y+v.Z*v.Z))
	}
	return r
}
