package tessmesh

import (
	"golang.org/x/image/math/f32"
	"honnef.co/go/curve"

	"github.com/gogpu/tessmesh/tess"
)

// Index references a vertex position in a mesh vertex list.
type Index = uint32

// Vertex is the engine-side vertex representation: a 3D position, a
// normal, and a texture coordinate. Geometry produced by this library is
// planar, so Pos[2] is always 0 and Norm is always +Z.
type Vertex struct {
	Pos  f32.Vec3
	Norm f32.Vec3
	UV   f32.Vec2
}

// VertexConstructor maps raw tessellation points to engine vertices. It
// is stateless; the zero value is ready to use.
//
// All three callback contexts (plain, fill, stroke) produce the identical
// vertex for the same point: the per-vertex tessellation attributes are
// deliberately discarded rather than folded into the UV channel, and the
// UV defaults to the raw point coordinates.
type VertexConstructor struct{}

// NewVertex converts a point to a vertex with no tessellation
// attributes.
func (VertexConstructor) NewVertex(p curve.Point) Vertex {
	return Vertex{
		Pos:  f32.Vec3{float32(p.X), float32(p.Y), 0},
		Norm: f32.Vec3{0, 0, 1},
		UV:   f32.Vec2{float32(p.X), float32(p.Y)},
	}
}

// NewFillVertex converts a point generated by fill tessellation. The
// fill attributes are ignored.
func (vc VertexConstructor) NewFillVertex(p curve.Point, _ tess.FillAttributes) Vertex {
	return vc.NewVertex(p)
}

// NewStrokeVertex converts a point generated by stroke tessellation. The
// stroke attributes are ignored.
func (vc VertexConstructor) NewStrokeVertex(p curve.Point, _ tess.StrokeAttributes) Vertex {
	return vc.NewVertex(p)
}
