package tessmesh

import (
	"honnef.co/go/curve"

	"github.com/gogpu/tessmesh/tess"
)

// VertexBuffers accumulates the vertices and indices of one mesh build.
// Both lists are append-only while the build is in progress; every stored
// index is strictly less than len(Vertices).
type VertexBuffers struct {
	Vertices []Vertex
	Indices  []Index
}

// BuffersBuilder writes tessellation output into a VertexBuffers,
// converting points to vertices with a VertexConstructor and translating
// per-pass local indices to global ones. It implements
// [tess.GeometryBuilder].
//
// The builder tracks a base offset equal to the vertex count at the most
// recent BeginGeometry call and adds it to every triangle index before
// storage. This lets multiple independently tessellated shapes share one
// buffer without index collisions; no renumbering pass is needed
// afterwards.
type BuffersBuilder struct {
	buffers *VertexBuffers
	ctor    VertexConstructor

	baseVertex int
	baseIndex  int
}

var _ tess.GeometryBuilder = (*BuffersBuilder)(nil)

// NewBuffersBuilder returns a builder appending to buffers.
func NewBuffersBuilder(buffers *VertexBuffers, ctor VertexConstructor) *BuffersBuilder {
	return &BuffersBuilder{buffers: buffers, ctor: ctor}
}

// BeginGeometry starts a tessellation pass: local vertex numbering
// restarts at zero from the current vertex count.
func (b *BuffersBuilder) BeginGeometry() {
	b.baseVertex = len(b.buffers.Vertices)
	b.baseIndex = len(b.buffers.Indices)
}

// AddVertex appends a vertex built without tessellation attributes and
// returns its local index.
func (b *BuffersBuilder) AddVertex(p curve.Point) uint32 {
	return b.push(b.ctor.NewVertex(p))
}

// AddFillVertex appends a vertex generated by fill tessellation and
// returns its local index.
func (b *BuffersBuilder) AddFillVertex(p curve.Point, attrs tess.FillAttributes) uint32 {
	return b.push(b.ctor.NewFillVertex(p, attrs))
}

// AddStrokeVertex appends a vertex generated by stroke tessellation and
// returns its local index.
func (b *BuffersBuilder) AddStrokeVertex(p curve.Point, attrs tess.StrokeAttributes) uint32 {
	return b.push(b.ctor.NewStrokeVertex(p, attrs))
}

func (b *BuffersBuilder) push(v Vertex) uint32 {
	b.buffers.Vertices = append(b.buffers.Vertices, v)
	return uint32(len(b.buffers.Vertices) - 1 - b.baseVertex)
}

// AddTriangle appends a triangle given three local vertex indices,
// translating them to global indices.
func (b *BuffersBuilder) AddTriangle(v0, v1, v2 uint32) {
	base := Index(b.baseVertex)
	b.buffers.Indices = append(b.buffers.Indices, base+v0, base+v1, base+v2)
}

// EndGeometry finishes the pass and reports how many vertices and
// indices it produced.
func (b *BuffersBuilder) EndGeometry() (vertices, indices int) {
	return len(b.buffers.Vertices) - b.baseVertex, len(b.buffers.Indices) - b.baseIndex
}
