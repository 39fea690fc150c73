package tess

import "honnef.co/go/curve"

// FillAttributes carries per-vertex data produced by fill tessellation.
// It has no fields yet; fill callbacks receive it so fill and stroke
// sinks keep distinct signatures as the routines evolve.
type FillAttributes struct{}

// StrokeAttributes carries per-vertex data produced by stroke
// tessellation.
type StrokeAttributes struct {
	// Width is the stroke width the vertex was generated for.
	Width float64
}

// GeometryBuilder is the output sink for tessellation. The tessellation
// routines call Add*Vertex once per generated vertex and AddTriangle once
// per generated triangle.
//
// Vertex indices are local to the current tessellation pass: Add*Vertex
// returns indices counted from the most recent BeginGeometry call, and
// AddTriangle receives those same local values. An implementation that
// accumulates several passes into one buffer translates local indices to
// global ones using the vertex count recorded at BeginGeometry.
//
// The driver of a pass (not the tessellation routines) brackets it with
// BeginGeometry and EndGeometry, so that a single pass may span several
// tessellation calls sharing one local numbering.
type GeometryBuilder interface {
	// BeginGeometry starts a tessellation pass. Local vertex numbering
	// restarts at zero.
	BeginGeometry()

	// AddVertex adds a vertex with no tessellation attributes and
	// returns its local index.
	AddVertex(p curve.Point) uint32

	// AddFillVertex adds a vertex generated by fill tessellation and
	// returns its local index.
	AddFillVertex(p curve.Point, attrs FillAttributes) uint32

	// AddStrokeVertex adds a vertex generated by stroke tessellation and
	// returns its local index.
	AddStrokeVertex(p curve.Point, attrs StrokeAttributes) uint32

	// AddTriangle adds a triangle from three local vertex indices.
	AddTriangle(a, b, c uint32)

	// EndGeometry finishes the pass and reports how many vertices and
	// indices it produced.
	EndGeometry() (vertices, indices int)
}
