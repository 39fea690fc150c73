package tessmesh

import (
	"testing"

	"honnef.co/go/curve"

	"github.com/gogpu/tessmesh/tess"
)

func TestBuffersBuilderLocalIndices(t *testing.T) {
	var buffers VertexBuffers
	b := NewBuffersBuilder(&buffers, VertexConstructor{})

	b.BeginGeometry()
	if got := b.AddVertex(curve.Point{X: 1}); got != 0 {
		t.Errorf("first local index = %d, want 0", got)
	}
	if got := b.AddFillVertex(curve.Point{X: 2}, tess.FillAttributes{}); got != 1 {
		t.Errorf("second local index = %d, want 1", got)
	}
	if got := b.AddStrokeVertex(curve.Point{X: 3}, tess.StrokeAttributes{}); got != 2 {
		t.Errorf("third local index = %d, want 2", got)
	}
	b.AddTriangle(0, 1, 2)
	nv, ni := b.EndGeometry()
	if nv != 3 || ni != 3 {
		t.Errorf("EndGeometry() = (%d, %d), want (3, 3)", nv, ni)
	}
}

func TestBuffersBuilderOffsetTranslation(t *testing.T) {
	var buffers VertexBuffers
	b := NewBuffersBuilder(&buffers, VertexConstructor{})

	// First pass: a triangle.
	b.BeginGeometry()
	b.AddVertex(curve.Point{X: 0, Y: 0})
	b.AddVertex(curve.Point{X: 1, Y: 0})
	b.AddVertex(curve.Point{X: 0, Y: 1})
	b.AddTriangle(0, 1, 2)
	b.EndGeometry()

	// Second pass: local numbering restarts, stored indices don't.
	b.BeginGeometry()
	if got := b.AddVertex(curve.Point{X: 5, Y: 5}); got != 0 {
		t.Errorf("local index after BeginGeometry = %d, want 0", got)
	}
	b.AddVertex(curve.Point{X: 6, Y: 5})
	b.AddVertex(curve.Point{X: 5, Y: 6})
	b.AddTriangle(0, 1, 2)
	nv, ni := b.EndGeometry()
	if nv != 3 || ni != 3 {
		t.Errorf("EndGeometry() = (%d, %d), want (3, 3)", nv, ni)
	}

	want := []Index{0, 1, 2, 3, 4, 5}
	if len(buffers.Indices) != len(want) {
		t.Fatalf("indices = %v, want %v", buffers.Indices, want)
	}
	for i, idx := range want {
		if buffers.Indices[i] != idx {
			t.Errorf("index %d = %d, want %d", i, buffers.Indices[i], idx)
		}
	}

	// The combined buffer must be self-consistent.
	for i, idx := range buffers.Indices {
		if int(idx) >= len(buffers.Vertices) {
			t.Errorf("index %d = %d, out of range for %d vertices", i, idx, len(buffers.Vertices))
		}
	}
}

func TestBuffersBuilderImplementsGeometryBuilder(t *testing.T) {
	var b any = &BuffersBuilder{}
	if _, ok := b.(tess.GeometryBuilder); !ok {
		t.Error("*BuffersBuilder does not implement tess.GeometryBuilder")
	}
}
