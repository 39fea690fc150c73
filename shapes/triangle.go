package shapes

import (
	"honnef.co/go/curve"

	"github.com/gogpu/tessmesh"
	"github.com/gogpu/tessmesh/tess"
)

// defaultTrianglePoints is a small triangle near the origin, used by the
// Default* constructors as sample geometry.
func defaultTrianglePoints() [3]curve.Point {
	return [3]curve.Point{
		{X: 0, Y: 0},
		{X: 12.5, Y: 25},
		{X: 25, Y: 0},
	}
}

// FillTriangle is a filled triangle.
type FillTriangle struct {
	Points  [3]curve.Point
	Options *tess.FillOptions
}

// DefaultFillTriangle returns a filled 25-unit-wide triangle at the
// origin.
func DefaultFillTriangle() FillTriangle {
	return FillTriangle{Points: defaultTrianglePoints()}
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s FillTriangle) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.FillTriangle(s.Points[0], s.Points[1], s.Points[2], s.Options, b)
}

// StrokeTriangle is the stroked outline of a triangle.
type StrokeTriangle struct {
	Points  [3]curve.Point
	Options *tess.StrokeOptions
}

// DefaultStrokeTriangle returns a stroked 25-unit-wide triangle at the
// origin.
func DefaultStrokeTriangle() StrokeTriangle {
	return StrokeTriangle{Points: defaultTrianglePoints()}
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s StrokeTriangle) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.StrokeTriangle(s.Points[0], s.Points[1], s.Points[2], s.Options, b)
}
