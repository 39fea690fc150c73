package shapes

import (
	"honnef.co/go/curve"

	"github.com/gogpu/tessmesh"
	"github.com/gogpu/tessmesh/tess"
)

// defaultQuadPoints is a small axis-aligned square near the origin, used
// by the Default* constructors as sample geometry.
func defaultQuadPoints() [4]curve.Point {
	return [4]curve.Point{
		{X: 0, Y: 0},
		{X: 0, Y: 25},
		{X: 25, Y: 25},
		{X: 25, Y: 0},
	}
}

// FillQuad is a filled quadrilateral. The points are corners in outline
// order and must form a convex quad for correct output.
type FillQuad struct {
	Points  [4]curve.Point
	Options *tess.FillOptions
}

// DefaultFillQuad returns a filled 25-unit square at the origin.
func DefaultFillQuad() FillQuad {
	return FillQuad{Points: defaultQuadPoints()}
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s FillQuad) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.FillQuad(s.Points[0], s.Points[1], s.Points[2], s.Points[3], s.Options, b)
}

// StrokeQuad is the stroked outline of a quadrilateral.
type StrokeQuad struct {
	Points  [4]curve.Point
	Options *tess.StrokeOptions
}

// DefaultStrokeQuad returns a stroked 25-unit square at the origin.
func DefaultStrokeQuad() StrokeQuad {
	return StrokeQuad{Points: defaultQuadPoints()}
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s StrokeQuad) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.StrokeQuad(s.Points[0], s.Points[1], s.Points[2], s.Points[3], s.Options, b)
}
