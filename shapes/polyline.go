package shapes

import (
	"honnef.co/go/curve"

	"github.com/gogpu/tessmesh"
	"github.com/gogpu/tessmesh/tess"
)

// FillConvexPolyline is a filled convex polygon.
//
// The points are required to represent a convex outline; convexity is
// not verified, and concave input produces geometrically incorrect
// output without an error. Use FillPolyline for arbitrary outlines.
type FillConvexPolyline struct {
	Points  []curve.Point
	Options *tess.FillOptions
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s FillConvexPolyline) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.FillConvexPolyline(s.Points, s.Options, b)
}

// FillPolyline is a filled polygon with an arbitrary outline, which may
// be concave or self-overlapping. The options' fill rule decides which
// regions count as inside.
type FillPolyline struct {
	Points  []curve.Point
	Options *tess.FillOptions
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s FillPolyline) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.FillPolyline(s.Points, s.Options, b)
}

// StrokePolyline is the stroked outline of a polyline. Closed connects
// the last point back to the first; open endpoints get the options' line
// cap.
type StrokePolyline struct {
	Points  []curve.Point
	Closed  bool
	Options *tess.StrokeOptions
}

// DefaultStrokePolyline returns a stroked polyline that closes back on
// itself, the library default. The point list is empty until set.
func DefaultStrokePolyline() StrokePolyline {
	return StrokePolyline{Closed: true}
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s StrokePolyline) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.StrokePolyline(s.Points, s.Closed, s.Options, b)
}
