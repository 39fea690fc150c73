package shapes

import (
	"honnef.co/go/curve"

	"github.com/gogpu/tessmesh"
	"github.com/gogpu/tessmesh/tess"
)

// FillCircle is a filled circle.
type FillCircle struct {
	Center  curve.Point
	Radius  float64
	Options *tess.FillOptions
}

// DefaultFillCircle returns a filled circle with radius 25 centered at
// the origin.
func DefaultFillCircle() FillCircle {
	return FillCircle{Radius: 25}
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s FillCircle) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.FillCircle(s.Center, s.Radius, s.Options, b)
}

// StrokeCircle is the stroked outline of a circle.
type StrokeCircle struct {
	Center  curve.Point
	Radius  float64
	Options *tess.StrokeOptions
}

// DefaultStrokeCircle returns a stroked circle with radius 25 centered
// at the origin.
func DefaultStrokeCircle() StrokeCircle {
	return StrokeCircle{Radius: 25}
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s StrokeCircle) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.StrokeCircle(s.Center, s.Radius, s.Options, b)
}
