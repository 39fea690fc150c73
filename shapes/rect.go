package shapes

import (
	"honnef.co/go/curve"

	"github.com/gogpu/tessmesh"
	"github.com/gogpu/tessmesh/tess"
)

// FillRect is a filled axis-aligned rectangle.
type FillRect struct {
	Rect    curve.Rect
	Options *tess.FillOptions
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s FillRect) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.FillRectangle(s.Rect, s.Options, b)
}

// StrokeRect is the stroked outline of an axis-aligned rectangle.
type StrokeRect struct {
	Rect    curve.Rect
	Options *tess.StrokeOptions
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s StrokeRect) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.StrokeRectangle(s.Rect, s.Options, b)
}

// FillRoundedRect is a filled rectangle with rounded corners.
type FillRoundedRect struct {
	Rect    curve.Rect
	Radii   tess.BorderRadii
	Options *tess.FillOptions
}

// DefaultFillRoundedRect returns a filled rounded rectangle with a
// corner radius of 10 on all corners. The rectangle itself is zero-size
// until set.
func DefaultFillRoundedRect() FillRoundedRect {
	return FillRoundedRect{Radii: tess.UniformBorderRadii(10)}
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s FillRoundedRect) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.FillRoundedRectangle(s.Rect, s.Radii, s.Options, b)
}

// StrokeRoundedRect is the stroked outline of a rectangle with rounded
// corners.
type StrokeRoundedRect struct {
	Rect    curve.Rect
	Radii   tess.BorderRadii
	Options *tess.StrokeOptions
}

// DefaultStrokeRoundedRect returns a stroked rounded rectangle with a
// corner radius of 10 on all corners.
func DefaultStrokeRoundedRect() StrokeRoundedRect {
	return StrokeRoundedRect{Radii: tess.UniformBorderRadii(10)}
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s StrokeRoundedRect) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.StrokeRoundedRectangle(s.Rect, s.Radii, s.Options, b)
}
