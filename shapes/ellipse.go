package shapes

import (
	"honnef.co/go/curve"

	"github.com/gogpu/tessmesh"
	"github.com/gogpu/tessmesh/tess"
)

// FillEllipse is a filled ellipse. XRotation rotates the ellipse about
// its center, in radians.
type FillEllipse struct {
	Center    curve.Point
	Radii     curve.Vec2
	XRotation float64
	Options   *tess.FillOptions
}

// DefaultFillEllipse returns a filled ellipse with radii (40, 25) and no
// rotation, centered at the origin.
func DefaultFillEllipse() FillEllipse {
	return FillEllipse{Radii: curve.Vec2{X: 40, Y: 25}}
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s FillEllipse) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.FillEllipse(s.Center, s.Radii, s.XRotation, s.Options, b)
}

// StrokeEllipse is the stroked outline of an ellipse.
type StrokeEllipse struct {
	Center    curve.Point
	Radii     curve.Vec2
	XRotation float64
	Options   *tess.StrokeOptions
}

// DefaultStrokeEllipse returns a stroked ellipse with radii (40, 25) and
// no rotation, centered at the origin.
func DefaultStrokeEllipse() StrokeEllipse {
	return StrokeEllipse{Radii: curve.Vec2{X: 40, Y: 25}}
}

// BuildInto implements tessmesh.ShapeBuilder.
func (s StrokeEllipse) BuildInto(b *tessmesh.BuffersBuilder) error {
	return tess.StrokeEllipse(s.Center, s.Radii, s.XRotation, s.Options, b)
}
