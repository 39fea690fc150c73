package tess

import (
	"fmt"
	"slices"

	"honnef.co/go/curve"
)

// StrokeCircle tessellates the outline of a circle at the options'
// stroke width.
func StrokeCircle(center curve.Point, radius float64, opts *StrokeOptions, out GeometryBuilder) error {
	if radius <= 0 {
		return fmt.Errorf("stroke circle: radius %g: %w", radius, ErrDegenerateGeometry)
	}
	o := resolveStroke(opts)
	return strokeRing(circleRing(center, radius, o.Tolerance), o, out)
}

// StrokeEllipse tessellates the outline of an ellipse with the given
// radii, rotated by xRotation radians about its center.
func StrokeEllipse(center curve.Point, radii curve.Vec2, xRotation float64, opts *StrokeOptions, out GeometryBuilder) error {
	if radii.X <= 0 || radii.Y <= 0 {
		return fmt.Errorf("stroke ellipse: radii (%g, %g): %w", radii.X, radii.Y, ErrDegenerateGeometry)
	}
	o := resolveStroke(opts)
	return strokeRing(ellipseRing(center, radii, xRotation, o.Tolerance), o, out)
}

// StrokeRectangle tessellates the outline of an axis-aligned rectangle.
func StrokeRectangle(rect curve.Rect, opts *StrokeOptions, out GeometryBuilder) error {
	o := resolveStroke(opts)
	ring := []curve.Point{
		{X: rect.X0, Y: rect.Y0},
		{X: rect.X1, Y: rect.Y0},
		{X: rect.X1, Y: rect.Y1},
		{X: rect.X0, Y: rect.Y1},
	}
	return strokeRing(ring, o, out)
}

// StrokeRoundedRectangle tessellates the outline of a rectangle with
// rounded corners.
func StrokeRoundedRectangle(rect curve.Rect, radii BorderRadii, opts *StrokeOptions, out GeometryBuilder) error {
	o := resolveStroke(opts)
	return strokeRing(roundedRectRing(rect, radii, o.Tolerance), o, out)
}

// StrokeQuad tessellates the outline of a quadrilateral from its four
// corners in outline order.
func StrokeQuad(a, b, c, d curve.Point, opts *StrokeOptions, out GeometryBuilder) error {
	o := resolveStroke(opts)
	return strokeRing([]curve.Point{a, b, c, d}, o, out)
}

// StrokeTriangle tessellates the outline of a triangle.
func StrokeTriangle(a, b, c curve.Point, opts *StrokeOptions, out GeometryBuilder) error {
	o := resolveStroke(opts)
	return strokeRing([]curve.Point{a, b, c}, o, out)
}

// StrokePolyline tessellates the outline of a polyline. When closed is
// true the last point connects back to the first and no caps are drawn;
// otherwise the endpoints get the options' line cap.
func StrokePolyline(points []curve.Point, closed bool, opts *StrokeOptions, out GeometryBuilder) error {
	if len(points) < 2 {
		return fmt.Errorf("stroke polyline: %d points: %w", len(points), ErrTooFewPoints)
	}
	o := resolveStroke(opts)
	return strokePath(polylineElements(points, closed), o, out)
}

// strokeRing strokes a closed point ring.
func strokeRing(ring []curve.Point, o StrokeOptions, out GeometryBuilder) error {
	return strokePath(polylineElements(ring, true), o, out)
}

// strokePath expands a path to its stroked outline, flattens the outline
// and fills it. The expansion handles caps, joins, and the miter limit;
// the resulting outline is filled with the non-zero rule so the outer and
// inner contours of closed strokes form a proper annulus.
func strokePath(els []curve.PathElement, o StrokeOptions, out GeometryBuilder) error {
	if o.Width <= 0 {
		return fmt.Errorf("stroke: width %g: %w", o.Width, ErrDegenerateGeometry)
	}
	stroked := curve.StrokePath(slices.Values(els), o.stroke(), curve.StrokeOpts{}, o.Tolerance)
	contours := flattenPath(stroked, o.Tolerance)
	if len(contours) == 0 {
		return fmt.Errorf("stroke: empty outline: %w", ErrDegenerateGeometry)
	}
	attrs := StrokeAttributes{Width: o.Width}
	return fillContours(contours, FillRuleNonZero, func(p curve.Point) uint32 {
		return out.AddStrokeVertex(p, attrs)
	}, out)
}

// polylineElements builds the path elements for a polyline.
func polylineElements(points []curve.Point, closed bool) []curve.PathElement {
	els := make([]curve.PathElement, 0, len(points)+1)
	els = append(els, curve.PathElement{Kind: curve.MoveToKind, P0: points[0]})
	for _, p := range points[1:] {
		els = append(els, curve.PathElement{Kind: curve.LineToKind, P0: p})
	}
	if closed {
		els = append(els, curve.PathElement{Kind: curve.ClosePathKind})
	}
	return els
}
