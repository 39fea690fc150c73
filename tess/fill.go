package tess

import (
	"fmt"

	libtess2 "github.com/hajimehoshi/go-libtess2"
	"honnef.co/go/curve"
)

// FillCircle tessellates a filled circle as a triangle fan around the
// center. A radius of zero or less is degenerate.
func FillCircle(center curve.Point, radius float64, opts *FillOptions, out GeometryBuilder) error {
	if radius <= 0 {
		return fmt.Errorf("fill circle: radius %g: %w", radius, ErrDegenerateGeometry)
	}
	o := resolveFill(opts)
	fanFill(center, circleRing(center, radius, o.Tolerance), out)
	return nil
}

// FillEllipse tessellates a filled ellipse with the given radii, rotated
// by xRotation radians about its center.
func FillEllipse(center curve.Point, radii curve.Vec2, xRotation float64, opts *FillOptions, out GeometryBuilder) error {
	if radii.X <= 0 || radii.Y <= 0 {
		return fmt.Errorf("fill ellipse: radii (%g, %g): %w", radii.X, radii.Y, ErrDegenerateGeometry)
	}
	o := resolveFill(opts)
	fanFill(center, ellipseRing(center, radii, xRotation, o.Tolerance), out)
	return nil
}

// FillRectangle tessellates a filled axis-aligned rectangle as two
// triangles. A zero-size rectangle produces zero-area triangles, not an
// error.
func FillRectangle(rect curve.Rect, opts *FillOptions, out GeometryBuilder) error {
	_ = resolveFill(opts)
	a := out.AddFillVertex(curve.Point{X: rect.X0, Y: rect.Y0}, FillAttributes{})
	b := out.AddFillVertex(curve.Point{X: rect.X1, Y: rect.Y0}, FillAttributes{})
	c := out.AddFillVertex(curve.Point{X: rect.X1, Y: rect.Y1}, FillAttributes{})
	d := out.AddFillVertex(curve.Point{X: rect.X0, Y: rect.Y1}, FillAttributes{})
	out.AddTriangle(a, b, c)
	out.AddTriangle(a, c, d)
	return nil
}

// FillRoundedRectangle tessellates a filled rectangle with rounded
// corners as a fan around the rectangle center.
func FillRoundedRectangle(rect curve.Rect, radii BorderRadii, opts *FillOptions, out GeometryBuilder) error {
	o := resolveFill(opts)
	center := curve.Point{X: (rect.X0 + rect.X1) / 2, Y: (rect.Y0 + rect.Y1) / 2}
	fanFill(center, roundedRectRing(rect, radii, o.Tolerance), out)
	return nil
}

// FillQuad tessellates a filled quadrilateral from its four corners in
// outline order. The quad must be convex for correct output.
func FillQuad(a, b, c, d curve.Point, opts *FillOptions, out GeometryBuilder) error {
	_ = resolveFill(opts)
	va := out.AddFillVertex(a, FillAttributes{})
	vb := out.AddFillVertex(b, FillAttributes{})
	vc := out.AddFillVertex(c, FillAttributes{})
	vd := out.AddFillVertex(d, FillAttributes{})
	out.AddTriangle(va, vb, vc)
	out.AddTriangle(va, vc, vd)
	return nil
}

// FillTriangle tessellates a single filled triangle.
func FillTriangle(a, b, c curve.Point, opts *FillOptions, out GeometryBuilder) error {
	_ = resolveFill(opts)
	va := out.AddFillVertex(a, FillAttributes{})
	vb := out.AddFillVertex(b, FillAttributes{})
	vc := out.AddFillVertex(c, FillAttributes{})
	out.AddTriangle(va, vb, vc)
	return nil
}

// FillConvexPolyline tessellates a filled convex polygon as a fan from
// its first point.
//
// Convexity is assumed, not verified: concave input produces
// geometrically incorrect output without an error. Use FillPolyline for
// arbitrary outlines.
func FillConvexPolyline(points []curve.Point, opts *FillOptions, out GeometryBuilder) error {
	if len(points) < 3 {
		return fmt.Errorf("fill convex polyline: %d points: %w", len(points), ErrTooFewPoints)
	}
	_ = resolveFill(opts)
	first := out.AddFillVertex(points[0], FillAttributes{})
	prev := out.AddFillVertex(points[1], FillAttributes{})
	for _, p := range points[2:] {
		next := out.AddFillVertex(p, FillAttributes{})
		out.AddTriangle(first, prev, next)
		prev = next
	}
	return nil
}

// FillPolyline tessellates an arbitrary closed polygon outline, which may
// be concave or self-overlapping. The options' fill rule decides which
// regions count as inside. Tessellation failures from degenerate input
// propagate to the caller.
func FillPolyline(points []curve.Point, opts *FillOptions, out GeometryBuilder) error {
	if len(points) < 3 {
		return fmt.Errorf("fill polyline: %d points: %w", len(points), ErrTooFewPoints)
	}
	o := resolveFill(opts)
	return fillContours([][]curve.Point{points}, o.Rule, func(p curve.Point) uint32 {
		return out.AddFillVertex(p, FillAttributes{})
	}, out)
}

// fanFill emits a convex ring as a triangle fan around an interior
// center point.
func fanFill(center curve.Point, ring []curve.Point, out GeometryBuilder) {
	c := out.AddFillVertex(center, FillAttributes{})
	first := out.AddFillVertex(ring[0], FillAttributes{})
	prev := first
	for _, p := range ring[1:] {
		next := out.AddFillVertex(p, FillAttributes{})
		out.AddTriangle(c, prev, next)
		prev = next
	}
	out.AddTriangle(c, prev, first)
}

// fillContours runs the polygon tessellator over a set of closed
// contours and forwards the result to the sink. addVertex lets fill and
// stroke callers emit through their respective vertex callbacks.
func fillContours(contours [][]curve.Point, rule FillRule, addVertex func(curve.Point) uint32, out GeometryBuilder) error {
	input := make([]libtess2.Contour, 0, len(contours))
	for _, c := range contours {
		tc := make(libtess2.Contour, len(c))
		for i, p := range c {
			tc[i] = libtess2.Vertex{X: float32(p.X), Y: float32(p.Y)}
		}
		input = append(input, tc)
	}

	elements, vertices, err := libtess2.Tesselate(input, rule.windingRule())
	if err != nil {
		return fmt.Errorf("tess: %w", err)
	}

	local := make([]uint32, len(vertices))
	for i, v := range vertices {
		local[i] = addVertex(curve.Point{X: float64(v.X), Y: float64(v.Y)})
	}
	for i := 0; i+2 < len(elements); i += 3 {
		a, b, c := elements[i], elements[i+1], elements[i+2]
		// The tessellator marks incomplete polygons with negative
		// indices; triangles are always complete, but skip them anyway.
		if a < 0 || b < 0 || c < 0 {
			continue
		}
		out.AddTriangle(local[a], local[b], local[c])
	}
	return nil
}
