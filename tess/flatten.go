package tess

import (
	"iter"
	"math"

	"honnef.co/go/curve"
)

// flattenPath converts a path element sequence into polyline contours.
// Curves are subdivided until they are within tolerance of their chord.
// A MoveTo starts a new contour; ClosePath finishes one without
// duplicating its first point (contours are treated as implicitly
// closed by the polygon tessellator).
func flattenPath(path iter.Seq[curve.PathElement], tolerance float64) [][]curve.Point {
	var contours [][]curve.Point
	var cur []curve.Point
	var pos curve.Point

	flush := func() {
		if len(cur) >= 3 {
			contours = append(contours, cur)
		}
		cur = nil
	}

	for el := range path {
		switch el.Kind {
		case curve.MoveToKind:
			flush()
			pos = el.P0
			cur = append(cur, pos)

		case curve.LineToKind:
			pos = el.P0
			cur = append(cur, pos)

		case curve.QuadToKind:
			flattenQuad(pos, el.P0, el.P1, tolerance, &cur)
			pos = el.P1

		case curve.CubicToKind:
			flattenCubic(pos, el.P0, el.P1, el.P2, tolerance, &cur)
			pos = el.P2

		case curve.ClosePathKind:
			if len(cur) > 0 {
				pos = cur[0]
			}
			flush()
		}
	}
	flush()
	return contours
}

// flattenQuad recursively subdivides a quadratic Bezier, appending the
// endpoints of the generated segments (but not p0) to points.
func flattenQuad(p0, p1, p2 curve.Point, tolerance float64, points *[]curve.Point) {
	if distToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	mid := lerp(q0, q1, 0.5)
	flattenQuad(p0, q0, mid, tolerance, points)
	flattenQuad(mid, q1, p2, tolerance, points)
}

// flattenCubic recursively subdivides a cubic Bezier with de Casteljau's
// algorithm, appending the endpoints of the generated segments (but not
// p0) to points.
func flattenCubic(p0, p1, p2, p3 curve.Point, tolerance float64, points *[]curve.Point) {
	d := math.Max(distToLine(p1, p0, p3), distToLine(p2, p0, p3))
	if d < tolerance {
		*points = append(*points, p3)
		return
	}
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(p2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	mid := lerp(r0, r1, 0.5)
	flattenCubic(p0, q0, r0, mid, tolerance, points)
	flattenCubic(mid, r1, q2, p3, tolerance, points)
}

func lerp(a, b curve.Point, t float64) curve.Point {
	return curve.Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// distToLine is the perpendicular distance from p to the segment (a, b).
func distToLine(p, a, b curve.Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	abLenSq := abx*abx + aby*aby
	if abLenSq < 1e-20 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / abLenSq
	t = math.Max(0, math.Min(1, t))
	cx, cy := a.X+abx*t, a.Y+aby*t
	return math.Hypot(p.X-cx, p.Y-cy)
}

// arcSegments reports how many line segments approximate a full circle of
// the given radius within tolerance.
func arcSegments(radius, tolerance float64) int {
	if tolerance >= radius {
		return 8
	}
	// Chord of a circular arc deviates from the arc by
	// r*(1 - cos(theta/2)); solve for the step that stays within
	// tolerance.
	step := 2 * math.Acos(1-tolerance/radius)
	n := int(math.Ceil(2 * math.Pi / step))
	if n < 8 {
		n = 8
	}
	if n > 4096 {
		n = 4096
	}
	return n
}

// circleRing generates the outline of a circle as a closed point ring,
// counter-clockwise in a y-up coordinate system.
func circleRing(center curve.Point, radius, tolerance float64) []curve.Point {
	n := arcSegments(radius, tolerance)
	ring := make([]curve.Point, n)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / float64(n)
		ring[i] = curve.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return ring
}

// ellipseRing generates the outline of an ellipse with the given radii,
// rotated by xRotation radians about its center.
func ellipseRing(center curve.Point, radii curve.Vec2, xRotation, tolerance float64) []curve.Point {
	n := arcSegments(math.Max(radii.X, radii.Y), tolerance)
	sinR, cosR := math.Sincos(xRotation)
	ring := make([]curve.Point, n)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := radii.X * math.Cos(a)
		y := radii.Y * math.Sin(a)
		ring[i] = curve.Point{
			X: center.X + x*cosR - y*sinR,
			Y: center.Y + x*sinR + y*cosR,
		}
	}
	return ring
}

// BorderRadii is the per-corner radius set for a rounded rectangle.
type BorderRadii struct {
	TopLeft     float64
	TopRight    float64
	BottomLeft  float64
	BottomRight float64
}

// UniformBorderRadii returns a BorderRadii with the same radius on all
// four corners.
func UniformBorderRadii(r float64) BorderRadii {
	return BorderRadii{
		TopLeft:     r,
		TopRight:    r,
		BottomLeft:  r,
		BottomRight: r,
	}
}

// clamped limits every radius to the half extent of the rectangle, so
// opposite corner arcs never overlap.
func (br BorderRadii) clamped(rect curve.Rect) BorderRadii {
	limit := math.Min(math.Abs(rect.X1-rect.X0), math.Abs(rect.Y1-rect.Y0)) / 2
	clamp := func(r float64) float64 {
		return math.Max(0, math.Min(r, limit))
	}
	return BorderRadii{
		TopLeft:     clamp(br.TopLeft),
		TopRight:    clamp(br.TopRight),
		BottomLeft:  clamp(br.BottomLeft),
		BottomRight: clamp(br.BottomRight),
	}
}

// roundedRectRing generates the outline of a rectangle with rounded
// corners as a closed point ring. Corners with radius zero contribute a
// single point. "Top" refers to the smaller Y edge.
func roundedRectRing(rect curve.Rect, radii BorderRadii, tolerance float64) []curve.Point {
	x0, x1 := math.Min(rect.X0, rect.X1), math.Max(rect.X0, rect.X1)
	y0, y1 := math.Min(rect.Y0, rect.Y1), math.Max(rect.Y0, rect.Y1)
	br := radii.clamped(rect)

	var ring []curve.Point
	corner := func(cx, cy, r, startAngle float64) {
		if r <= 0 {
			ring = append(ring, curve.Point{X: cx, Y: cy})
			return
		}
		// A quarter arc gets a quarter of the full-circle segment
		// budget.
		n := arcSegments(r, tolerance)/4 + 1
		for i := 0; i <= n; i++ {
			a := startAngle + math.Pi/2*float64(i)/float64(n)
			ring = append(ring, curve.Point{
				X: cx + r*math.Cos(a),
				Y: cy + r*math.Sin(a),
			})
		}
	}

	// Walk the corners in outline order: top-left, top-right,
	// bottom-right, bottom-left.
	corner(x0+br.TopLeft, y0+br.TopLeft, br.TopLeft, math.Pi)
	corner(x1-br.TopRight, y0+br.TopRight, br.TopRight, 3*math.Pi/2)
	corner(x1-br.BottomRight, y1-br.BottomRight, br.BottomRight, 0)
	corner(x0+br.BottomLeft, y1-br.BottomLeft, br.BottomLeft, math.Pi/2)
	return ring
}
