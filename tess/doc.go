// Package tess converts parametric 2D shape descriptions into triangle
// geometry.
//
// # Overview
//
// Each primitive kind has a fill entry point (triangles covering the
// interior) and a stroke entry point (triangles approximating the outline
// at a given width). Tessellation output is delivered through the
// [GeometryBuilder] sink, one callback per generated vertex and one per
// generated triangle, so callers control where the geometry lands and how
// points become engine vertices.
//
//	var sink tess.GeometryBuilder = ...
//	err := tess.FillCircle(curve.Point{X: 0, Y: 0}, 25, nil, sink)
//
// # Fill
//
// Convex primitives (circle, ellipse, rectangle, rounded rectangle, quad,
// triangle, convex polyline) are tessellated directly with triangle fans.
// Arbitrary polylines go through libtess2, which handles concave and
// self-overlapping input according to the configured fill rule.
//
// # Stroke
//
// Strokes are expanded to a filled outline with curve.StrokePath (the
// kurbo stroke expansion), flattened to line contours at the configured
// tolerance, and tessellated with libtess2 using the non-zero rule. Caps,
// joins, and the miter limit are set through [StrokeOptions].
//
// # Tolerance
//
// Curved outlines are approximated by line segments whose maximum distance
// from the true curve is bounded by the options' tolerance. Lower values
// produce more triangles.
//
// # Errors
//
// Degenerate input (zero or negative radius, zero stroke width, too few
// points) and internal tessellation failures are reported as errors
// wrapping [ErrDegenerateGeometry], [ErrTooFewPoints], or the underlying
// libtess2 error. Geometry already written to the sink before a failure is
// left in place; callers are expected to abandon the build.
package tess
