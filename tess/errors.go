package tess

import "errors"

var (
	// ErrDegenerateGeometry reports shape parameters that cannot produce
	// any triangles, such as a circle with radius zero or a stroke with
	// width zero.
	ErrDegenerateGeometry = errors.New("tess: degenerate geometry")

	// ErrTooFewPoints reports a point sequence that is too short for the
	// requested operation: fills need at least three points, strokes need
	// at least two.
	ErrTooFewPoints = errors.New("tess: not enough points")
)
