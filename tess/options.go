package tess

import (
	libtess2 "github.com/hajimehoshi/go-libtess2"
	"honnef.co/go/curve"
)

// DefaultTolerance is the default maximum distance between a curved
// outline and its line-segment approximation.
const DefaultTolerance = 0.1

// FillRule selects which regions of a self-overlapping outline count as
// inside.
type FillRule int

const (
	// FillRuleNonZero fills regions with a non-zero winding number.
	FillRuleNonZero FillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	FillRuleEvenOdd
)

func (r FillRule) windingRule() libtess2.WindingRule {
	if r == FillRuleEvenOdd {
		return libtess2.WindingRuleOdd
	}
	return libtess2.WindingRuleNonzero
}

// FillOptions configures fill tessellation.
type FillOptions struct {
	// Tolerance bounds the distance between curved outlines and their
	// flattened approximation. Default: DefaultTolerance
	Tolerance float64

	// Rule decides which regions are inside a self-overlapping outline.
	// Only FillPolyline consults it; the named primitives have simple
	// outlines where both rules agree. Default: FillRuleNonZero
	Rule FillRule
}

// DefaultFillOptions returns a FillOptions with default settings.
func DefaultFillOptions() FillOptions {
	return FillOptions{
		Tolerance: DefaultTolerance,
		Rule:      FillRuleNonZero,
	}
}

// WithTolerance returns a copy of the FillOptions with the given
// tolerance.
func (o FillOptions) WithTolerance(tol float64) FillOptions {
	o.Tolerance = tol
	return o
}

// WithRule returns a copy of the FillOptions with the given fill rule.
func (o FillOptions) WithRule(rule FillRule) FillOptions {
	o.Rule = rule
	return o
}

// resolveFill applies library defaults for a nil or zero-tolerance
// options value. Options are passed by pointer and never mutated.
func resolveFill(opts *FillOptions) FillOptions {
	if opts == nil {
		return DefaultFillOptions()
	}
	o := *opts
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	return o
}

// StrokeOptions configures stroke tessellation.
type StrokeOptions struct {
	// Width is the stroke width. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints on open paths.
	// Default: curve.ButtCap
	Cap curve.Cap

	// Join is the shape of corners between segments.
	// Default: curve.MiterJoin
	Join curve.Join

	// MiterLimit is the ratio at which miter joins fall back to bevels.
	// Default: 4.0
	MiterLimit float64

	// Tolerance bounds the distance between curved outlines and their
	// flattened approximation. Default: DefaultTolerance
	Tolerance float64
}

// DefaultStrokeOptions returns a StrokeOptions with default settings:
// a solid 1-unit line with butt caps and miter joins.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		Width:      1.0,
		Cap:        curve.ButtCap,
		Join:       curve.MiterJoin,
		MiterLimit: 4.0,
		Tolerance:  DefaultTolerance,
	}
}

// WithWidth returns a copy of the StrokeOptions with the given width.
func (o StrokeOptions) WithWidth(w float64) StrokeOptions {
	o.Width = w
	return o
}

// WithCap returns a copy of the StrokeOptions with the given line cap.
func (o StrokeOptions) WithCap(c curve.Cap) StrokeOptions {
	o.Cap = c
	return o
}

// WithJoin returns a copy of the StrokeOptions with the given line join.
func (o StrokeOptions) WithJoin(j curve.Join) StrokeOptions {
	o.Join = j
	return o
}

// WithMiterLimit returns a copy of the StrokeOptions with the given miter
// limit. A value of 1.0 effectively disables miter joins.
func (o StrokeOptions) WithMiterLimit(limit float64) StrokeOptions {
	o.MiterLimit = limit
	return o
}

// WithTolerance returns a copy of the StrokeOptions with the given
// tolerance.
func (o StrokeOptions) WithTolerance(tol float64) StrokeOptions {
	o.Tolerance = tol
	return o
}

// resolveStroke applies library defaults for a nil options value and for
// unset tolerance and miter limit. The width is left as given so that
// degenerate widths surface as errors rather than being silently
// replaced.
func resolveStroke(opts *StrokeOptions) StrokeOptions {
	if opts == nil {
		return DefaultStrokeOptions()
	}
	o := *opts
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MiterLimit <= 0 {
		o.MiterLimit = 4.0
	}
	return o
}

// stroke converts the options to the curve package's stroke style.
func (o StrokeOptions) stroke() curve.Stroke {
	return curve.Stroke{
		Width:      o.Width,
		Join:       o.Join,
		MiterLimit: o.MiterLimit,
		StartCap:   o.Cap,
		EndCap:     o.Cap,
	}
}
