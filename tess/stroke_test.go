package tess

import (
	"errors"
	"math"
	"testing"

	"honnef.co/go/curve"
)

func TestStrokeCircle(t *testing.T) {
	const (
		radius = 50.0
		width  = 4.0
	)
	opts := DefaultStrokeOptions().WithWidth(width).WithJoin(curve.RoundJoin)
	rec := &geometryRecorder{}
	if err := StrokeCircle(curve.Point{}, radius, &opts, rec); err != nil {
		t.Fatalf("StrokeCircle() = %v", err)
	}
	if len(rec.triangles) == 0 {
		t.Fatal("no triangles produced")
	}
	if !rec.validIndices() {
		t.Error("triangle indices out of range")
	}
	// The stroke is an annulus around the circle outline.
	margin := width/2 + 4*opts.Tolerance
	for i, p := range rec.vertices {
		d := math.Hypot(p.X, p.Y)
		if d < radius-margin || d > radius+margin {
			t.Errorf("vertex %d at distance %f, want within %f of radius %f", i, d, margin, radius)
		}
	}
	if rec.strokeVertices != len(rec.vertices) {
		t.Errorf("strokeVertices = %d, want all %d vertices via the stroke callback",
			rec.strokeVertices, len(rec.vertices))
	}
}

func TestStrokeCircleDegenerate(t *testing.T) {
	rec := &geometryRecorder{}
	err := StrokeCircle(curve.Point{}, 0, nil, rec)
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("StrokeCircle(radius=0) = %v, want ErrDegenerateGeometry", err)
	}
}

func TestStrokeZeroWidth(t *testing.T) {
	opts := StrokeOptions{Width: 0}
	rec := &geometryRecorder{}
	err := StrokePolyline([]curve.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, false, &opts, rec)
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("StrokePolyline(width=0) = %v, want ErrDegenerateGeometry", err)
	}
}

func TestStrokePolylineOpen(t *testing.T) {
	const width = 2.0
	opts := DefaultStrokeOptions().WithWidth(width)
	rec := &geometryRecorder{}
	points := []curve.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}
	if err := StrokePolyline(points, false, &opts, rec); err != nil {
		t.Fatalf("StrokePolyline() = %v", err)
	}
	if len(rec.triangles) == 0 {
		t.Fatal("no triangles produced")
	}
	// A butt-capped horizontal segment stays within its ribbon.
	margin := width/2 + 4*opts.Tolerance
	for i, p := range rec.vertices {
		if p.X < -margin || p.X > 100+margin || p.Y < -margin || p.Y > margin {
			t.Errorf("vertex %d (%f, %f) outside the stroke ribbon", i, p.X, p.Y)
		}
	}
	// Ribbon area: length times width, within flattening tolerance.
	if got, want := rec.totalArea(), 100.0*width; math.Abs(got-want) > 5 {
		t.Errorf("area = %f, want about %f", got, want)
	}
}

func TestStrokePolylineClosed(t *testing.T) {
	opts := DefaultStrokeOptions().WithWidth(2)
	rec := &geometryRecorder{}
	points := []curve.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 0, Y: 50}}
	if err := StrokePolyline(points, true, &opts, rec); err != nil {
		t.Fatalf("StrokePolyline(closed) = %v", err)
	}
	if !rec.validIndices() {
		t.Error("triangle indices out of range")
	}
	// A closed 50x50 square outline at width 2 covers roughly the
	// perimeter times the width.
	if got := rec.totalArea(); got < 300 || got > 500 {
		t.Errorf("area = %f, want near 400", got)
	}
}

func TestStrokePolylineTooFewPoints(t *testing.T) {
	rec := &geometryRecorder{}
	err := StrokePolyline([]curve.Point{{X: 1, Y: 1}}, false, nil, rec)
	if !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("StrokePolyline(1 point) = %v, want ErrTooFewPoints", err)
	}
}

func TestStrokeShapes(t *testing.T) {
	// Smoke tests: every stroked primitive produces valid, non-empty
	// geometry with default options.
	tests := []struct {
		name string
		run  func(out GeometryBuilder) error
	}{
		{"ellipse", func(out GeometryBuilder) error {
			return StrokeEllipse(curve.Point{}, curve.Vec2{X: 40, Y: 25}, 0, nil, out)
		}},
		{"rectangle", func(out GeometryBuilder) error {
			return StrokeRectangle(curve.Rect{X0: 0, Y0: 0, X1: 80, Y1: 40}, nil, out)
		}},
		{"rounded rectangle", func(out GeometryBuilder) error {
			return StrokeRoundedRectangle(curve.Rect{X0: 0, Y0: 0, X1: 80, Y1: 40}, UniformBorderRadii(10), nil, out)
		}},
		{"quad", func(out GeometryBuilder) error {
			return StrokeQuad(
				curve.Point{X: 0, Y: 0},
				curve.Point{X: 0, Y: 25},
				curve.Point{X: 25, Y: 25},
				curve.Point{X: 25, Y: 0},
				nil, out,
			)
		}},
		{"triangle", func(out GeometryBuilder) error {
			return StrokeTriangle(
				curve.Point{X: 0, Y: 0},
				curve.Point{X: 12.5, Y: 25},
				curve.Point{X: 25, Y: 0},
				nil, out,
			)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &geometryRecorder{}
			if err := tt.run(rec); err != nil {
				t.Fatalf("stroke = %v", err)
			}
			if len(rec.triangles) == 0 {
				t.Error("no triangles produced")
			}
			if !rec.validIndices() {
				t.Error("triangle indices out of range")
			}
		})
	}
}

func BenchmarkStrokeCircle(b *testing.B) {
	rec := &geometryRecorder{}
	opts := DefaultStrokeOptions().WithWidth(4)
	for b.Loop() {
		rec.vertices = rec.vertices[:0]
		rec.triangles = rec.triangles[:0]
		if err := StrokeCircle(curve.Point{}, 100, &opts, rec); err != nil {
			b.Fatal(err)
		}
	}
}
