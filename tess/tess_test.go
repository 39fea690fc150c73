package tess

import (
	"honnef.co/go/curve"
)

// geometryRecorder is a GeometryBuilder that records tessellation output
// for inspection in tests.
type geometryRecorder struct {
	vertices  []curve.Point
	triangles [][3]uint32

	fillVertices   int
	strokeVertices int
	plainVertices  int
}

func (r *geometryRecorder) BeginGeometry() {}

func (r *geometryRecorder) AddVertex(p curve.Point) uint32 {
	r.plainVertices++
	return r.push(p)
}

func (r *geometryRecorder) AddFillVertex(p curve.Point, _ FillAttributes) uint32 {
	r.fillVertices++
	return r.push(p)
}

func (r *geometryRecorder) AddStrokeVertex(p curve.Point, _ StrokeAttributes) uint32 {
	r.strokeVertices++
	return r.push(p)
}

func (r *geometryRecorder) push(p curve.Point) uint32 {
	r.vertices = append(r.vertices, p)
	return uint32(len(r.vertices) - 1)
}

func (r *geometryRecorder) AddTriangle(a, b, c uint32) {
	r.triangles = append(r.triangles, [3]uint32{a, b, c})
}

func (r *geometryRecorder) EndGeometry() (int, int) {
	return len(r.vertices), 3 * len(r.triangles)
}

// validIndices reports whether every recorded triangle references
// recorded vertices.
func (r *geometryRecorder) validIndices() bool {
	n := uint32(len(r.vertices))
	for _, t := range r.triangles {
		if t[0] >= n || t[1] >= n || t[2] >= n {
			return false
		}
	}
	return true
}

// totalArea sums the unsigned areas of all recorded triangles.
func (r *geometryRecorder) totalArea() float64 {
	var area float64
	for _, t := range r.triangles {
		a := r.vertices[t[0]]
		b := r.vertices[t[1]]
		c := r.vertices[t[2]]
		cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
		if cross < 0 {
			cross = -cross
		}
		area += cross / 2
	}
	return area
}
