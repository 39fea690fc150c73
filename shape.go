package tessmesh

// ShapeBuilder is anything capable of tessellating itself into a buffer.
// Each implementation invokes the appropriate tessellation routine for
// its primitive, forwarding the sink unchanged.
//
// Adding a new primitive means adding one small ShapeBuilder
// implementation; the accumulator and MeshBuilder stay untouched. The
// shapes subpackage provides implementations for the common primitives.
type ShapeBuilder interface {
	// BuildInto tessellates the shape into the given buffers builder. A
	// returned error is a tessellation failure; geometry written before
	// the failure is left in the buffers.
	BuildInto(b *BuffersBuilder) error
}

// ShapeBuilderFunc makes a plain function usable as a ShapeBuilder. It is
// the escape hatch for custom or composite geometry not covered by a
// named primitive: the function writes directly into the sink.
//
//	mesh, err := tessmesh.BuildOne(tessmesh.ShapeBuilderFunc(func(b *tessmesh.BuffersBuilder) error {
//		a := b.AddVertex(curve.Point{X: 0, Y: 0})
//		c := b.AddVertex(curve.Point{X: 10, Y: 0})
//		d := b.AddVertex(curve.Point{X: 5, Y: 10})
//		b.AddTriangle(a, c, d)
//		return nil
//	}))
type ShapeBuilderFunc func(b *BuffersBuilder) error

// BuildInto calls f(b).
func (f ShapeBuilderFunc) BuildInto(b *BuffersBuilder) error {
	return f(b)
}
