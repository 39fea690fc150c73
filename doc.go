// Package tessmesh turns parametric 2D shape descriptions into renderable
// triangle meshes.
//
// # Overview
//
// tessmesh is the adapter between the tessellation routines in the tess
// subpackage, which convert curves and outlines into triangles, and a GPU
// rendering engine, which consumes vertex and index buffers. Shapes are
// tessellated one after another into a shared buffer; the accumulator
// offsets each shape's indices so the combined buffer stays consistent as
// a single mesh.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/tessmesh"
//	    "github.com/gogpu/tessmesh/shapes"
//	)
//
//	// A mesh with a single filled circle.
//	mesh, err := tessmesh.BuildOne(shapes.DefaultFillCircle())
//
//	// A mesh combining several shapes.
//	mesh, err := tessmesh.NewMeshBuilder().
//	    With(shapes.FillCircle{Center: curve.Point{X: -100}, Radius: 30}).
//	    With(shapes.DefaultStrokeEllipse()).
//	    Build()
//
// The resulting Mesh exposes parallel position, normal, and UV arrays, a
// 32-bit index buffer, and a WebGPU primitive topology tag; the host
// engine consumes it as an opaque asset.
//
// # Architecture
//
// The library is organized into:
//   - Public API: MeshBuilder, Mesh, VertexBuffers, BuffersBuilder,
//     ShapeBuilder
//   - tess: fill and stroke tessellation per primitive
//   - shapes: per-primitive parameter structs implementing ShapeBuilder
//
// Custom geometry can bypass the shapes package entirely: any function
// writing into the sink is a shape via [ShapeBuilderFunc].
//
// # Coordinate System
//
// tessmesh does not impose a coordinate convention. Points pass through
// to vertex positions unchanged (Z fixed at 0, normal fixed at +Z); the
// UV channel defaults to the raw point coordinates.
package tessmesh
