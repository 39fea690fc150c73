package tessmesh

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// Mesh is the finalized output of a build: three parallel per-vertex
// attribute arrays, an index list, and the primitive topology the
// rendering engine should apply to it. Once returned it is owned by the
// consumer; this library keeps no reference to it.
type Mesh struct {
	Positions []f32.Vec3
	Normals   []f32.Vec3
	UVs       []f32.Vec2
	Indices   []uint32
	Topology  gputypes.PrimitiveTopology
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// IndexCount returns the number of indices in the mesh.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// IndexFormat returns the GPU index format of the mesh's index buffer.
func (m *Mesh) IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}
