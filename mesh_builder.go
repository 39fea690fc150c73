package tessmesh

import (
	"errors"
	"log/slog"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// ErrBuilderConsumed reports use of a MeshBuilder after Build has
// transferred its buffers into a Mesh.
var ErrBuilderConsumed = errors.New("tessmesh: mesh builder already consumed by Build")

// MeshBuilder accumulates tessellated shapes into one mesh. It owns a
// single VertexBuffers for its lifetime; every added shape appends to it.
//
// A MeshBuilder is not safe for concurrent use: it is exclusively owned
// by the call sequence that constructs it.
type MeshBuilder struct {
	buffers  VertexBuffers
	builder  *BuffersBuilder
	err      error
	consumed bool
}

// NewMeshBuilder creates an empty mesh builder.
func NewMeshBuilder() *MeshBuilder {
	m := &MeshBuilder{}
	m.builder = NewBuffersBuilder(&m.buffers, VertexConstructor{})
	return m
}

// Add tessellates one shape into the builder's buffers. On error the
// buffers keep everything written before the failure; the build is
// expected to be abandoned, not resumed.
func (m *MeshBuilder) Add(shape ShapeBuilder) error {
	if m.consumed {
		return ErrBuilderConsumed
	}
	m.builder.BeginGeometry()
	if err := shape.BuildInto(m.builder); err != nil {
		return err
	}
	nv, ni := m.builder.EndGeometry()
	Logger().Debug("tessmesh: shape added",
		slog.Int("vertices", nv),
		slog.Int("indices", ni),
		slog.Int("totalVertices", len(m.buffers.Vertices)),
		slog.Int("totalIndices", len(m.buffers.Indices)))
	return nil
}

// With adds a shape and returns the builder for chaining. The first
// error encountered is recorded and surfaced by Build; subsequent With
// calls after an error are no-ops.
func (m *MeshBuilder) With(shape ShapeBuilder) *MeshBuilder {
	if m.err != nil {
		return m
	}
	m.err = m.Add(shape)
	return m
}

// Err returns the first error recorded by With, if any.
func (m *MeshBuilder) Err() error {
	return m.err
}

// Build finalizes the mesh using triangle-strip topology, matching the
// common engine default. Use BuildWithTopology to override.
func (m *MeshBuilder) Build() (*Mesh, error) {
	return m.BuildWithTopology(gputypes.PrimitiveTopologyTriangleStrip)
}

// BuildWithTopology finalizes the mesh with a specific primitive
// topology. It splits the accumulated vertices into the parallel
// position, normal, and UV arrays and transfers the index list.
//
// Build consumes the builder: the buffers move into the returned Mesh
// and any later Add, With, or Build call fails with ErrBuilderConsumed.
func (m *MeshBuilder) BuildWithTopology(topology gputypes.PrimitiveTopology) (*Mesh, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.consumed {
		return nil, ErrBuilderConsumed
	}
	m.consumed = true

	nv := len(m.buffers.Vertices)
	mesh := &Mesh{
		Positions: make([]f32.Vec3, nv),
		Normals:   make([]f32.Vec3, nv),
		UVs:       make([]f32.Vec2, nv),
		Indices:   m.buffers.Indices,
		Topology:  topology,
	}
	for i, v := range m.buffers.Vertices {
		mesh.Positions[i] = v.Pos
		mesh.Normals[i] = v.Norm
		mesh.UVs[i] = v.UV
	}

	// Transfer, don't copy: the builder gives up its buffers.
	m.buffers = VertexBuffers{}

	Logger().Debug("tessmesh: mesh built",
		slog.Int("vertices", nv),
		slog.Int("indices", len(mesh.Indices)),
		slog.Int("topology", int(topology)))
	return mesh, nil
}

// BuildOne makes a new MeshBuilder, adds the single given shape, and
// builds it. It is equivalent to:
//
//	tessmesh.NewMeshBuilder().With(shape).Build()
func BuildOne(shape ShapeBuilder) (*Mesh, error) {
	return NewMeshBuilder().With(shape).Build()
}
