// Package mesh defines the quad mesh types produced by the surface
// extractor. Vertices are positions in voxel units; quads reference
// vertices by index in winding order.
package mesh

// Vertex is a surface vertex in volume space, expressed in voxel units.
type Vertex struct {
	X, Y, Z float32
}

// Quad holds four vertex indices in winding order.
type Quad struct {
	I0, I1, I2, I3 int32
}

// QuadMesh is a quadrilateral surface mesh. In shared-vertex form the quads
// index into a deduplicated vertex array; in quad-soup form every quad owns
// four consecutive vertices and no vertex is referenced twice.
type QuadMesh struct {
	Vertices []Vertex
	Quads    []Quad
}

// VertexCount returns the number of vertices.
func (m *QuadMesh) VertexCount() int {
	return len(m.Vertices)
}

// QuadCount returns the number of quads.
func (m *QuadMesh) QuadCount() int {
	return len(m.Quads)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *QuadMesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangles splits each quad into the two triangles (i0,i1,i2) and
// (i0,i2,i3), preserving orientation.
func (m *QuadMesh) Triangles() [][3]int32 {
	tris := make([][3]int32, 0, 2*len(m.Quads))
	for _, q := range m.Quads {
		tris = append(tris, [3]int32{q.I0, q.I1, q.I2}, [3]int32{q.I0, q.I2, q.I3})
	}
	return tris
}
