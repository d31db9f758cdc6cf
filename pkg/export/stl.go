package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/unixpickle/model3d/model3d"

	"github.com/chazu/dualmesh/pkg/mesh"
)

// triangleNormal computes the unnormalized normal of the triangle spanned
// by three vertices.
func triangleNormal(v0, v1, v2 mesh.Vertex) (nx, ny, nz float64) {
	x1 := float64(v1.X - v0.X)
	y1 := float64(v1.Y - v0.Y)
	z1 := float64(v1.Z - v0.Z)
	x2 := float64(v2.X - v0.X)
	y2 := float64(v2.Y - v0.Y)
	z2 := float64(v2.Z - v0.Z)
	return y1*z2 - z1*y2, z1*x2 - x1*z2, x1*y2 - y1*x2
}

// WriteSTL writes a quad mesh as ASCII STL, splitting every quad into the
// triangle pair (i0,i1,i2) and (i0,i2,i3). Facet normals are the
// unnormalized triangle cross products.
func WriteSTL(w io.Writer, m *mesh.QuadMesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "solid ")

	writeFacet := func(v0, v1, v2 mesh.Vertex) {
		nx, ny, nz := triangleNormal(v0, v1, v2)
		fmt.Fprintf(bw, "facet normal %g %g %g\n", nx, ny, nz)
		fmt.Fprintln(bw, " outer loop")
		for _, v := range [3]mesh.Vertex{v0, v1, v2} {
			fmt.Fprintf(bw, "  vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(bw, " endloop")
		fmt.Fprintln(bw, "endfacet")
	}

	for _, q := range m.Quads {
		writeFacet(m.Vertices[q.I0], m.Vertices[q.I1], m.Vertices[q.I2])
		writeFacet(m.Vertices[q.I0], m.Vertices[q.I2], m.Vertices[q.I3])
	}

	fmt.Fprintln(bw, "endsolid ")
	return bw.Flush()
}

// SaveSTL writes a quad mesh to an ASCII STL file.
func SaveSTL(path string, m *mesh.QuadMesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save stl: %w", err)
	}
	if err := WriteSTL(f, m); err != nil {
		f.Close()
		return fmt.Errorf("save stl: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save stl: %w", err)
	}
	return nil
}

// SaveSTLBinary writes a quad mesh as binary STL through model3d's grouped
// writer, which lays triangles out for fast spatial indexing.
func SaveSTLBinary(path string, m *mesh.QuadMesh) error {
	tris := make([]*model3d.Triangle, 0, 2*len(m.Quads))
	coord := func(v mesh.Vertex) model3d.Coord3D {
		return model3d.Coord3D{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
	}
	for _, q := range m.Quads {
		v0 := coord(m.Vertices[q.I0])
		v1 := coord(m.Vertices[q.I1])
		v2 := coord(m.Vertices[q.I2])
		v3 := coord(m.Vertices[q.I3])
		tris = append(tris,
			&model3d.Triangle{v0, v1, v2},
			&model3d.Triangle{v0, v2, v3})
	}
	if err := model3d.NewMeshTriangles(tris).SaveGroupedSTL(path); err != nil {
		return fmt.Errorf("save binary stl: %w", err)
	}
	return nil
}
