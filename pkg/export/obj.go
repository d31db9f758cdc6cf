// Package export serializes extracted quad meshes to Wavefront OBJ and STL
// files.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chazu/dualmesh/pkg/mesh"
)

// WriteOBJ writes a quad mesh as Wavefront OBJ: one "v" line per vertex and
// one 1-based "f" line per quad.
func WriteOBJ(w io.Writer, m *mesh.QuadMesh) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, q := range m.Quads {
		fmt.Fprintf(bw, "f %d %d %d %d\n", q.I0+1, q.I1+1, q.I2+1, q.I3+1)
	}
	return bw.Flush()
}

// SaveOBJ writes a quad mesh to an OBJ file.
func SaveOBJ(path string, m *mesh.QuadMesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save obj: %w", err)
	}
	if err := WriteOBJ(f, m); err != nil {
		f.Close()
		return fmt.Errorf("save obj: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save obj: %w", err)
	}
	return nil
}
