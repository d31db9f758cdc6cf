package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/dualmesh/pkg/mesh"
)

func unitQuad() *mesh.QuadMesh {
	return &mesh.QuadMesh{
		Vertices: []mesh.Vertex{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Quads: []mesh.Quad{{I0: 0, I1: 1, I2: 2, I3: 3}},
	}
}

func TestWriteOBJ(t *testing.T) {
	var b strings.Builder
	if err := WriteOBJ(&b, unitQuad()); err != nil {
		t.Fatalf("WriteOBJ() error = %v", err)
	}
	want := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	if b.String() != want {
		t.Errorf("WriteOBJ() = %q, want %q", b.String(), want)
	}
}

func TestWriteSTL(t *testing.T) {
	var b strings.Builder
	if err := WriteSTL(&b, unitQuad()); err != nil {
		t.Fatalf("WriteSTL() error = %v", err)
	}
	out := b.String()

	if !strings.HasPrefix(out, "solid ") {
		t.Error("output does not start with a solid header")
	}
	if !strings.Contains(out, "endsolid ") {
		t.Error("output misses the endsolid footer")
	}
	if got := strings.Count(out, "facet normal"); got != 2 {
		t.Errorf("output has %d facets, want 2 for one quad", got)
	}
	if got := strings.Count(out, "  vertex "); got != 6 {
		t.Errorf("output has %d vertex lines, want 6", got)
	}
	// the unit quad in the xy plane has its facet normals along +z
	if !strings.Contains(out, "facet normal 0 0 1\n") {
		t.Errorf("missing +z facet normal in %q", out)
	}
}

func TestSaveSTLBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.stl")
	if err := SaveSTLBinary(path, unitQuad()); err != nil {
		t.Fatalf("SaveSTLBinary() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// binary STL: 80 byte header, uint32 count, 50 bytes per triangle
	if want := 84 + 2*50; len(data) != want {
		t.Errorf("file size %d, want %d for two triangles", len(data), want)
	}
}

func TestSaveOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := SaveOBJ(path, unitQuad()); err != nil {
		t.Fatalf("SaveOBJ() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "f 1 2 3 4\n") {
		t.Errorf("saved OBJ misses the quad face: %q", data)
	}
}
