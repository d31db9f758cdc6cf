package dmc

import (
	"math"
	"reflect"
	"testing"

	"github.com/chazu/dualmesh/pkg/mesh"
)

// flatVolume builds an 8-bit volume from a fill function over sample
// coordinates.
func flatVolume(dimX, dimY, dimZ int32, fill func(x, y, z int32) uint8) []uint8 {
	data := make([]uint8, int(dimX)*int(dimY)*int(dimZ))
	i := 0
	for z := int32(0); z < dimZ; z++ {
		for y := int32(0); y < dimY; y++ {
			for x := int32(0); x < dimX; x++ {
				data[i] = fill(x, y, z)
				i++
			}
		}
	}
	return data
}

// sphereVolume is a radial density ramp around the volume center.
func sphereVolume(dim int32) []uint8 {
	c := float64(dim-1) / 2
	return flatVolume(dim, dim, dim, func(x, y, z int32) uint8 {
		dx, dy, dz := float64(x)-c, float64(y)-c, float64(z)-c
		r := math.Sqrt(dx*dx + dy*dy + dz*dz)
		v := 255 * (1 - r/6)
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		return uint8(int(v))
	})
}

// undirectedEdgeUses counts how many quads use each undirected vertex pair.
func undirectedEdgeUses(m *mesh.QuadMesh) map[[2]int32]int {
	uses := make(map[[2]int32]int)
	for _, q := range m.Quads {
		idx := [4]int32{q.I0, q.I1, q.I2, q.I3}
		for i := range idx {
			a, b := idx[i], idx[(i+1)%4]
			if a > b {
				a, b = b, a
			}
			uses[[2]int32{a, b}]++
		}
	}
	return uses
}

func maxEdgeUse(m *mesh.QuadMesh) int {
	max := 0
	for _, n := range undirectedEdgeUses(m) {
		if n > max {
			max = n
		}
	}
	return max
}

func TestBuildTrivialFields(t *testing.T) {
	tests := []struct {
		name   string
		sample uint8
		iso    uint8
	}{
		{"empty field", 0, 1},
		{"full field", 255, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := flatVolume(4, 4, 4, func(x, y, z int32) uint8 { return tt.sample })
			m := Extract(data, 4, 4, 4, tt.iso, false, false)
			if !m.IsEmpty() || m.QuadCount() != 0 {
				t.Errorf("got %d vertices and %d quads, want none", m.VertexCount(), m.QuadCount())
			}
		})
	}
}

func TestBuildDegenerateExtents(t *testing.T) {
	data := make([]uint8, 4*4)
	m := Extract(data, 4, 4, 1, uint8(1), false, false)
	if !m.IsEmpty() {
		t.Errorf("volume without complete cells produced %d vertices", m.VertexCount())
	}
}

func TestBuildSingleVoxel(t *testing.T) {
	data := flatVolume(4, 4, 4, func(x, y, z int32) uint8 {
		if x == 2 && y == 2 && z == 2 {
			return 255
		}
		return 0
	})
	m := Extract(data, 4, 4, 4, uint8(128), false, false)

	if m.VertexCount() != 8 || m.QuadCount() != 6 {
		t.Fatalf("got %d vertices and %d quads, want 8 and 6", m.VertexCount(), m.QuadCount())
	}

	// the closed cube around the voxel stays inside its dual cells
	for _, v := range m.Vertices {
		for _, c := range [3]float32{v.X, v.Y, v.Z} {
			if c < 1.5 || c > 2.5 {
				t.Errorf("vertex %v outside the voxel neighborhood", v)
			}
		}
	}

	// closed and consistently wound: every undirected edge borders exactly
	// two quads with opposite directions
	for e, n := range undirectedEdgeUses(m) {
		if n != 2 {
			t.Errorf("edge %v used by %d quads, want 2", e, n)
		}
	}
	directed := make(map[[2]int32]int)
	for _, q := range m.Quads {
		idx := [4]int32{q.I0, q.I1, q.I2, q.I3}
		for i := range idx {
			directed[[2]int32{idx[i], idx[(i+1)%4]}]++
		}
	}
	for e, n := range directed {
		if n != 1 {
			t.Errorf("directed edge %v used %d times, want 1", e, n)
		}
	}

	// normals point away from the inside voxel
	for _, q := range m.Quads {
		v0, v1, v2, v3 := m.Vertices[q.I0], m.Vertices[q.I1], m.Vertices[q.I2], m.Vertices[q.I3]
		nx, ny, nz := quadNormal(v0, v1, v2)
		cx := float64(v0.X+v1.X+v2.X+v3.X)/4 - 2
		cy := float64(v0.Y+v1.Y+v2.Y+v3.Y)/4 - 2
		cz := float64(v0.Z+v1.Z+v2.Z+v3.Z)/4 - 2
		if nx*cx+ny*cy+nz*cz <= 0 {
			t.Errorf("quad %v normal points into the voxel", q)
		}
	}
}

func quadNormal(v0, v1, v2 mesh.Vertex) (nx, ny, nz float64) {
	x1, y1, z1 := float64(v1.X-v0.X), float64(v1.Y-v0.Y), float64(v1.Z-v0.Z)
	x2, y2, z2 := float64(v2.X-v0.X), float64(v2.Y-v0.Y), float64(v2.Z-v0.Z)
	return y1*z2 - z1*y2, z1*x2 - x1*z2, x1*y2 - y1*x2
}

func TestBuildPlane(t *testing.T) {
	// slab filling the lower half: one flat quad layer between z=3 and z=4
	data := flatVolume(8, 8, 8, func(x, y, z int32) uint8 {
		if z < 4 {
			return 255
		}
		return 0
	})
	m := Extract(data, 8, 8, 8, uint8(128), false, false)

	if m.VertexCount() != 49 || m.QuadCount() != 36 {
		t.Fatalf("got %d vertices and %d quads, want 49 and 36", m.VertexCount(), m.QuadCount())
	}

	z0 := m.Vertices[0].Z
	if z0 <= 3 || z0 >= 4 {
		t.Fatalf("layer at z=%g, want between 3 and 4", z0)
	}
	for _, v := range m.Vertices {
		if v.Z != z0 {
			t.Errorf("vertex %v off the flat layer at z=%g", v, z0)
		}
	}

	// inside below the layer, so normals point up
	for _, q := range m.Quads {
		nx, ny, nz := quadNormal(m.Vertices[q.I0], m.Vertices[q.I1], m.Vertices[q.I2])
		if nz <= 0 || math.Abs(nx) > 1e-9 || math.Abs(ny) > 1e-9 {
			t.Errorf("quad %v normal (%g,%g,%g), want +z", q, nx, ny, nz)
		}
	}
}

// manifoldPairVolume holds two adjacent cube configurations of the
// problematic class (199 and 203) sharing their ambiguous face, embedded in
// a 5x4x4 volume of zeros.
func manifoldPairVolume() ([]uint8, int32, int32, int32) {
	inside := [][3]int32{
		{1, 1, 1}, {2, 1, 1}, {3, 1, 1},
		{1, 2, 1}, {3, 2, 1},
		{1, 2, 2}, {2, 2, 2}, {3, 2, 2},
	}
	data := make([]uint8, 5*4*4)
	for _, p := range inside {
		data[p[0]+5*(p[1]+4*p[2])] = 255
	}
	return data, 5, 4, 4
}

func TestManifoldCorrection(t *testing.T) {
	data, dx, dy, dz := manifoldPairVolume()

	t.Run("plain is non-manifold", func(t *testing.T) {
		m := Extract(data, dx, dy, dz, uint8(128), false, false)
		if m.VertexCount() != 32 || m.QuadCount() != 32 {
			t.Fatalf("got %d vertices and %d quads, want 32 and 32", m.VertexCount(), m.QuadCount())
		}
		if got := maxEdgeUse(m); got != 4 {
			t.Errorf("max quads per edge = %d, want the non-manifold 4", got)
		}
	})

	t.Run("corrected is manifold", func(t *testing.T) {
		m := Extract(data, dx, dy, dz, uint8(128), true, false)
		if m.VertexCount() != 34 || m.QuadCount() != 32 {
			t.Fatalf("got %d vertices and %d quads, want 34 and 32", m.VertexCount(), m.QuadCount())
		}
		if got := maxEdgeUse(m); got > 2 {
			t.Errorf("max quads per edge = %d, want at most 2", got)
		}
	})
}

func TestQuadSoupInvariant(t *testing.T) {
	data := sphereVolume(12)
	m := Extract(data, 12, 12, 12, uint8(128), false, true)

	if m.QuadCount() == 0 {
		t.Fatal("soup extraction produced no quads")
	}
	if m.VertexCount() != 4*m.QuadCount() {
		t.Fatalf("|vertices| = %d, want 4*|quads| = %d", m.VertexCount(), 4*m.QuadCount())
	}
	for k, q := range m.Quads {
		base := int32(4 * k)
		if q.I0 != base || q.I1 != base+1 || q.I2 != base+2 || q.I3 != base+3 {
			t.Fatalf("quad %d = %v, want sequential indices from %d", k, q, base)
		}
	}
}

// canonicalTriangles splits a mesh into triangles keyed by their vertex
// coordinates, rotated so the smallest vertex leads while preserving the
// cyclic order. Deduplicating by exact coordinates makes soup and shared
// meshes comparable.
func canonicalTriangles(m *mesh.QuadMesh) map[[9]float32]int {
	tris := make(map[[9]float32]int)
	for _, tri := range m.Triangles() {
		var c [3][3]float32
		for i, idx := range tri {
			v := m.Vertices[idx]
			c[i] = [3]float32{v.X, v.Y, v.Z}
		}
		lead := 0
		for i := 1; i < 3; i++ {
			if less(c[i], c[lead]) {
				lead = i
			}
		}
		var key [9]float32
		for i := 0; i < 3; i++ {
			v := c[(lead+i)%3]
			copy(key[3*i:], v[:])
		}
		tris[key]++
	}
	return tris
}

func less(a, b [3]float32) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func TestSoupSharedEquivalence(t *testing.T) {
	pairData, px, py, pz := manifoldPairVolume()
	tests := []struct {
		name       string
		data       []uint8
		dx, dy, dz int32
		manifold   bool
	}{
		{"sphere", sphereVolume(12), 12, 12, 12, false},
		{"problematic pair", pairData, px, py, pz, false},
		{"problematic pair manifold", pairData, px, py, pz, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shared := Extract(tt.data, tt.dx, tt.dy, tt.dz, uint8(128), tt.manifold, false)
			soup := Extract(tt.data, tt.dx, tt.dy, tt.dz, uint8(128), tt.manifold, true)
			if !reflect.DeepEqual(canonicalTriangles(shared), canonicalTriangles(soup)) {
				t.Error("soup and shared meshes triangulate differently")
			}
		})
	}
}

func TestSharedVerticesInsideVolume(t *testing.T) {
	data := sphereVolume(12)
	m := Extract(data, 12, 12, 12, uint8(128), false, false)

	if m.VertexCount() != 194 || m.QuadCount() != 192 {
		t.Fatalf("got %d vertices and %d quads, want 194 and 192", m.VertexCount(), m.QuadCount())
	}
	for _, v := range m.Vertices {
		for _, c := range [3]float32{v.X, v.Y, v.Z} {
			if c < 0 || c > 11 {
				t.Errorf("vertex %v outside the volume", v)
			}
		}
	}
	for _, q := range m.Quads {
		idx := [4]int32{q.I0, q.I1, q.I2, q.I3}
		for i := range idx {
			for j := range idx[:i] {
				if idx[i] == idx[j] {
					t.Errorf("degenerate quad %v", q)
				}
			}
		}
	}
}

func TestBuildDeterminism(t *testing.T) {
	data := sphereVolume(12)
	var e Extractor[uint8]
	first := e.Build(data, 12, 12, 12, 128, true, false)
	second := e.Build(data, 12, 12, 12, 128, true, false)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated builds differ")
	}
}

func TestIsoValue(t *testing.T) {
	tests := []struct {
		name       string
		normalized float64
		want8      uint8
		want16     uint16
	}{
		{"zero", 0, 0, 0},
		{"half", 0.5, 127, 32767},
		{"one", 1, 255, 65535},
		{"clamped high", 2, 255, 65535},
		{"clamped low", -1, 0, 0},
		{"nan", math.NaN(), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsoValue[uint8](tt.normalized); got != tt.want8 {
				t.Errorf("IsoValue[uint8](%g) = %d, want %d", tt.normalized, got, tt.want8)
			}
			if got := IsoValue[uint16](tt.normalized); got != tt.want16 {
				t.Errorf("IsoValue[uint16](%g) = %d, want %d", tt.normalized, got, tt.want16)
			}
		})
	}
}
