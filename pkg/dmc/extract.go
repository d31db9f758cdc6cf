package dmc

import (
	"github.com/chazu/dualmesh/pkg/mesh"
)

// Extract runs a one-shot extraction with a fresh Extractor.
func Extract[T Sample](data []T, dimX, dimY, dimZ int32, iso T, generateManifold, generateSoup bool) *mesh.QuadMesh {
	var e Extractor[T]
	return e.Build(data, dimX, dimY, dimZ, iso, generateManifold, generateSoup)
}

// Build extracts the iso surface of a volume. The volume is a contiguous
// buffer of dimX*dimY*dimZ samples, x fastest. A sample is inside the
// surface iff it is >= iso. The returned mesh uses shared vertex indices,
// or is a quad soup without vertex sharing if generateSoup is set.
//
// Volumes with any extent below 2 contain no complete cell cube and yield
// an empty mesh. The caller must ensure the total sample count fits in a
// 32-bit unsigned integer; linearized cell ids rely on it.
func (e *Extractor[T]) Build(data []T, dimX, dimY, dimZ int32, iso T, generateManifold, generateSoup bool) *mesh.QuadMesh {
	m := &mesh.QuadMesh{}
	if dimX < 2 || dimY < 2 || dimZ < 2 {
		return m
	}

	e.data = data
	e.dims = [3]int32{dimX, dimY, dimZ}
	e.generateManifold = generateManifold

	if generateSoup {
		e.buildQuadSoup(iso, m)
	} else {
		e.buildSharedVerticesQuads(iso, m)
	}

	e.data = nil
	e.pointToIndex = nil
	return m
}

// gA computes the linearized id of the cell cube or sample at (x,y,z).
func (e *Extractor[T]) gA(x, y, z int32) uint32 {
	return uint32(x) + uint32(e.dims[0])*(uint32(y)+uint32(e.dims[1])*uint32(z))
}

// cellCode computes the 8-bit in/out corner mask of the cell cube at
// (cx,cy,cz). Bit k corresponds to the corner at the Morton offset
// (k&1, k>>1&1, k>>2&1).
func (e *Extractor[T]) cellCode(cx, cy, cz int32, iso T) uint32 {
	d := e.data
	code := uint32(0)
	if d[e.gA(cx, cy, cz)] >= iso {
		code |= 1
	}
	if d[e.gA(cx+1, cy, cz)] >= iso {
		code |= 2
	}
	if d[e.gA(cx, cy+1, cz)] >= iso {
		code |= 4
	}
	if d[e.gA(cx+1, cy+1, cz)] >= iso {
		code |= 8
	}
	if d[e.gA(cx, cy, cz+1)] >= iso {
		code |= 16
	}
	if d[e.gA(cx+1, cy, cz+1)] >= iso {
		code |= 32
	}
	if d[e.gA(cx, cy+1, cz+1)] >= iso {
		code |= 64
	}
	if d[e.gA(cx+1, cy+1, cz+1)] >= iso {
		code |= 128
	}
	return code
}

// dualPointCode returns the 12-bit edge mask of the dual point of cell
// (cx,cy,cz) that contains the given edge, or 0 if no dual point crosses it.
//
// This is also where the manifold correction lives: if the cell has an
// ambiguous face and the neighbour across that face has one too, the cell
// configuration is inverted. The patches of the two cells then agree on the
// shared face, which keeps the mesh manifold at the cost of breaking strict
// duality to marching cubes.
func (e *Extractor[T]) dualPointCode(cx, cy, cz int32, iso T, edge uint32) uint32 {
	code := e.cellCode(cx, cy, cz, iso)

	if e.generateManifold && problematicConfigs[code] != noProblematicFace {
		dir := problematicConfigs[code]
		// neighbour across the ambiguous face
		nx, ny, nz := cx, cy, cz
		delta := int32(-1)
		if dir&1 == 1 {
			delta = 1
		}
		switch dir >> 1 {
		case 0:
			nx += delta
		case 1:
			ny += delta
		case 2:
			nz += delta
		}
		if nx >= 0 && nx < e.dims[0]-1 &&
			ny >= 0 && ny < e.dims[1]-1 &&
			nz >= 0 && nz < e.dims[2]-1 &&
			problematicConfigs[e.cellCode(nx, ny, nz, iso)] != noProblematicFace {
			code ^= 0xff
		}
	}

	for _, pointCode := range dualPointsList[code] {
		if pointCode&edge != 0 {
			return pointCode
		}
	}
	return 0
}

// edgeGeometry gives, for each cube edge, the axis it runs along
// (0 = x, 1 = y, 2 = z) and the cube-local coordinates of its low endpoint.
var edgeGeometry = [12]struct {
	axis       int32
	ox, oy, oz int32
}{
	{0, 0, 0, 0}, // edge 0
	{2, 1, 0, 0}, // edge 1
	{0, 0, 0, 1}, // edge 2
	{2, 0, 0, 0}, // edge 3
	{0, 0, 1, 0}, // edge 4
	{2, 1, 1, 0}, // edge 5
	{0, 0, 1, 1}, // edge 6
	{2, 0, 1, 0}, // edge 7
	{1, 0, 0, 0}, // edge 8
	{1, 1, 0, 0}, // edge 9
	{1, 1, 0, 1}, // edge 10
	{1, 0, 0, 1}, // edge 11
}

// calculateDualPoint computes the coordinates of the dual point identified
// by a 12-bit point code as the average of the iso-surface intersections of
// its edges.
func (e *Extractor[T]) calculateDualPoint(cx, cy, cz int32, iso T, pointCode uint32) mesh.Vertex {
	var px, py, pz float64
	points := 0

	for edge := int32(0); edge < 12; edge++ {
		if pointCode&(1<<uint(edge)) == 0 {
			continue
		}
		g := edgeGeometry[edge]
		ax, ay, az := cx+g.ox, cy+g.oy, cz+g.oz
		bx, by, bz := ax, ay, az
		switch g.axis {
		case 0:
			bx++
		case 1:
			by++
		case 2:
			bz++
		}
		a := float64(e.data[e.gA(ax, ay, az)])
		b := float64(e.data[e.gA(bx, by, bz)])
		t := (float64(iso) - a) / (b - a)

		px += float64(g.ox)
		py += float64(g.oy)
		pz += float64(g.oz)
		switch g.axis {
		case 0:
			px += t
		case 1:
			py += t
		case 2:
			pz += t
		}
		points++
	}

	inv := 1.0 / float64(points)
	return mesh.Vertex{
		X: float32(float64(cx) + px*inv),
		Y: float32(float64(cy) + py*inv),
		Z: float32(float64(cz) + pz*inv),
	}
}

// sharedDualPointIndex returns the index of the dual point of cell
// (cx,cy,cz) that contains the given edge, computing and appending the
// vertex on first use. Any two edges of the same cell that belong to the
// same dual point map to the same key and therefore the same index.
func (e *Extractor[T]) sharedDualPointIndex(cx, cy, cz int32, iso T, edge uint32, m *mesh.QuadMesh) int32 {
	key := dualPointKey{
		cellID:    e.gA(cx, cy, cz),
		pointCode: e.dualPointCode(cx, cy, cz, iso, edge),
	}
	if index, ok := e.pointToIndex[key]; ok {
		return index
	}
	index := int32(len(m.Vertices))
	m.Vertices = append(m.Vertices, e.calculateDualPoint(cx, cy, cz, iso, key.pointCode))
	e.pointToIndex[key] = index
	return index
}

// buildSharedVerticesQuads extracts the quad mesh with shared vertex
// indices. Cells iterate over the whole volume; each of the three grid
// edges rooted at a cell's low corner emits one quad when it crosses the
// iso surface and all four cells around the edge exist.
func (e *Extractor[T]) buildSharedVerticesQuads(iso T, m *mesh.QuadMesh) {
	e.pointToIndex = make(map[dualPointKey]int32)
	d := e.data
	for z := int32(0); z < e.dims[2]-1; z++ {
		for y := int32(0); y < e.dims[1]-1; y++ {
			for x := int32(0); x < e.dims[0]-1; x++ {
				// x edge
				if y > 0 && z > 0 {
					entering := d[e.gA(x, y, z)] < iso && d[e.gA(x+1, y, z)] >= iso
					exiting := d[e.gA(x, y, z)] >= iso && d[e.gA(x+1, y, z)] < iso
					if entering || exiting {
						i0 := e.sharedDualPointIndex(x, y, z, iso, edge0, m)
						i1 := e.sharedDualPointIndex(x, y, z-1, iso, edge2, m)
						i2 := e.sharedDualPointIndex(x, y-1, z-1, iso, edge6, m)
						i3 := e.sharedDualPointIndex(x, y-1, z, iso, edge4, m)
						appendQuad(m, i0, i1, i2, i3, exiting)
					}
				}
				// y edge
				if x > 0 && z > 0 {
					entering := d[e.gA(x, y, z)] < iso && d[e.gA(x, y+1, z)] >= iso
					exiting := d[e.gA(x, y, z)] >= iso && d[e.gA(x, y+1, z)] < iso
					if entering || exiting {
						i0 := e.sharedDualPointIndex(x, y, z, iso, edge8, m)
						i1 := e.sharedDualPointIndex(x, y, z-1, iso, edge11, m)
						i2 := e.sharedDualPointIndex(x-1, y, z-1, iso, edge10, m)
						i3 := e.sharedDualPointIndex(x-1, y, z, iso, edge9, m)
						appendQuad(m, i0, i1, i2, i3, entering)
					}
				}
				// z edge
				if x > 0 && y > 0 {
					entering := d[e.gA(x, y, z)] < iso && d[e.gA(x, y, z+1)] >= iso
					exiting := d[e.gA(x, y, z)] >= iso && d[e.gA(x, y, z+1)] < iso
					if entering || exiting {
						i0 := e.sharedDualPointIndex(x, y, z, iso, edge3, m)
						i1 := e.sharedDualPointIndex(x-1, y, z, iso, edge1, m)
						i2 := e.sharedDualPointIndex(x-1, y-1, z, iso, edge5, m)
						i3 := e.sharedDualPointIndex(x, y-1, z, iso, edge7, m)
						appendQuad(m, i0, i1, i2, i3, entering)
					}
				}
			}
		}
	}
}

// appendQuad appends (i0,i1,i2,i3), reversing the winding to (i0,i3,i2,i1)
// when the surface normal must flip.
func appendQuad(m *mesh.QuadMesh, i0, i1, i2, i3 int32, reverse bool) {
	if reverse {
		i1, i3 = i3, i1
	}
	m.Quads = append(m.Quads, mesh.Quad{I0: i0, I1: i1, I2: i2, I3: i3})
}

// buildQuadSoup extracts the quad soup. Every quad owns four freshly
// computed vertices; quad k references vertices 4k..4k+3 in order.
func (e *Extractor[T]) buildQuadSoup(iso T, m *mesh.QuadMesh) {
	d := e.data
	for z := int32(0); z < e.dims[2]-1; z++ {
		for y := int32(0); y < e.dims[1]-1; y++ {
			for x := int32(0); x < e.dims[0]-1; x++ {
				// x edge
				if y > 0 && z > 0 {
					entering := d[e.gA(x, y, z)] < iso && d[e.gA(x+1, y, z)] >= iso
					exiting := d[e.gA(x, y, z)] >= iso && d[e.gA(x+1, y, z)] < iso
					if entering || exiting {
						v0 := e.soupDualPoint(x, y, z, iso, edge0)
						v1 := e.soupDualPoint(x, y, z-1, iso, edge2)
						v2 := e.soupDualPoint(x, y-1, z-1, iso, edge6)
						v3 := e.soupDualPoint(x, y-1, z, iso, edge4)
						appendSoupQuad(m, v0, v1, v2, v3, exiting)
					}
				}
				// y edge
				if x > 0 && z > 0 {
					entering := d[e.gA(x, y, z)] < iso && d[e.gA(x, y+1, z)] >= iso
					exiting := d[e.gA(x, y, z)] >= iso && d[e.gA(x, y+1, z)] < iso
					if entering || exiting {
						v0 := e.soupDualPoint(x, y, z, iso, edge8)
						v1 := e.soupDualPoint(x, y, z-1, iso, edge11)
						v2 := e.soupDualPoint(x-1, y, z-1, iso, edge10)
						v3 := e.soupDualPoint(x-1, y, z, iso, edge9)
						appendSoupQuad(m, v0, v1, v2, v3, entering)
					}
				}
				// z edge
				if x > 0 && y > 0 {
					entering := d[e.gA(x, y, z)] < iso && d[e.gA(x, y, z+1)] >= iso
					exiting := d[e.gA(x, y, z)] >= iso && d[e.gA(x, y, z+1)] < iso
					if entering || exiting {
						v0 := e.soupDualPoint(x, y, z, iso, edge3)
						v1 := e.soupDualPoint(x-1, y, z, iso, edge1)
						v2 := e.soupDualPoint(x-1, y-1, z, iso, edge5)
						v3 := e.soupDualPoint(x, y-1, z, iso, edge7)
						appendSoupQuad(m, v0, v1, v2, v3, entering)
					}
				}
			}
		}
	}
}

func (e *Extractor[T]) soupDualPoint(cx, cy, cz int32, iso T, edge uint32) mesh.Vertex {
	return e.calculateDualPoint(cx, cy, cz, iso, e.dualPointCode(cx, cy, cz, iso, edge))
}

// appendSoupQuad appends four vertices in winding order and one quad with
// strictly sequential indices.
func appendSoupQuad(m *mesh.QuadMesh, v0, v1, v2, v3 mesh.Vertex, reverse bool) {
	if reverse {
		v1, v3 = v3, v1
	}
	base := int32(len(m.Vertices))
	m.Vertices = append(m.Vertices, v0, v1, v2, v3)
	m.Quads = append(m.Quads, mesh.Quad{I0: base, I1: base + 1, I2: base + 2, I3: base + 3})
}
