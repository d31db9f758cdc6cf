// Package gentables derives the two lookup tables of the dual marching
// cubes extractor from first principles: the 256-entry dual point table and
// the 256-entry table of problematic configurations needed for the manifold
// correction. cmd/gentables writes them out as the Go source consumed by
// pkg/dmc.
//
// Coordinate system and numbering:
//
//	     y
//	     |
//	     |
//	     0-----x
//	    /
//	   z
//
// Corners are numbered by the Morton code of their local coordinates
// (bit 0 = x, bit 1 = y, bit 2 = z); each cube configuration is the 8-bit
// mask of its inside corners.
//
//	   2-------------------3
//	  /|                  /|
//	 / |                 / |
//	6-------------------7  |
//	|  |                |  |
//	|  0----------------|--1
//	| /                 | /
//	|/                  |/
//	4-------------------5
//
// Edges 0-7 run along x and z on the low-y and high-y faces, edges 8-11
// along y:
//
//	   o--------4----------o
//	  /|                  /|
//	 7 |                 5 |
//	/  8                /  9
//	o--------6---------o   |
//	|  |               |   |
//	11 o--------0------|10-o
//	| /                | /
//	|3                 |1
//	|/                 |/
//	o--------2---------o
package gentables

// Edge bit masks for the 12-bit dual point codes.
const (
	Edge0 uint32 = 1 << iota
	Edge1
	Edge2
	Edge3
	Edge4
	Edge5
	Edge6
	Edge7
	Edge8
	Edge9
	Edge10
	Edge11
)

// NoProblematicFace is the sentinel stored for cube configurations without
// an ambiguous face.
const NoProblematicFace = 255

// CornerCode is a cube corner represented as the Morton code of its local
// coordinates. Neighbouring corners differ by a single coordinate flip, so
// their codes are reachable with XOR.
type CornerCode uint8

// Mask returns the configuration bit of this corner.
func (c CornerCode) Mask() uint32 { return 1 << c }

// NX returns the neighbouring corner in x direction.
func (c CornerCode) NX() CornerCode { return c ^ 1 }

// NY returns the neighbouring corner in y direction.
func (c CornerCode) NY() CornerCode { return c ^ 2 }

// NZ returns the neighbouring corner in z direction.
func (c CornerCode) NZ() CornerCode { return c ^ 4 }

// CornerEdges lists, for each corner, the masks of its adjacent edges in x,
// y, and z direction.
var CornerEdges = [8][3]uint32{
	{Edge0, Edge8, Edge3},  // corner 0
	{Edge0, Edge9, Edge1},  // corner 1
	{Edge4, Edge8, Edge7},  // corner 2
	{Edge4, Edge9, Edge5},  // corner 3
	{Edge2, Edge11, Edge3}, // corner 4
	{Edge2, Edge10, Edge1}, // corner 5
	{Edge6, Edge11, Edge7}, // corner 6
	{Edge6, Edge10, Edge5}, // corner 7
}

// DualPointTable computes the dual marching cubes table. For each cube
// configuration, every inside corner seeds a traversal of the connected
// subgraph of inside corners reachable along cube edges; the edges from the
// subgraph to outside corners form one dual point code.
//
// One class of configurations (126, 189, 219, and 231) would have two
// distinct marching cubes patches merged into one by this procedure. An
// example instance (inside 1, outside 0):
//
//	   1------------0
//	  /|           /|
//	 1------------1 |
//	 | |          | |
//	 | 1----------|-1
//	 |/           |/
//	 0------------1
//
// The correct patches of these four configurations are identical to those
// of their inverted masks, which traverse correctly, so the inverted mask
// is substituted.
func DualPointTable() [256][4]uint32 {
	var table [256][4]uint32
	stack := make([]CornerCode, 0, 8)

	for i := 0; i < 256; i++ {
		if i == 0 || i == 255 {
			continue
		}

		mask := uint32(i)
		if i == 126 || i == 189 || i == 219 || i == 231 {
			mask ^= 0xff
		}

		processed := uint32(0)
		numDualPoints := 0

		for c := CornerCode(0); c < 8; c++ {
			if processed&c.Mask() != 0 || mask&c.Mask() == 0 {
				processed |= c.Mask()
				continue
			}

			// expand the connected subgraph from the start corner,
			// collecting every edge that crosses to an outside corner
			stack = append(stack[:0], c)
			connected := c.Mask()
			pointCode := uint32(0)

			for len(stack) > 0 {
				corner := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				neighbors := [3]CornerCode{corner.NX(), corner.NY(), corner.NZ()}
				for axis, neighbor := range neighbors {
					if mask&neighbor.Mask() == 0 {
						pointCode |= CornerEdges[corner][axis]
					} else if connected&neighbor.Mask() == 0 {
						connected |= neighbor.Mask()
						stack = append(stack, neighbor)
					}
				}
			}

			processed |= connected
			table[i][numDualPoints] = pointCode
			numDualPoints++
		}
	}
	return table
}
