package volume

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
)

// FromSDF rasterizes a signed distance field into a 16-bit volume. The
// field's bounding box is sampled on a regular grid whose longest axis has
// cells voxel cells, with a one-cell margin on every side so the extracted
// surface closes. Signed distances are mapped to densities with a linear
// ramp one cell wide around the surface, so extracting at the half-range
// iso value reproduces the zero level set.
func FromSDF(s sdf.SDF3, cells int32) (*Volume, error) {
	if cells < 1 {
		return nil, errors.Errorf("rasterize sdf: invalid cell count %d", cells)
	}

	bb := s.BoundingBox()
	sizeX := bb.Max.X - bb.Min.X
	sizeY := bb.Max.Y - bb.Min.Y
	sizeZ := bb.Max.Z - bb.Min.Z
	longest := math.Max(sizeX, math.Max(sizeY, sizeZ))
	if longest <= 0 {
		return nil, errors.New("rasterize sdf: empty bounding box")
	}
	h := longest / float64(cells)

	dimX := int32(math.Ceil(sizeX/h)) + 3
	dimY := int32(math.Ceil(sizeY/h)) + 3
	dimZ := int32(math.Ceil(sizeZ/h)) + 3
	if err := checkDims(dimX, dimY, dimZ); err != nil {
		return nil, err
	}

	v := &Volume{
		DimX:     dimX,
		DimY:     dimY,
		DimZ:     dimZ,
		BitDepth: 16,
		Data:     make([]byte, 2*int(dimX)*int(dimY)*int(dimZ)),
	}

	p := 0
	for z := int32(0); z < dimZ; z++ {
		pz := bb.Min.Z + (float64(z)-1)*h
		for y := int32(0); y < dimY; y++ {
			py := bb.Min.Y + (float64(y)-1)*h
			for x := int32(0); x < dimX; x++ {
				px := bb.Min.X + (float64(x)-1)*h
				d := s.Evaluate(v3.Vec{X: px, Y: py, Z: pz})
				rho := 0.5 - d/(2*h)
				if rho < 0 {
					rho = 0
				} else if rho > 1 {
					rho = 1
				}
				v.setSample16(p, uint16(rho*0xffff))
				p++
			}
		}
	}
	return v, nil
}
