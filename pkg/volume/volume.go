// Package volume provides the scalar volume model consumed by the surface
// extractor together with its producers: a raw file loader, a text tensor
// loader, a synthetic caffeine density generator, and a rasterizer for
// signed distance fields.
package volume

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// maxVoxels bounds the sample count of a volume. The extractor's linearized
// cell ids use 32-bit arithmetic.
const maxVoxels = 0xffffffff

// Volume is a dense scalar volume on a regular grid, stored x fastest.
// 16-bit samples are little-endian.
type Volume struct {
	DimX, DimY, DimZ int32
	// BitDepth is 8 or 16.
	BitDepth int32
	Data     []byte
}

// NumSamples returns the total number of samples.
func (v *Volume) NumSamples() int {
	return int(v.DimX) * int(v.DimY) * int(v.DimZ)
}

// Samples8 returns the sample buffer of an 8-bit volume.
func (v *Volume) Samples8() []uint8 {
	return v.Data
}

// Samples16 decodes the sample buffer of a 16-bit volume.
func (v *Volume) Samples16() []uint16 {
	samples := make([]uint16, v.NumSamples())
	for i := range samples {
		samples[i] = binary.LittleEndian.Uint16(v.Data[2*i:])
	}
	return samples
}

// setSample16 stores a 16-bit sample at linear index i.
func (v *Volume) setSample16(i int, s uint16) {
	binary.LittleEndian.PutUint16(v.Data[2*i:], s)
}

// checkDims validates volume extents against the loader contract: every
// extent at least 1 and a total sample count that fits in 32 bits.
func checkDims(dimX, dimY, dimZ int32) error {
	if dimX < 1 || dimY < 1 || dimZ < 1 {
		return errors.Errorf("invalid volume dimensions %dx%dx%d", dimX, dimY, dimZ)
	}
	if int64(dimX)*int64(dimY)*int64(dimZ) > maxVoxels {
		return errors.Errorf("too many voxels in %dx%dx%d volume", dimX, dimY, dimZ)
	}
	return nil
}
