package volume

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// LoadRaw reads a headerless volume file with the given dimensions. The bit
// depth is inferred from the file size: a file of exactly dimX*dimY*dimZ
// bytes holds 8-bit samples, a file of twice that size 16-bit samples. Any
// other size is rejected.
func LoadRaw(path string, dimX, dimY, dimZ int32) (*Volume, error) {
	if err := checkDims(dimX, dimY, dimZ); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load raw volume")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "load raw volume")
	}

	expected := int64(dimX) * int64(dimY) * int64(dimZ)
	var bitDepth int32
	switch info.Size() {
	case expected:
		bitDepth = 8
	case 2 * expected:
		bitDepth = 16
	default:
		return nil, errors.Errorf("load raw volume: file size %d inconsistent with dimensions %dx%dx%d",
			info.Size(), dimX, dimY, dimZ)
	}

	v := &Volume{
		DimX:     dimX,
		DimY:     dimY,
		DimZ:     dimZ,
		BitDepth: bitDepth,
		Data:     make([]byte, info.Size()),
	}
	if _, err := io.ReadFull(f, v.Data); err != nil {
		return nil, errors.Wrap(err, "load raw volume")
	}
	return v, nil
}
