package volume

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ReadTensor reads a text tensor of float samples and converts it to a
// 16-bit volume. The format is whitespace-separated:
//
//	dimX dimY dimZ minValue maxValue v0 v1 ... v(dimX*dimY*dimZ-1)
//
// with values incrementing x fastest, then y, then z. Values are rescaled
// from [minValue,maxValue] to the 16-bit sample range; values outside the
// declared range are clamped.
func ReadTensor(r io.Reader) (*Volume, error) {
	br := bufio.NewReader(r)

	var dimX, dimY, dimZ int32
	if _, err := fmt.Fscan(br, &dimX, &dimY, &dimZ); err != nil {
		return nil, errors.Wrap(err, "read tensor header")
	}
	if err := checkDims(dimX, dimY, dimZ); err != nil {
		return nil, err
	}

	var minValue, maxValue float64
	if _, err := fmt.Fscan(br, &minValue, &maxValue); err != nil {
		return nil, errors.Wrap(err, "read tensor range")
	}
	if maxValue <= minValue {
		return nil, errors.Errorf("read tensor: empty value range [%g,%g]", minValue, maxValue)
	}
	scale := 1 / (maxValue - minValue)

	v := &Volume{
		DimX:     dimX,
		DimY:     dimY,
		DimZ:     dimZ,
		BitDepth: 16,
		Data:     make([]byte, 2*int(dimX)*int(dimY)*int(dimZ)),
	}
	for i := 0; i < v.NumSamples(); i++ {
		var value float64
		if _, err := fmt.Fscan(br, &value); err != nil {
			return nil, errors.Wrapf(err, "read tensor value %d", i)
		}
		rho := scale * (value - minValue)
		if rho < 0 {
			rho = 0
		} else if rho > 1 {
			rho = 1
		}
		v.setSample16(i, uint16(rho*0xffff))
	}
	return v, nil
}

// LoadTensor reads a tensor file from disk.
func LoadTensor(path string) (*Volume, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load tensor")
	}
	defer f.Close()
	return ReadTensor(f)
}
