package volume

import (
	"strings"
	"testing"
)

func TestReadTensor(t *testing.T) {
	src := `2 2 2 0 1
0 1 0.5 0
1 0 0 1
`
	v, err := ReadTensor(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadTensor() error = %v", err)
	}
	if v.DimX != 2 || v.DimY != 2 || v.DimZ != 2 || v.BitDepth != 16 {
		t.Fatalf("got %dx%dx%d at %d bits", v.DimX, v.DimY, v.DimZ, v.BitDepth)
	}

	samples := v.Samples16()
	if samples[0] != 0 {
		t.Errorf("sample 0 = %d, want 0", samples[0])
	}
	if samples[1] != 0xffff {
		t.Errorf("sample 1 = %d, want %d", samples[1], 0xffff)
	}
	if samples[2] != uint16(0.5*0xffff) {
		t.Errorf("sample 2 = %d, want %d", samples[2], uint16(0.5*0xffff))
	}
}

func TestReadTensorRescalesRange(t *testing.T) {
	src := "1 1 2 -10 10 -10 10"
	v, err := ReadTensor(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadTensor() error = %v", err)
	}
	samples := v.Samples16()
	if samples[0] != 0 || samples[1] != 0xffff {
		t.Errorf("samples = %v, want [0 65535]", samples)
	}
}

func TestReadTensorClampsOutOfRange(t *testing.T) {
	src := "1 1 2 0 1 -3 7"
	v, err := ReadTensor(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadTensor() error = %v", err)
	}
	samples := v.Samples16()
	if samples[0] != 0 || samples[1] != 0xffff {
		t.Errorf("samples = %v, want clamped [0 65535]", samples)
	}
}

func TestReadTensorErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"truncated header", "2 2"},
		{"empty range", "1 1 1 5 5 1"},
		{"missing values", "2 2 2 0 1 0.5"},
		{"zero extent", "0 2 2 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadTensor(strings.NewReader(tt.src)); err == nil {
				t.Error("ReadTensor() succeeded, want error")
			}
		})
	}
}
