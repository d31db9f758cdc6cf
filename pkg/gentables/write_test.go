package gentables

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestWriteTablesSourceMatchesCheckedInTables(t *testing.T) {
	checkedIn, err := os.ReadFile("../dmc/tables.go")
	if err != nil {
		t.Fatalf("reading checked-in tables: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteTablesSource(&buf); err != nil {
		t.Fatalf("WriteTablesSource() error = %v", err)
	}

	if !bytes.Equal(buf.Bytes(), checkedIn) {
		t.Error("generated tables differ from pkg/dmc/tables.go; rerun go generate")
	}
}

func TestWriteTablesSourceShape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTablesSource(&buf); err != nil {
		t.Fatalf("WriteTablesSource() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"// Code generated by gentables. DO NOT EDIT.",
		"package dmc",
		"var dualPointsList = [256][4]uint32{",
		"var problematicConfigs = [256]uint8{",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if got := strings.Count(out, "\t{"); got != 256 {
		t.Errorf("output has %d dual point rows, want 256", got)
	}
}
