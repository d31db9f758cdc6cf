package gentables

import (
	"fmt"
	"io"
	"strings"
)

// WriteTablesSource writes the generated tables as the Go source file
// consumed by pkg/dmc. The output is deterministic so regeneration of an
// unchanged table leaves the file untouched.
func WriteTablesSource(w io.Writer) error {
	dual := DualPointTable()
	problematic := ProblematicConfigs()

	var b strings.Builder
	b.WriteString("// Code generated by gentables. DO NOT EDIT.\n")
	b.WriteString("\n")
	b.WriteString("package dmc\n")
	b.WriteString("\n")
	b.WriteString("// dualPointsList encodes, for each of the 256 cube configurations, up to\n")
	b.WriteString("// four dual points as 12-bit cube edge masks. A mask contains every edge\n")
	b.WriteString("// whose iso-surface intersection belongs to that dual point.\n")
	b.WriteString("var dualPointsList = [256][4]uint32{\n")
	for cube := 0; cube < 256; cube++ {
		entries := make([]string, 4)
		for i, code := range dual[cube] {
			entries[i] = formatPointCode(code)
		}
		fmt.Fprintf(&b, "\t{%s}, // %d\n", strings.Join(entries, ", "), cube)
	}
	b.WriteString("}\n")
	b.WriteString("\n")
	b.WriteString("// problematicConfigs maps each cube configuration to the direction of its\n")
	b.WriteString("// single ambiguous face for the two configuration classes that can produce\n")
	b.WriteString("// non-manifold meshes, or to noProblematicFace for all other configurations.\n")
	b.WriteString("// Directions are encoded 0-5 for -x, +x, -y, +y, -z, +z.\n")
	b.WriteString("var problematicConfigs = [256]uint8{\n")
	for row := 0; row < 16; row++ {
		values := make([]string, 16)
		for i := range values {
			values[i] = fmt.Sprintf("%d", problematic[row*16+i])
		}
		fmt.Fprintf(&b, "\t%s,\n", strings.Join(values, ", "))
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// formatPointCode renders a 12-bit point code as an OR of edge constant
// names, or "0" for the empty code.
func formatPointCode(code uint32) string {
	if code == 0 {
		return "0"
	}
	var names []string
	for edge := 0; edge < 12; edge++ {
		if code&(1<<uint(edge)) != 0 {
			names = append(names, fmt.Sprintf("edge%d", edge))
		}
	}
	return strings.Join(names, " | ")
}
