// Command gentables regenerates the dual marching cubes lookup tables in
// pkg/dmc. It is invoked through go generate and writes the tables as Go
// source.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chazu/dualmesh/pkg/gentables"
	"github.com/unixpickle/essentials"
)

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "pkg/dmc/tables.go", "output Go source file")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()

	log.Println("Generating dual marching cubes tables")

	f, err := os.Create(outPath)
	essentials.Must(err)

	essentials.Must(gentables.WriteTablesSource(f))
	essentials.Must(f.Close())

	log.Println("Wrote", outPath)
}
