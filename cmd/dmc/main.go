// Command dmc extracts an iso-surface quad mesh from a scalar volume using
// (manifold) dual marching cubes and writes it as an OBJ or STL file.
//
// Input volumes come from a raw file with explicit dimensions, a text
// tensor file, the built-in caffeine molecule, or a Lisp density script.
// Raw and tensor paths may be remote URLs; they are fetched before loading.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	get "github.com/hashicorp/go-getter"
	"github.com/unixpickle/essentials"

	"github.com/chazu/dualmesh/pkg/dmc"
	"github.com/chazu/dualmesh/pkg/export"
	"github.com/chazu/dualmesh/pkg/field"
	"github.com/chazu/dualmesh/pkg/mesh"
	"github.com/chazu/dualmesh/pkg/volume"
)

func main() {
	var (
		rawFile    string
		dims       string
		tensorFile string
		caffeine   bool
		scriptFile string
		scriptDim  int
		iso        float64
		manifold   bool
		soup       bool
		binary     bool
		outFile    string
	)
	flag.StringVar(&rawFile, "raw", "", "raw volume file; requires -dims")
	flag.StringVar(&dims, "dims", "", "raw volume dimensions as XxYxZ")
	flag.StringVar(&tensorFile, "tensor", "", "text tensor volume file")
	flag.BoolVar(&caffeine, "caffeine", false, "generate the built-in caffeine molecule")
	flag.StringVar(&scriptFile, "script", "", "Lisp density script file")
	flag.IntVar(&scriptDim, "script-dim", 64, "grid extent for -script volumes")
	flag.Float64Var(&iso, "iso", 0.5, "iso value in [0,1]")
	flag.BoolVar(&manifold, "manifold", false, "use the manifold dual marching cubes correction")
	flag.BoolVar(&soup, "soup", false, "generate a quad soup (no vertex sharing)")
	flag.BoolVar(&binary, "binary", false, "write binary STL instead of ASCII")
	flag.StringVar(&outFile, "out", "surface.obj", "output file; extension picks .obj or .stl")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()

	vol := loadVolume(rawFile, dims, tensorFile, caffeine, scriptFile, scriptDim)
	if vol == nil {
		fmt.Fprintln(os.Stderr, "No input specified")
		flag.Usage()
	}

	log.Println("Computing iso-surface")
	start := time.Now()

	var m *mesh.QuadMesh
	switch vol.BitDepth {
	case 8:
		m = dmc.Extract(vol.Samples8(), vol.DimX, vol.DimY, vol.DimZ,
			dmc.IsoValue[uint8](iso), manifold, soup)
	case 16:
		m = dmc.Extract(vol.Samples16(), vol.DimX, vol.DimY, vol.DimZ,
			dmc.IsoValue[uint16](iso), manifold, soup)
	default:
		essentials.Die("invalid volume bit depth ", vol.BitDepth)
	}

	log.Printf("Extraction time: %v", time.Since(start))

	if m.IsEmpty() {
		log.Println("No iso surface generated, skipping output")
		return
	}
	log.Printf("Writing %s with %d vertices and %d quads", outFile, m.VertexCount(), m.QuadCount())

	switch strings.ToLower(filepath.Ext(outFile)) {
	case ".obj":
		essentials.Must(export.SaveOBJ(outFile, m))
	case ".stl":
		if binary {
			essentials.Must(export.SaveSTLBinary(outFile, m))
		} else {
			essentials.Must(export.SaveSTL(outFile, m))
		}
	default:
		essentials.Die("output file is neither .obj nor .stl: ", outFile)
	}
}

// loadVolume produces the input volume from whichever source was selected,
// or nil if none was.
func loadVolume(rawFile, dims, tensorFile string, caffeine bool, scriptFile string, scriptDim int) *volume.Volume {
	switch {
	case caffeine:
		log.Println("Generating caffeine volume")
		return volume.Caffeine()

	case rawFile != "":
		var dimX, dimY, dimZ int32
		if _, err := fmt.Sscanf(dims, "%dx%dx%d", &dimX, &dimY, &dimZ); err != nil {
			essentials.Die("invalid -dims value ", dims, ": expected XxYxZ")
		}
		log.Println("Loading raw file", rawFile)
		v, err := volume.LoadRaw(fetchIfRemote(rawFile), dimX, dimY, dimZ)
		essentials.Must(err)
		if v.BitDepth == 16 {
			log.Println("Assuming 16-bit raw file")
		}
		return v

	case tensorFile != "":
		log.Println("Loading tensor file", tensorFile)
		v, err := volume.LoadTensor(fetchIfRemote(tensorFile))
		essentials.Must(err)
		return v

	case scriptFile != "":
		log.Println("Evaluating density script", scriptFile)
		source, err := os.ReadFile(scriptFile)
		essentials.Must(err)
		script, err := field.Load(string(source))
		essentials.Must(err)
		defer script.Close()
		v, err := script.Rasterize(int32(scriptDim))
		essentials.Must(err)
		return v
	}
	return nil
}

// fetchIfRemote downloads URL inputs to a temporary file and returns the
// local path; plain paths pass through.
func fetchIfRemote(path string) string {
	if !strings.Contains(path, "://") {
		return path
	}
	dst := filepath.Join(os.TempDir(), "dmc-input-"+filepath.Base(path))
	log.Println("Fetching", path)
	essentials.Must(get.GetFile(dst, path))
	return dst
}
