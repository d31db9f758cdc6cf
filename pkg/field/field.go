// Package field evaluates user-supplied Lisp density scripts into volumes.
// A script runs in a sandboxed zygomys environment and must define a
// function (density x y z) returning the density in [0,1] at canonical
// volume coordinates in [0,1]^3.
package field

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/dualmesh/pkg/volume"
)

// EvalError is a parse or runtime error in user script code.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Script is a loaded density script bound to a sandboxed interpreter.
// A Script is not safe for concurrent use.
type Script struct {
	env *zygo.Zlisp
}

// Load parses and runs a density script in a fresh sandbox. The sandbox
// prevents script code from reaching the filesystem or syscalls. The
// script's top level must define the density function; definition errors
// surface on the first Eval call.
func Load(source string) (*Script, error) {
	env := zygo.NewZlispSandbox()
	if err := env.LoadString(source); err != nil {
		env.Stop()
		return nil, parseScriptError(err)
	}
	if _, err := env.Run(); err != nil {
		env.Stop()
		return nil, parseScriptError(err)
	}
	return &Script{env: env}, nil
}

// Close releases the interpreter.
func (s *Script) Close() {
	s.env.Stop()
}

// Eval evaluates the script's density function at a point.
func (s *Script) Eval(x, y, z float64) (float64, error) {
	expr := fmt.Sprintf("(density %s %s %s)",
		formatCoord(x), formatCoord(y), formatCoord(z))
	if err := s.env.LoadString(expr); err != nil {
		return 0, parseScriptError(err)
	}
	result, err := s.env.Run()
	if err != nil {
		return 0, parseScriptError(err)
	}
	return toFloat64(result)
}

// Rasterize samples the density function on a dim^3 grid over the
// canonical [0,1]^3 volume and converts it to a 16-bit volume. Densities
// are clamped to [0,1].
func (s *Script) Rasterize(dim int32) (*volume.Volume, error) {
	if dim < 2 {
		return nil, fmt.Errorf("rasterize script: invalid dimension %d", dim)
	}

	v := &volume.Volume{
		DimX:     dim,
		DimY:     dim,
		DimZ:     dim,
		BitDepth: 16,
		Data:     make([]byte, 2*int(dim)*int(dim)*int(dim)),
	}
	inv := 1.0 / float64(dim-1)

	p := 0
	for z := int32(0); z < dim; z++ {
		for y := int32(0); y < dim; y++ {
			for x := int32(0); x < dim; x++ {
				rho, err := s.Eval(float64(x)*inv, float64(y)*inv, float64(z)*inv)
				if err != nil {
					return nil, fmt.Errorf("rasterize script at (%d,%d,%d): %w", x, y, z, err)
				}
				if rho < 0 || rho != rho {
					rho = 0
				} else if rho > 1 {
					rho = 1
				}
				v.Data[2*p] = byte(uint16(rho * 0xffff))
				v.Data[2*p+1] = byte(uint16(rho*0xffff) >> 8)
				p++
			}
		}
	}
	return v, nil
}

// formatCoord renders a coordinate as a Lisp float literal. The decimal
// point is forced so zygomys parses whole values as floats.
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("density script: expected number, got %T (%s)", s, s.SexpString(nil))
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// parseScriptError converts a zygomys error into an EvalError, extracting
// line information from the message when present.
func parseScriptError(err error) error {
	msg := err.Error()
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return EvalError{Line: line, Message: strings.TrimSpace(m[2])}
	}
	return EvalError{Message: strings.TrimSpace(msg)}
}
