package volume

import "math"

// radialGaussian is a volumetric sphere with Gaussian fall-off, used to
// approximate the electron density of a single atom.
type radialGaussian struct {
	cx, cy, cz    float64
	normalization float64
	falloff       float64
}

func newRadialGaussian(cx, cy, cz, variance float64) radialGaussian {
	return radialGaussian{
		cx:            cx,
		cy:            cy,
		cz:            cz,
		normalization: 1 / math.Sqrt(2*math.Pi*variance),
		falloff:       -0.5 / variance,
	}
}

func (g radialGaussian) eval(x, y, z float64) float64 {
	dx := x - g.cx
	dy := y - g.cy
	dz := z - g.cz
	return g.normalization * math.Exp(g.falloff*(dx*dx+dy*dy+dz*dz))
}

// caffeineDim is the extent of the generated caffeine volume.
const caffeineDim = 128

// Caffeine generates a 128^3 16-bit volume of the electron density of a
// caffeine molecule, approximated as a sum of radial Gaussians. The 3D
// structure is taken from PubChem compound 2519.
func Caffeine() *Volume {
	// molecule scale and offset within the canonical [0,1]^3 volume
	const s = 1.0 / 10.0
	const oX, oY, oZ = 0.5, 0.5, 0.5
	// atom scale
	const as = 0.025 * 0.025 / 70.0 / 70.0
	var (
		hydrogen = 25 * 25 * as
		carbon   = 70 * 70 * as
		nitrogen = 65 * 65 * as
		oxygen   = 60 * 60 * as
	)

	atoms := []radialGaussian{
		newRadialGaussian(0.47*s+oX, 2.5688*s+oY, 0.0006*s+oZ, oxygen),
		newRadialGaussian(-3.1271*s+oX, -0.4436*s+oY, -0.0003*s+oZ, oxygen),
		newRadialGaussian(-0.9686*s+oX, -1.3125*s+oY, 0*s+oZ, nitrogen),
		newRadialGaussian(2.2182*s+oX, 0.1412*s+oY, -0.0003*s+oZ, nitrogen),
		newRadialGaussian(-1.3477*s+oX, 1.0797*s+oY, -0.0001*s+oZ, nitrogen),
		newRadialGaussian(1.4119*s+oX, -1.9372*s+oY, 0.0002*s+oZ, nitrogen),
		newRadialGaussian(0.8579*s+oX, 0.2592*s+oY, -0.0008*s+oZ, carbon),
		newRadialGaussian(0.3897*s+oX, -1.0264*s+oY, -0.0004*s+oZ, carbon),
		newRadialGaussian(-1.9061*s+oX, -0.2495*s+oY, -0.0004*s+oZ, carbon),
		newRadialGaussian(0.0307*s+oX, 1.422*s+oY, -0.0006*s+oZ, carbon),
		newRadialGaussian(2.5032*s+oX, -1.1998*s+oY, 0.0003*s+oZ, carbon),
		newRadialGaussian(-1.4276*s+oX, -2.6960*s+oY, 0.0008*s+oZ, carbon),
		newRadialGaussian(3.1926*s+oX, 1.2061*s+oY, 0.0003*s+oZ, carbon),
		newRadialGaussian(-2.2969*s+oX, 2.1881*s+oY, 0.0007*s+oZ, carbon),
		newRadialGaussian(3.5163*s+oX, -1.5787*s+oY, 0.0008*s+oZ, hydrogen),
		newRadialGaussian(-1.0451*s+oX, -3.1973*s+oY, -0.8937*s+oZ, hydrogen),
		newRadialGaussian(-2.5186*s+oX, -2.7596*s+oY, 0.0011*s+oZ, hydrogen),
		newRadialGaussian(-1.0447*s+oX, -3.1963*s+oY, 0.8957*s+oZ, hydrogen),
		newRadialGaussian(4.1992*s+oX, 0.7801*s+oY, 0.0002*s+oZ, hydrogen),
		newRadialGaussian(3.0468*s+oX, 1.8092*s+oY, -0.8992*s+oZ, hydrogen),
		newRadialGaussian(3.0466*s+oX, 1.8083*s+oY, 0.9004*s+oZ, hydrogen),
		newRadialGaussian(-1.8087*s+oX, 3.1651*s+oY, -0.0003*s+oZ, hydrogen),
		newRadialGaussian(-2.9322*s+oX, 2.1027*s+oY, 0.8881*s+oZ, hydrogen),
		newRadialGaussian(-2.9346*s+oX, 2.1021*s+oY, -0.8849*s+oZ, hydrogen),
	}

	v := &Volume{
		DimX:     caffeineDim,
		DimY:     caffeineDim,
		DimZ:     caffeineDim,
		BitDepth: 16,
		Data:     make([]byte, 2*caffeineDim*caffeineDim*caffeineDim),
	}

	const postDensityScale = 2.5
	inv := 1.0 / (caffeineDim - 1)

	p := 0
	for z := 0; z < caffeineDim; z++ {
		nz := float64(z) * inv
		for y := 0; y < caffeineDim; y++ {
			ny := float64(y) * inv
			for x := 0; x < caffeineDim; x++ {
				nx := float64(x) * inv
				rho := 0.0
				for _, a := range atoms {
					rho += a.eval(nx, ny, nz)
				}
				rho *= postDensityScale
				if rho > 1 {
					rho = 1
				}
				v.setSample16(p, uint16(rho*0xffff))
				p++
			}
		}
	}
	return v
}
