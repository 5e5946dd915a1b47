package quadrature

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tessfield/density"
	"github.com/katalvlaran/tessfield/tesseroid"
)

// Field computes one field component of tess at the observation point p by
// tensor-product Gauss–Legendre quadrature with the given rule, querying
// rho at every node.
//
// The canonical abscissas are mapped to [R1,R2] × [S,N] × [W,E] by a linear
// change of variable per axis; the product of the per-axis half-spans (in
// meters and radians) and the volume-element factor r'²·cos φ' is the full
// Jacobian. The result carries G and the component's unit conversion, so it
// is directly the contribution of this tesseroid in the units documented on
// Component.
//
// If any node lies within singEps meters of p, Field returns
// ErrSingularConfiguration and no value: fixed-order quadrature this close
// to the 1/ℓ pole is meaningless, and the caller must subdivide instead.
// A singEps of 0 disables the guard.
//
// Complexity: O(order³) kernel and density evaluations, O(order) extra space.
func Field(c Component, tess tesseroid.Tesseroid, rho density.Density, p tesseroid.Point, rule Rule, singEps float64) (float64, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownComponent, int(c))
	}

	n := rule.Order
	rNodes, rHalf := mapNodes(rule.X, tess.R1, tess.R2)
	latNodes, latHalf := mapNodes(rule.X, tess.S*tesseroid.Deg2Rad, tess.N*tesseroid.Deg2Rad)
	lonNodes, lonHalf := mapNodes(rule.X, tess.W*tesseroid.Deg2Rad, tess.E*tesseroid.Deg2Rad)

	sinLat, cosLat := math.Sincos(p.Lat * tesseroid.Deg2Rad)
	lonRad := p.Lon * tesseroid.Deg2Rad

	var sum float64
	for j := 0; j < n; j++ {
		sinLatN, cosLatN := math.Sincos(latNodes[j])
		for k := 0; k < n; k++ {
			sinDLon, cosDLon := math.Sincos(lonNodes[k] - lonRad)
			cosPsi := sinLat*sinLatN + cosLat*cosLatN*cosDLon
			kphi := cosLat*sinLatN - sinLat*cosLatN*cosDLon
			for i := 0; i < n; i++ {
				rn := rNodes[i]
				ell := math.Sqrt(p.R*p.R + rn*rn - 2*p.R*rn*cosPsi)
				if singEps > 0 && ell < singEps {
					return 0, fmt.Errorf("%w: node-point distance %g m < epsilon %g m", ErrSingularConfiguration, ell, singEps)
				}

				g := geom{
					r: p.R, rn: rn,
					kappa:   rn * rn * cosLatN,
					cosPsi:  cosPsi,
					kphi:    kphi,
					cosLatN: cosLatN,
					sinDLon: sinDLon,
					ell:     ell,
				}
				w := rule.W[i] * rule.W[j] * rule.W[k]
				lat := latNodes[j] / tesseroid.Deg2Rad
				lon := lonNodes[k] / tesseroid.Deg2Rad
				sum += w * kernel(c, g) * rho.Eval(rn, lat, lon)
			}
		}
	}

	return unitFactor(c) * rHalf * latHalf * lonHalf * sum, nil
}

// Mass integrates rho over the tesseroid's volume, returning kilograms.
// Same tensor-product rule as Field, with a unit kernel: the Jacobian
// r'²·cos φ' alone. With a constant density this reproduces
// ρ · tess.Volume() up to quadrature error.
func Mass(tess tesseroid.Tesseroid, rho density.Density, rule Rule) float64 {
	n := rule.Order
	rNodes, rHalf := mapNodes(rule.X, tess.R1, tess.R2)
	latNodes, latHalf := mapNodes(rule.X, tess.S*tesseroid.Deg2Rad, tess.N*tesseroid.Deg2Rad)
	lonNodes, lonHalf := mapNodes(rule.X, tess.W*tesseroid.Deg2Rad, tess.E*tesseroid.Deg2Rad)

	var sum float64
	for j := 0; j < n; j++ {
		cosLatN := math.Cos(latNodes[j])
		lat := latNodes[j] / tesseroid.Deg2Rad
		for k := 0; k < n; k++ {
			lon := lonNodes[k] / tesseroid.Deg2Rad
			for i := 0; i < n; i++ {
				rn := rNodes[i]
				w := rule.W[i] * rule.W[j] * rule.W[k]
				sum += w * rn * rn * cosLatN * rho.Eval(rn, lat, lon)
			}
		}
	}

	return rHalf * latHalf * lonHalf * sum
}

// mapNodes applies the linear change of variable that carries the canonical
// [-1, 1] abscissas onto [lo, hi], returning the mapped nodes and the
// half-span (the per-axis Jacobian factor).
func mapNodes(x []float64, lo, hi float64) ([]float64, float64) {
	half := 0.5 * (hi - lo)
	mid := 0.5 * (hi + lo)
	nodes := make([]float64, len(x))
	for i, xi := range x {
		nodes[i] = mid + half*xi
	}

	return nodes, half
}

// unitFactor returns G combined with the output-unit conversion for c.
func unitFactor(c Component) float64 {
	switch {
	case c == Potential:
		return tesseroid.G
	case c >= Gx && c <= Gz:
		return tesseroid.G * tesseroid.SI2MGal
	default:
		return tesseroid.G * tesseroid.SI2Eotvos
	}
}
