package density

import "errors"

// Density is a pure mapping from position to mass density.
//
// Eval takes a geocentric radius in meters and latitude/longitude in
// degrees, and returns density in kg/m³. Implementations must be stateless
// and safe for concurrent invocation from parallel quadrature evaluations.
type Density interface {
	Eval(r, lat, lon float64) float64
}

var (
	// ErrInvalidParameter indicates a density variant was constructed with
	// parameters outside its domain (e.g. a zero exponential decay factor,
	// a non-positive sinusoidal wavelength, or a nil callable).
	ErrInvalidParameter = errors.New("density: invalid parameter")
)
