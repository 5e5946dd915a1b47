package density

import (
	"fmt"
	"math"
)

// Constant is a uniform density in kg/m³.
type Constant float64

// NewConstant returns a uniform density. The value must be finite.
func NewConstant(rho float64) (Constant, error) {
	if !finite(rho) {
		return 0, fmt.Errorf("%w: constant density must be finite, got %v", ErrInvalidParameter, rho)
	}

	return Constant(rho), nil
}

// Eval implements Density.
func (c Constant) Eval(_, _, _ float64) float64 { return float64(c) }

// Linear interpolates density linearly in radius between two anchor points
// (R1, Rho1) and (R2, Rho2). Evaluation outside [R1, R2] extrapolates the
// same line.
type Linear struct {
	R1, R2     float64 // anchor radii, meters
	Rho1, Rho2 float64 // densities at the anchors, kg/m³
}

// NewLinear builds a linear-in-radius density through the two anchors.
// The anchor radii must be finite and distinct.
func NewLinear(r1, r2, rho1, rho2 float64) (Linear, error) {
	if !finite(r1) || !finite(r2) || !finite(rho1) || !finite(rho2) {
		return Linear{}, fmt.Errorf("%w: linear anchors must be finite", ErrInvalidParameter)
	}
	if r1 == r2 {
		return Linear{}, fmt.Errorf("%w: linear anchor radii must differ, got r1=r2=%g", ErrInvalidParameter, r1)
	}

	return Linear{R1: r1, R2: r2, Rho1: rho1, Rho2: rho2}, nil
}

// Eval implements Density.
func (l Linear) Eval(r, _, _ float64) float64 {
	return l.Rho1 + (l.Rho2-l.Rho1)*(r-l.R1)/(l.R2-l.R1)
}

// Exponential is the compaction-style radial profile
//
//	ρ(r) = A · exp(−b · (r − R1) / T) + C,   T = R2 − R1
//
// where A is the amplitude, b the dimensionless decay factor and C the
// constant term. With b > 0 the density decays away from the inner radius,
// the usual shape for sediment compaction with depth.
type Exponential struct {
	R1, R2    float64 // reference radii, meters (T = R2 − R1)
	Amplitude float64 // A, kg/m³
	BFactor   float64 // b, dimensionless, non-zero
	Constant  float64 // C, kg/m³
}

// NewExponential builds the exponential profile. The reference radii must
// satisfy r1 < r2 and the decay factor must be non-zero (a zero b collapses
// the profile to a constant; use NewConstant for that).
func NewExponential(r1, r2, amplitude, bFactor, constant float64) (Exponential, error) {
	if !finite(r1) || !finite(r2) || !finite(amplitude) || !finite(bFactor) || !finite(constant) {
		return Exponential{}, fmt.Errorf("%w: exponential parameters must be finite", ErrInvalidParameter)
	}
	if r1 >= r2 {
		return Exponential{}, fmt.Errorf("%w: exponential reference radii must satisfy r1 < r2, got r1=%g r2=%g", ErrInvalidParameter, r1, r2)
	}
	if bFactor == 0 {
		return Exponential{}, fmt.Errorf("%w: exponential decay factor must be non-zero", ErrInvalidParameter)
	}

	return Exponential{R1: r1, R2: r2, Amplitude: amplitude, BFactor: bFactor, Constant: constant}, nil
}

// Eval implements Density.
func (e Exponential) Eval(r, _, _ float64) float64 {
	t := e.R2 - e.R1

	return e.Amplitude*math.Exp(-e.BFactor*(r-e.R1)/t) + e.Constant
}

// ExponentialProfile solves the amplitude and constant term of an
// Exponential so the profile passes exactly through rhoInner at r1 and
// rhoOuter at r2 for the given decay factor:
//
//	A = (ρ_inner − ρ_outer) / (1 − e^(−b)),   C = ρ_inner − A
//
// This is the boundary-condition algebra used when fitting compaction
// profiles to known top/bottom densities.
func ExponentialProfile(r1, r2, rhoInner, rhoOuter, bFactor float64) (Exponential, error) {
	if bFactor == 0 {
		return Exponential{}, fmt.Errorf("%w: exponential decay factor must be non-zero", ErrInvalidParameter)
	}
	denom := 1 - math.Exp(-bFactor)
	amplitude := (rhoInner - rhoOuter) / denom
	constant := rhoInner - amplitude

	return NewExponential(r1, r2, amplitude, bFactor, constant)
}

// Sinusoidal oscillates in radius around a mean value:
//
//	ρ(r) = A · sin(2π · (r − R1) / λ + φ) + Mean
//
// with wavelength λ in meters and phase φ in radians.
type Sinusoidal struct {
	R1         float64 // reference radius, meters
	Wavelength float64 // λ > 0, meters
	Amplitude  float64 // A, kg/m³
	Phase      float64 // φ, radians
	Mean       float64 // kg/m³
}

// NewSinusoidal builds the sinusoidal profile. The wavelength must be
// strictly positive; all parameters must be finite.
func NewSinusoidal(r1, wavelength, amplitude, phase, mean float64) (Sinusoidal, error) {
	if !finite(r1) || !finite(wavelength) || !finite(amplitude) || !finite(phase) || !finite(mean) {
		return Sinusoidal{}, fmt.Errorf("%w: sinusoidal parameters must be finite", ErrInvalidParameter)
	}
	if wavelength <= 0 {
		return Sinusoidal{}, fmt.Errorf("%w: sinusoidal wavelength must be positive, got %g", ErrInvalidParameter, wavelength)
	}

	return Sinusoidal{R1: r1, Wavelength: wavelength, Amplitude: amplitude, Phase: phase, Mean: mean}, nil
}

// Eval implements Density.
func (s Sinusoidal) Eval(r, _, _ float64) float64 {
	return s.Amplitude*math.Sin(2*math.Pi*(r-s.R1)/s.Wavelength+s.Phase) + s.Mean
}

// Func adapts an arbitrary pure function to the Density interface. The
// function must honor the Density contract: stateless, deterministic, and
// safe for concurrent calls.
type Func func(r, lat, lon float64) float64

// NewFunc wraps a user-supplied density callable; f must be non-nil.
func NewFunc(f func(r, lat, lon float64) float64) (Func, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: density callable must be non-nil", ErrInvalidParameter)
	}

	return Func(f), nil
}

// Eval implements Density.
func (f Func) Eval(r, lat, lon float64) float64 { return f(r, lat, lon) }

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
