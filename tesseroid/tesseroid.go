package tesseroid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tesseroid is an immutable spherical-prism volume element bounded by two
// concentric radii R1 < R2 (meters), two longitude planes W < E and two
// latitude cones S < N (degrees). The zero value is degenerate; construct
// through New so the span invariants are checked once, up front.
type Tesseroid struct {
	R1, R2 float64 // inner and outer radius, meters
	W, E   float64 // west and east longitude bounds, degrees
	S, N   float64 // south and north latitude bounds, degrees
}

// New validates the bounds and returns the tesseroid.
//
// Invariants (checked in order):
//  1. Every bound must be finite (no NaN, no ±Inf).
//  2. 0 ≤ r1 < r2.
//  3. west < east and east − west ≤ 360.
//  4. -90 ≤ south < north ≤ 90.
//
// Any violation yields an error wrapping ErrDegenerateGeometry; a zero-width
// span on any axis is rejected rather than silently accepted.
func New(r1, r2, w, e, s, n float64) (Tesseroid, error) {
	t := Tesseroid{R1: r1, R2: r2, W: w, E: e, S: s, N: n}
	if err := t.Validate(); err != nil {
		return Tesseroid{}, err
	}

	return t, nil
}

// Validate re-checks the span invariants on an already-built value. New
// calls it internally; callers that assemble Tesseroid literals (model
// loaders, tests) can use it to fail fast before any evaluation starts.
func (t Tesseroid) Validate() error {
	// 1) Reject non-finite bounds
	for _, v := range [6]float64{t.R1, t.R2, t.W, t.E, t.S, t.N} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound %v", ErrDegenerateGeometry, v)
		}
	}

	// 2) Radial span
	if t.R1 < 0 || t.R1 >= t.R2 {
		return fmt.Errorf("%w: want 0 <= r1 < r2, got r1=%g r2=%g", ErrDegenerateGeometry, t.R1, t.R2)
	}

	// 3) Longitude span
	if t.W >= t.E || t.E-t.W > 360 {
		return fmt.Errorf("%w: want west < east and span <= 360, got west=%g east=%g", ErrDegenerateGeometry, t.W, t.E)
	}

	// 4) Latitude span
	if t.S >= t.N || t.S < -90 || t.N > 90 {
		return fmt.Errorf("%w: want -90 <= south < north <= 90, got south=%g north=%g", ErrDegenerateGeometry, t.S, t.N)
	}

	return nil
}

// MeanRadius returns the radius of the tesseroid's geometric center.
func (t Tesseroid) MeanRadius() float64 { return 0.5 * (t.R1 + t.R2) }

// Center returns the tesseroid's geometric center: mean radius,
// mid-latitude, mid-longitude.
func (t Tesseroid) Center() Point {
	return Point{R: t.MeanRadius(), Lat: 0.5 * (t.S + t.N), Lon: 0.5 * (t.W + t.E)}
}

// Dimensions returns the approximate linear side lengths of the tesseroid
// in meters: radial thickness, latitudinal arc, and longitudinal arc.
//
// Arc lengths are measured at the mean radius. The longitudinal arc is
// evaluated at the latitude of widest extent (the bound closest to the
// equator), so a cell touching a pole is never undersized.
func (t Tesseroid) Dimensions() (dr, dlat, dlon float64) {
	rm := t.MeanRadius()
	dr = t.R2 - t.R1
	dlat = rm * (t.N - t.S) * Deg2Rad

	cosWidest := 1.0
	if t.S > 0 || t.N < 0 {
		cosWidest = math.Max(math.Cos(t.S*Deg2Rad), math.Cos(t.N*Deg2Rad))
	}
	dlon = rm * cosWidest * (t.E - t.W) * Deg2Rad

	return dr, dlat, dlon
}

// MaxDimension returns the largest of the three linear side lengths.
func (t Tesseroid) MaxDimension() float64 {
	dr, dlat, dlon := t.Dimensions()

	return math.Max(dr, math.Max(dlat, dlon))
}

// Distance returns the straight-line (Euclidean, not great-circle) distance
// in meters from the observation point p to the tesseroid's geometric
// center. Both positions are converted to Earth-centered Cartesian vectors
// first, which keeps the computation stable at the poles where longitude
// becomes degenerate.
func (t Tesseroid) Distance(p Point) float64 {
	return r3.Norm(r3.Sub(p.Cartesian(), t.Center().Cartesian()))
}

// Volume returns the exact volume of the tesseroid in m³:
//
//	V = Δλ · (sin N − sin S) · (r2³ − r1³) / 3
//
// with Δλ in radians. Used as the closed-form oracle for quadrature checks.
func (t Tesseroid) Volume() float64 {
	dlon := (t.E - t.W) * Deg2Rad
	dsin := math.Sin(t.N*Deg2Rad) - math.Sin(t.S*Deg2Rad)

	return dlon * dsin * (t.R2*t.R2*t.R2 - t.R1*t.R1*t.R1) / 3
}
