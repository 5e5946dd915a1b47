// Package density models continuously varying mass density inside a
// tesseroid as a pure function of position.
//
// A Density maps geocentric spherical coordinates (radius in meters,
// latitude and longitude in degrees) to a scalar density in kg/m³. The
// quadrature engine samples it at every integration node, so the contract
// is strict: evaluation must be referentially transparent, must not mutate
// shared state, and must be callable at arbitrary positions (nodes are
// always strictly inside the originating tesseroid, but nothing stops a
// caller from probing outside).
//
// Built-in variants:
//
//   - Constant    — uniform density
//   - Linear      — linear interpolation in radius between two anchors
//   - Exponential — A·exp(−b·(r−r1)/T) + C, the profile used to model
//     compaction in sedimentary basins
//   - Sinusoidal  — A·sin(2π·(r−r1)/λ + φ) + C
//   - Func        — any user-supplied pure function
//
// Each constructor validates its parameters once, before any evaluation
// starts, and fails with an error wrapping ErrInvalidParameter — so a bad
// model is rejected at build time, never mid-integration.
package density
