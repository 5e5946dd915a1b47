// Package tessfield is a gravimetric forward-modeling toolkit: it computes
// the gravitational field (potential, accelerations, gradient tensor) of
// three-dimensional masses discretized as tesseroids — spherical prisms —
// whose density varies continuously inside each element.
//
// 🚀 What is tessfield?
//
//	A pure in-memory numerical library combining:
//		• Tesseroid geometry: validated bounds, arc-length dimensions,
//		  pole-stable distances, canonical octant splitting
//		• Continuous densities: constant, linear, exponential (compaction),
//		  sinusoidal, or any user-supplied pure function
//		• Gauss–Legendre quadrature: tensor-product integration in
//		  spherical coordinates with near-singularity guards
//		• Adaptive subdivision: the distance-size ratio heuristic that
//		  splits elements into octants until fixed-order quadrature is
//		  accurate, with depth and minimum-size floors
//		• A parallel driver: independent observation points fanned out on
//		  a bounded worker pool, deterministic summation, cancellation
//
// ✨ Why choose tessfield?
//
//   - Continuous density – no piecewise-constant staircase approximations
//   - Trust flags – numerical edge cases degrade to warnings, not aborts
//   - Reproducible – fixed accumulation order, bit-identical reruns
//   - Reentrant – configuration is passed in, never ambient
//
// Everything is organized under four subpackages:
//
//	tesseroid/  — geometry primitives, observation points, constants
//	density/    — continuous density variants and validation
//	quadrature/ — Gauss–Legendre engine and field kernels
//	forward/    — adaptive subdivision controller and parallel driver
//
// Quick ASCII example — a tesseroid seen from above:
//
//	      N
//	   ┌─────┐
//	 W │     │ E      plus two radii r1 < r2 below/above the page
//	   └─────┘
//	      S
//
// Dive into each package's doc.go for contracts, units, and complexity
// notes, and into forward's example tests for end-to-end usage.
package tessfield
