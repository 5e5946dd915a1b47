// Package tesseroid defines the geometric primitives of spherical-prism
// gravity forward modeling: the Tesseroid volume element, observation
// Points, and the pure geometry helpers every other package builds on.
//
// A tesseroid is the spherical analogue of a rectangular prism: the volume
// bounded by two concentric spherical radii (r1 < r2), two latitude cones
// (south < north) and two longitude planes (west < east). Tesseroids are the
// natural discretization of masses on a planetary sphere because, unlike
// flat prisms, they follow the curvature of the body.
//
// Conventions:
//
//   - Radii and all linear sizes are meters.
//   - Latitudes and longitudes are degrees; conversion to radians happens
//     internally where trigonometry is needed.
//   - Latitude ∈ [-90, 90]. Longitude bounds may be any finite values with
//     east − west ≤ 360.
//
// The package offers:
//
//   - New — validated construction (ErrDegenerateGeometry on bad bounds)
//   - Dimensions / MaxDimension — linear side lengths at the mean radius
//   - Center / Distance — straight-line distance to an observation point,
//     computed in Cartesian space so it stays stable at the poles
//   - Split — canonical octant subdivision with a minimum-size guard
//   - Volume — closed-form spherical-prism volume
//
// All operations are pure: no shared state, safe for concurrent use.
package tesseroid
