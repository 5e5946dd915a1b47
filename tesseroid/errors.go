package tesseroid

import "errors"

var (
	// ErrDegenerateGeometry indicates tesseroid bounds that violate the
	// span invariants: r1 < r2, west < east, south < north, all finite,
	// latitudes within [-90, 90] and longitude span at most 360 degrees.
	ErrDegenerateGeometry = errors.New("tesseroid: degenerate geometry")
)
