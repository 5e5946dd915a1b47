package tesseroid

// Physical constants shared by the whole module. Values follow the standard
// gravimetry conventions (SI base units, CODATA-era gravitational constant).
const (
	// G is the gravitational constant in m³·kg⁻¹·s⁻².
	G = 6.673e-11

	// MeanEarthRadius is the mean Earth radius in meters, used to convert
	// heights above the reference sphere into geocentric radii.
	MeanEarthRadius = 6378137.0

	// SI2MGal converts accelerations from m/s² to milligal.
	SI2MGal = 1e5

	// SI2Eotvos converts gravity gradients from 1/s² to Eötvös.
	SI2Eotvos = 1e9

	// Deg2Rad converts degrees to radians.
	Deg2Rad = 0.017453292519943295
)
