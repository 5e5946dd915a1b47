package tesseroid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is an observation point in geocentric spherical coordinates:
// radius R in meters, latitude Lat and longitude Lon in degrees.
// Points are independent of any tesseroid geometry.
type Point struct {
	R   float64 // geocentric radius, meters
	Lat float64 // latitude, degrees
	Lon float64 // longitude, degrees
}

// AtHeight builds a Point at the given height above the mean Earth radius.
// Height is in meters and may be negative (below the reference sphere).
func AtHeight(height, lat, lon float64) Point {
	return Point{R: MeanEarthRadius + height, Lat: lat, Lon: lon}
}

// Cartesian converts the point into an Earth-centered Cartesian vector:
// x toward (lat=0, lon=0), y toward (lat=0, lon=90°E), z toward the north
// pole. Used for straight-line distance computations.
func (p Point) Cartesian() r3.Vec {
	sinLat, cosLat := math.Sincos(p.Lat * Deg2Rad)
	sinLon, cosLon := math.Sincos(p.Lon * Deg2Rad)

	return r3.Vec{
		X: p.R * cosLat * cosLon,
		Y: p.R * cosLat * sinLon,
		Z: p.R * sinLat,
	}
}
