package tesseroid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessfield/tesseroid"
)

// TestNew_Valid verifies that well-formed bounds construct without error
// and keep their values.
func TestNew_Valid(t *testing.T) {
	tess, err := tesseroid.New(6346e3, 6378e3, -1, 1, -2, 2)
	require.NoError(t, err)

	assert.Equal(t, 6346e3, tess.R1)
	assert.Equal(t, 6378e3, tess.R2)
	assert.Equal(t, -1.0, tess.W)
	assert.Equal(t, 1.0, tess.E)
	assert.Equal(t, -2.0, tess.S)
	assert.Equal(t, 2.0, tess.N)
}

// TestNew_DegenerateRejection checks every span invariant: swapped or equal
// bounds, out-of-range latitudes, oversized longitude spans, negative radii
// and non-finite values must all fail with ErrDegenerateGeometry.
func TestNew_DegenerateRejection(t *testing.T) {
	cases := []struct {
		name                    string
		r1, r2, w, e, south, nb float64
	}{
		{"inner radius above outer", 6378e3, 6346e3, -1, 1, -1, 1},
		{"inner radius equals outer", 6378e3, 6378e3, -1, 1, -1, 1},
		{"negative inner radius", -1, 6378e3, -1, 1, -1, 1},
		{"west above east", 6346e3, 6378e3, 1, -1, -1, 1},
		{"west equals east", 6346e3, 6378e3, 1, 1, -1, 1},
		{"longitude span above 360", 6346e3, 6378e3, -200, 200, -1, 1},
		{"south above north", 6346e3, 6378e3, -1, 1, 1, -1},
		{"south equals north", 6346e3, 6378e3, -1, 1, 1, 1},
		{"south below -90", 6346e3, 6378e3, -1, 1, -91, 1},
		{"north above 90", 6346e3, 6378e3, -1, 1, -1, 91},
		{"NaN bound", 6346e3, math.NaN(), -1, 1, -1, 1},
		{"Inf bound", 6346e3, math.Inf(1), -1, 1, -1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tesseroid.New(tc.r1, tc.r2, tc.w, tc.e, tc.south, tc.nb)
			assert.ErrorIs(t, err, tesseroid.ErrDegenerateGeometry, "bounds must be rejected, not silently accepted")
		})
	}
}

// TestValidate_Literal ensures a hand-assembled literal is checked the same
// way New-built values are.
func TestValidate_Literal(t *testing.T) {
	good := tesseroid.Tesseroid{R1: 1, R2: 2, W: 0, E: 10, S: 0, N: 10}
	assert.NoError(t, good.Validate())

	var zero tesseroid.Tesseroid
	assert.ErrorIs(t, zero.Validate(), tesseroid.ErrDegenerateGeometry, "the zero value is degenerate")
}

// TestCenter_Midpoints verifies the geometric center sits at the
// mid-coordinates of every axis.
func TestCenter_Midpoints(t *testing.T) {
	tess, err := tesseroid.New(6346e3, 6378e3, 10, 20, -40, -30)
	require.NoError(t, err)

	c := tess.Center()
	assert.Equal(t, 6362e3, c.R)
	assert.Equal(t, -35.0, c.Lat)
	assert.Equal(t, 15.0, c.Lon)
}

// TestDimensions_ArcLengths checks radial thickness and that the arc
// lengths are measured at the mean radius.
func TestDimensions_ArcLengths(t *testing.T) {
	tess, err := tesseroid.New(6346e3, 6378e3, -1, 1, -1, 1)
	require.NoError(t, err)

	dr, dlat, dlon := tess.Dimensions()
	rm := 6362e3

	assert.Equal(t, 32e3, dr)
	assert.InEpsilon(t, rm*2*tesseroid.Deg2Rad, dlat, 1e-12)
	// the span straddles the equator, so the widest longitude arc uses cos(0)=1
	assert.InEpsilon(t, rm*2*tesseroid.Deg2Rad, dlon, 1e-12)
}

// TestDimensions_PolarCell ensures a cell touching the pole gets its
// longitudinal arc from the bound closest to the equator — never from the
// degenerate pole side.
func TestDimensions_PolarCell(t *testing.T) {
	tess, err := tesseroid.New(6346e3, 6378e3, 0, 30, 60, 90)
	require.NoError(t, err)

	_, _, dlon := tess.Dimensions()
	want := 6362e3 * math.Cos(60*tesseroid.Deg2Rad) * 30 * tesseroid.Deg2Rad
	assert.InEpsilon(t, want, dlon, 1e-12)
	assert.Positive(t, dlon)
}

// TestDistance_RadialAndPole checks the straight-line distance for a point
// directly above the center and for a point at the north pole, where
// longitude is degenerate but the Cartesian route stays stable.
func TestDistance_RadialAndPole(t *testing.T) {
	tess, err := tesseroid.New(6346e3, 6378e3, -1, 1, -1, 1)
	require.NoError(t, err)

	// directly above: distance is purely radial
	above := tesseroid.Point{R: 6638e3, Lat: 0, Lon: 0}
	assert.InEpsilon(t, 6638e3-6362e3, tess.Distance(above), 1e-12)

	// north pole: any longitude gives the same answer
	pole0 := tesseroid.Point{R: 6378e3, Lat: 90, Lon: 0}
	pole180 := tesseroid.Point{R: 6378e3, Lat: 90, Lon: 180}
	assert.InEpsilon(t, tess.Distance(pole0), tess.Distance(pole180), 1e-12)
}

// TestVolume_SphereDecomposition verifies the closed-form volume against a
// full sphere: a whole shell assembled from the formula must equal
// 4/3·π·(r2³−r1³).
func TestVolume_SphereDecomposition(t *testing.T) {
	tess, err := tesseroid.New(1e3, 2e3, -180, 180, -90, 90)
	require.NoError(t, err)

	want := 4.0 / 3.0 * math.Pi * (8e9 - 1e9)
	assert.InEpsilon(t, want, tess.Volume(), 1e-12)
}

// TestAtHeight_ReferenceSphere anchors heights to the mean Earth radius.
func TestAtHeight_ReferenceSphere(t *testing.T) {
	p := tesseroid.AtHeight(260e3, 45, -30)
	assert.Equal(t, tesseroid.MeanEarthRadius+260e3, p.R)
	assert.Equal(t, 45.0, p.Lat)
	assert.Equal(t, -30.0, p.Lon)
}

// TestCartesian_Axes pins the axis conventions: lon 0 on +X, lon 90°E on
// +Y, the north pole on +Z.
func TestCartesian_Axes(t *testing.T) {
	const r = 1000.0

	x := tesseroid.Point{R: r, Lat: 0, Lon: 0}.Cartesian()
	assert.InDelta(t, r, x.X, 1e-9)
	assert.InDelta(t, 0, x.Y, 1e-9)
	assert.InDelta(t, 0, x.Z, 1e-9)

	y := tesseroid.Point{R: r, Lat: 0, Lon: 90}.Cartesian()
	assert.InDelta(t, 0, y.X, 1e-9)
	assert.InDelta(t, r, y.Y, 1e-9)

	z := tesseroid.Point{R: r, Lat: 90, Lon: 123}.Cartesian()
	assert.InDelta(t, r, z.Z, 1e-9)
	assert.InDelta(t, 0, math.Hypot(z.X, z.Y), 1e-9)
}
