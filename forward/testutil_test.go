package forward_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessfield/density"
	"github.com/katalvlaran/tessfield/forward"
	"github.com/katalvlaran/tessfield/tesseroid"
)

// constDensity builds a uniform density or fails the test.
func constDensity(t *testing.T, rho float64) density.Constant {
	t.Helper()
	c, err := density.NewConstant(rho)
	require.NoError(t, err)

	return c
}

// shellModel tiles a complete spherical shell of the given thickness
// (below the mean Earth radius) into 6 latitude bands × 12 longitude
// cells, all sharing one density. The closed-form shell solutions then
// serve as oracles for the summed model.
func shellModel(t *testing.T, thickness float64, rho density.Density) forward.Model {
	t.Helper()

	r1 := tesseroid.MeanEarthRadius - thickness
	r2 := tesseroid.MeanEarthRadius

	model := make(forward.Model, 0, 6*12)
	for i := 0; i < 6; i++ {
		s := -90 + 30*float64(i)
		for j := 0; j < 12; j++ {
			w := -180 + 30*float64(j)
			tess, err := tesseroid.New(r1, r2, w, w+30, s, s+30)
			require.NoError(t, err)
			model = append(model, forward.Element{Tess: tess, Rho: rho})
		}
	}

	return model
}
