package quadrature_test

import (
	"testing"

	"github.com/katalvlaran/tessfield/density"
	"github.com/katalvlaran/tessfield/quadrature"
	"github.com/katalvlaran/tessfield/tesseroid"
)

// benchmarkField runs one gz evaluation per iteration at the given order.
// Cost grows as order³, which these benchmarks make visible.
func benchmarkField(b *testing.B, order int) {
	tess, err := tesseroid.New(6346e3, 6378e3, -1, 1, -1, 1)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	rho, err := density.NewConstant(2670)
	if err != nil {
		b.Fatalf("NewConstant failed: %v", err)
	}
	rule, err := quadrature.NewRule(order)
	if err != nil {
		b.Fatalf("NewRule failed: %v", err)
	}
	p := tesseroid.Point{R: 6638e3, Lat: 0, Lon: 0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := quadrature.Field(quadrature.Gz, tess, rho, p, rule, 1e-3); err != nil {
			b.Fatalf("Field failed: %v", err)
		}
	}
}

// BenchmarkField_Order2 is the default configuration (8 nodes).
func BenchmarkField_Order2(b *testing.B) { benchmarkField(b, 2) }

// BenchmarkField_Order3 uses 27 nodes.
func BenchmarkField_Order3(b *testing.B) { benchmarkField(b, 3) }

// BenchmarkField_Order5 uses 125 nodes.
func BenchmarkField_Order5(b *testing.B) { benchmarkField(b, 5) }
