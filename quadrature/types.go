package quadrature

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/integrate/quad"
)

var (
	// ErrBadOrder indicates a Gauss–Legendre order below 1.
	ErrBadOrder = errors.New("quadrature: order must be at least 1")

	// ErrSingularConfiguration indicates that an integration node fell
	// within the singularity epsilon of the observation point, making the
	// kernel near-singular. The caller should subdivide the tesseroid (or
	// nudge the point) rather than trust a value computed this close to
	// the 1/ℓ pole.
	ErrSingularConfiguration = errors.New("quadrature: observation point too close to integration node")

	// ErrUnknownComponent indicates a Component outside the supported set.
	ErrUnknownComponent = errors.New("quadrature: unknown field component")
)

// Component selects which gravitational quantity Field computes.
type Component int

const (
	// Potential is the gravitational potential V in m²/s².
	Potential Component = iota

	// Gx is the northward acceleration component in mGal.
	Gx

	// Gy is the eastward acceleration component in mGal.
	Gy

	// Gz is the downward acceleration component in mGal
	// (positive toward the masses below the observation point).
	Gz

	// Gxx through Gzz are the gravity-gradient tensor components in Eötvös.
	Gxx
	Gxy
	Gxz
	Gyy
	Gyz
	Gzz
)

// componentNames is indexed by Component.
var componentNames = [...]string{
	"potential", "gx", "gy", "gz",
	"gxx", "gxy", "gxz", "gyy", "gyz", "gzz",
}

// String returns the conventional lowercase field name (e.g. "gz").
func (c Component) String() string {
	if c < 0 || int(c) >= len(componentNames) {
		return fmt.Sprintf("Component(%d)", int(c))
	}

	return componentNames[c]
}

// Valid reports whether c names a supported field component.
func (c Component) Valid() bool { return c >= Potential && c <= Gzz }

// Tensor lists the six independent gravity-gradient components in
// canonical order.
var Tensor = []Component{Gxx, Gxy, Gxz, Gyy, Gyz, Gzz}

// Rule holds the canonical Gauss–Legendre abscissas X and weights W on
// [-1, 1] for one fixed order. The same rule is reused on all three axes;
// per-tesseroid bounds are applied by a linear change of variable at
// evaluation time, so one Rule serves an entire model evaluation.
type Rule struct {
	Order int
	X, W  []float64
}

// NewRule generates the order-point Gauss–Legendre rule on [-1, 1].
// Nodes and weights come from gonum's Legendre generator.
func NewRule(order int) (Rule, error) {
	if order < 1 {
		return Rule{}, fmt.Errorf("%w: got %d", ErrBadOrder, order)
	}

	x := make([]float64, order)
	w := make([]float64, order)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)

	return Rule{Order: order, X: x, W: w}, nil
}
