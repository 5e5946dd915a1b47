package forward

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/katalvlaran/tessfield/density"
	"github.com/katalvlaran/tessfield/quadrature"
	"github.com/katalvlaran/tessfield/tesseroid"
)

// Sentinel errors returned by the forward-modeling driver.
var (
	// ErrEmptyModel indicates an evaluation was requested on a model with
	// no elements.
	ErrEmptyModel = errors.New("forward: model has no elements")

	// ErrNilDensity indicates a model element whose density is nil.
	ErrNilDensity = errors.New("forward: model element has nil density")

	// ErrBadOption indicates an Options value outside its domain.
	ErrBadOption = errors.New("forward: invalid option")
)

// Element pairs one tesseroid with the density defined inside it. The
// density is shared, read-only: many elements may reference the same
// Density value.
type Element struct {
	Tess tesseroid.Tesseroid
	Rho  density.Density
}

// Model is an ordered collection of elements. Order is irrelevant to the
// physics but fixes the floating-point summation order, so two runs over
// the same model produce bit-identical results.
type Model []Element

// Validate fails fast on malformed elements: degenerate tesseroid bounds
// (wrapping tesseroid.ErrDegenerateGeometry) or nil densities. Called by
// Evaluate before any numerical work begins.
func (m Model) Validate() error {
	if len(m) == 0 {
		return ErrEmptyModel
	}
	for i, el := range m {
		if err := el.Tess.Validate(); err != nil {
			return fmt.Errorf("forward: element %d: %w", i, err)
		}
		if el.Rho == nil {
			return fmt.Errorf("%w: element %d", ErrNilDensity, i)
		}
	}

	return nil
}

// WarningKind classifies non-fatal numerical-trust warnings.
type WarningKind int

const (
	// MaxDepthReached means a tesseroid was integrated without passing the
	// distance-size test because the subdivision floor (depth limit or
	// minimum size) was hit. The value is present but less trustworthy.
	MaxDepthReached WarningKind = iota

	// NearSingular means the observation point was nudged radially by
	// twice SingEps to escape a near-singular node configuration that
	// survived subdivision all the way to the floor.
	NearSingular
)

// String returns a stable name for the warning kind.
func (k WarningKind) String() string {
	switch k {
	case MaxDepthReached:
		return "max-depth-reached"
	case NearSingular:
		return "near-singular"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning records one non-fatal numerical event, pinned to the observation
// point index, the model element index, and the subdivision depth at which
// it occurred. Warnings accumulate on the Result so callers can judge how
// much to trust each value.
type Warning struct {
	Kind    WarningKind
	Point   int // index into the points slice passed to Evaluate
	Element int // index into the model
	Depth   int // subdivision depth at which the event occurred
}

// String formats the warning for logs and test failures.
func (w Warning) String() string {
	return fmt.Sprintf("forward: %s at point %d, element %d, depth %d", w.Kind, w.Point, w.Element, w.Depth)
}

// PointError records a failed observation point under the Collect policy.
type PointError struct {
	Point   int
	Element int
	Err     error
}

// Error implements error.
func (e PointError) Error() string {
	return fmt.Sprintf("forward: point %d, element %d: %v", e.Point, e.Element, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e PointError) Unwrap() error { return e.Err }

// ErrorPolicy selects how Evaluate reacts to a per-point failure.
type ErrorPolicy int

const (
	// FailFast aborts the whole evaluation on the first point failure.
	FailFast ErrorPolicy = iota

	// Collect records the failure as a PointError, marks that point's
	// value NaN, and lets the remaining points finish.
	Collect
)

// Result is the output of one Evaluate call.
type Result struct {
	// Component the values were computed for.
	Component quadrature.Component

	// Values holds one field value per observation point, aligned with
	// the points slice passed to Evaluate. Units are documented on the
	// quadrature Component constants. Failed points (Collect policy only)
	// hold NaN.
	Values []float64

	// Warnings accumulated across all points, sorted by point index then
	// element index.
	Warnings []Warning

	// PointErrors holds per-point failures under the Collect policy;
	// empty under FailFast (the first failure aborts Evaluate instead).
	PointErrors []PointError
}

// Options configures one evaluation. Build with DefaultOptions and adjust
// either directly or through the WithX functional setters; Evaluate
// validates the final value before any work starts.
type Options struct {
	// Order is the Gauss–Legendre order applied uniformly per axis.
	// Each (sub)tesseroid costs Order³ kernel evaluations.
	Order int

	// Ratio is the distance-size threshold of the adaptive test: a
	// tesseroid is integrated whole when distance ≥ Ratio · size.
	// Larger values subdivide more aggressively (more accuracy, more
	// work). The default of 2.5 keeps acceleration fields below ~0.1%
	// error against spherical-shell closed forms.
	Ratio float64

	// MaxDepth caps the subdivision recursion depth.
	MaxDepth int

	// MinSize is the minimum linear axis size in meters; an axis below
	// twice this size is no longer bisected.
	MinSize float64

	// SingEps is the singularity epsilon in meters: the minimum allowed
	// node-to-point distance. When a near-singular configuration survives
	// to the subdivision floor the point is nudged radially outward by
	// twice this value and retried once.
	SingEps float64

	// Parallelism bounds the number of concurrently evaluated points.
	// Zero means runtime.GOMAXPROCS(0).
	Parallelism int

	// OnError selects FailFast or Collect.
	OnError ErrorPolicy
}

// Defaults for Options.
const (
	DefaultOrder    = 2
	DefaultRatio    = 2.5
	DefaultMaxDepth = 16
	DefaultMinSize  = 100.0 // meters
	DefaultSingEps  = 1e-3  // meters
)

// DefaultOptions returns the recommended configuration.
func DefaultOptions() Options {
	return Options{
		Order:       DefaultOrder,
		Ratio:       DefaultRatio,
		MaxDepth:    DefaultMaxDepth,
		MinSize:     DefaultMinSize,
		SingEps:     DefaultSingEps,
		Parallelism: 0,
		OnError:     FailFast,
	}
}

// Option mutates Options. Setters validate nothing themselves; the combined
// value is checked once by Evaluate.
type Option func(*Options)

// WithOrder sets the per-axis Gauss–Legendre order.
func WithOrder(order int) Option { return func(o *Options) { o.Order = order } }

// WithRatio sets the distance-size ratio threshold.
func WithRatio(ratio float64) Option { return func(o *Options) { o.Ratio = ratio } }

// WithMaxDepth caps the subdivision depth.
func WithMaxDepth(depth int) Option { return func(o *Options) { o.MaxDepth = depth } }

// WithMinSize sets the minimum axis size in meters.
func WithMinSize(size float64) Option { return func(o *Options) { o.MinSize = size } }

// WithSingEps sets the singularity epsilon in meters.
func WithSingEps(eps float64) Option { return func(o *Options) { o.SingEps = eps } }

// WithParallelism bounds the worker pool; zero restores the GOMAXPROCS
// default.
func WithParallelism(n int) Option { return func(o *Options) { o.Parallelism = n } }

// WithErrorPolicy selects FailFast or Collect.
func WithErrorPolicy(p ErrorPolicy) Option { return func(o *Options) { o.OnError = p } }

// validate checks every field's domain, returning ErrBadOption wrapped with
// the offending field.
func (o Options) validate() error {
	if o.Order < 1 {
		return fmt.Errorf("%w: Order must be >= 1, got %d", ErrBadOption, o.Order)
	}
	if o.Ratio <= 0 || math.IsNaN(o.Ratio) || math.IsInf(o.Ratio, 0) {
		return fmt.Errorf("%w: Ratio must be positive and finite, got %g", ErrBadOption, o.Ratio)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: MaxDepth must be >= 0, got %d", ErrBadOption, o.MaxDepth)
	}
	if o.MinSize <= 0 || math.IsNaN(o.MinSize) || math.IsInf(o.MinSize, 0) {
		return fmt.Errorf("%w: MinSize must be positive and finite, got %g", ErrBadOption, o.MinSize)
	}
	if o.SingEps < 0 || math.IsNaN(o.SingEps) || math.IsInf(o.SingEps, 0) {
		return fmt.Errorf("%w: SingEps must be non-negative and finite, got %g", ErrBadOption, o.SingEps)
	}
	if o.Parallelism < 0 {
		return fmt.Errorf("%w: Parallelism must be >= 0, got %d", ErrBadOption, o.Parallelism)
	}
	if o.OnError != FailFast && o.OnError != Collect {
		return fmt.Errorf("%w: unknown error policy %d", ErrBadOption, int(o.OnError))
	}

	return nil
}

// workers resolves the effective worker-pool size.
func (o Options) workers() int {
	if o.Parallelism > 0 {
		return o.Parallelism
	}

	return runtime.GOMAXPROCS(0)
}
