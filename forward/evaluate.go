package forward

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tessfield/quadrature"
	"github.com/katalvlaran/tessfield/tesseroid"
)

// Evaluate computes one field component of the model at every observation
// point.
//
// Validation happens up front, before any numerical work: options domain
// (ErrBadOption), component (quadrature.ErrUnknownComponent), quadrature
// order (quadrature.ErrBadOrder), and every model element
// (tesseroid.ErrDegenerateGeometry, ErrNilDensity).
//
// Points are mutually independent and are evaluated by an errgroup worker
// pool bounded by Options.Parallelism. Within a point, contributions are
// computed element by element in model order, collected into a slice and
// reduced with a single deterministic summation, so repeated calls with the
// same inputs return bit-identical Values. The context is checked between
// per-element work units, so cancelling it aborts a long evaluation
// cleanly; the context's error is returned as-is.
//
// Per-point failures follow Options.OnError: FailFast aborts the whole call
// with the most specific error, Collect records a PointError, sets that
// point's value to NaN, and lets the remaining points finish.
//
// Evaluate keeps no state between calls; repeated calls do the same work.
func Evaluate(ctx context.Context, model Model, points []tesseroid.Point, comp quadrature.Component, opts ...Option) (*Result, error) {
	// 1) Resolve and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2) Validate the requested component.
	if !comp.Valid() {
		return nil, fmt.Errorf("%w: %d", quadrature.ErrUnknownComponent, int(comp))
	}

	// 3) Validate the model before any expensive computation.
	if err := model.Validate(); err != nil {
		return nil, err
	}

	// 4) Fresh quadrature rule for this call.
	rule, err := quadrature.NewRule(cfg.Order)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Component: comp,
		Values:    make([]float64, len(points)),
	}
	if len(points) == 0 {
		return res, nil
	}

	ctrl := &controller{comp: comp, rule: rule, opts: cfg}

	var (
		mu sync.Mutex // guards res.Warnings and res.PointErrors
		g  *errgroup.Group
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())

	for pi := range points {
		g.Go(func() error {
			contribs := make([]float64, len(model))
			var local []Warning

			for ei, el := range model {
				// Cooperative cancellation between work units.
				if err := gctx.Err(); err != nil {
					return err
				}

				v, warns, err := ctrl.run(el, points[pi])
				if err != nil {
					if cfg.OnError == FailFast {
						return fmt.Errorf("forward: point %d, element %d: %w", pi, ei, err)
					}
					mu.Lock()
					res.PointErrors = append(res.PointErrors, PointError{Point: pi, Element: ei, Err: err})
					mu.Unlock()
					res.Values[pi] = math.NaN()

					return nil
				}

				contribs[ei] = v
				for _, w := range warns {
					local = append(local, Warning{Kind: w.kind, Point: pi, Element: ei, Depth: w.depth})
				}
			}

			// Model-order summation, one deterministic reduction per point.
			res.Values[pi] = floats.Sum(contribs)

			if len(local) > 0 {
				mu.Lock()
				res.Warnings = append(res.Warnings, local...)
				mu.Unlock()
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Workers finish in arbitrary order; normalize for reproducibility.
	sortWarnings(res.Warnings)
	sortPointErrors(res.PointErrors)

	return res, nil
}

// EvaluateAll runs Evaluate once per requested component, in order,
// returning the results aligned with comps. A convenience for callers that
// want several components of the same model/points pair (e.g. the full
// gradient tensor via quadrature.Tensor).
func EvaluateAll(ctx context.Context, model Model, points []tesseroid.Point, comps []quadrature.Component, opts ...Option) ([]*Result, error) {
	results := make([]*Result, 0, len(comps))
	for _, comp := range comps {
		res, err := Evaluate(ctx, model, points, comp, opts...)
		if err != nil {
			return nil, fmt.Errorf("forward: component %s: %w", comp, err)
		}
		results = append(results, res)
	}

	return results, nil
}

// sortWarnings orders warnings by point, then element, then depth.
func sortWarnings(ws []Warning) {
	sort.Slice(ws, func(i, j int) bool {
		if ws[i].Point != ws[j].Point {
			return ws[i].Point < ws[j].Point
		}
		if ws[i].Element != ws[j].Element {
			return ws[i].Element < ws[j].Element
		}

		return ws[i].Depth < ws[j].Depth
	})
}

// sortPointErrors orders point errors by point, then element.
func sortPointErrors(es []PointError) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].Point != es[j].Point {
			return es[i].Point < es[j].Point
		}

		return es[i].Element < es[j].Element
	})
}
