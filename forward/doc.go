// Package forward is the adaptive forward-modeling driver: it evaluates the
// gravitational field of a whole model (an ordered collection of tesseroids
// with continuously varying densities) on a set of observation points.
//
// The algorithmic heart is the adaptive subdivision controller. Fixed-order
// quadrature over a tesseroid is only accurate when the observation point is
// far compared to the tesseroid's size, so for every (tesseroid, point) pair
// the controller runs the distance-size ratio test:
//
//	distance(point, center) / max side length  ≥  Ratio  →  integrate whole
//	otherwise                                             →  split in octants
//
// Splitting bisects the three curvilinear axes at their midpoints (up to 8
// children), skips axes already below MinSize, and is driven by an explicit
// LIFO work stack with a depth counter — not call-stack recursion — so
// memory stays bounded and accumulation order stays canonical, making
// results bit-reproducible for a fixed configuration. When the controller
// cannot split any further (depth limit or minimum size) it integrates
// anyway and attaches a MaxDepthReached warning; when the quadrature engine
// reports a near-singular node/point configuration at the subdivision floor,
// the point is nudged radially outward by twice SingEps and a NearSingular
// warning is attached. Warnings travel with the result rather than aborting the run:
// degraded-but-flagged values beat a hard stop in forward modeling.
//
// Observation points are mutually independent, so Evaluate fans them out on
// an errgroup worker pool bounded by Parallelism, with cooperative context
// cancellation between per-element work units. The model is read-only
// during evaluation; per-point contributions are collected in model order
// and reduced with a deterministic summation, so repeated runs of the same
// inputs produce bit-identical output.
//
// Typical use:
//
//	tess, _ := tesseroid.New(tesseroid.MeanEarthRadius-40e3, tesseroid.MeanEarthRadius, -10, 10, -10, 10)
//	rho, _ := density.NewConstant(2670)
//	model := forward.Model{{Tess: tess, Rho: rho}}
//	points := []tesseroid.Point{tesseroid.AtHeight(260e3, 0, 0)}
//
//	res, err := forward.Evaluate(context.Background(), model, points, quadrature.Gz)
//	if err != nil {
//	    // degenerate geometry, bad options, or cancellation
//	}
//	_ = res.Values[0] // gz in mGal
package forward
