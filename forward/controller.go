package forward

import (
	"errors"

	"github.com/katalvlaran/tessfield/quadrature"
	"github.com/katalvlaran/tessfield/tesseroid"
)

// node is one pending unit of subdivision work: a (sub)tesseroid plus its
// recursion depth. Nodes live only on the controller's work stack for the
// duration of a single (element, point) evaluation.
type node struct {
	tess  tesseroid.Tesseroid
	depth int
}

// controller runs the adaptive evaluation of one model element at one
// observation point. It is created per Evaluate call and shared read-only
// across that call's workers.
type controller struct {
	comp quadrature.Component
	rule quadrature.Rule
	opts Options
}

// elemWarning is a warning before the point/element indices are known;
// the driver stamps them when folding contributions into the Result.
type elemWarning struct {
	kind  WarningKind
	depth int
}

// run accumulates the field contribution of element el at point p.
//
// State machine per popped node:
//
//	Evaluate:   distance/size ≥ Ratio → quadrature on the whole node.
//	Subdivide:  otherwise, push the canonical octants at depth+1; axes
//	            below 2·MinSize are not bisected, and if nothing can be
//	            bisected (or depth hit MaxDepth) the node is integrated
//	            anyway with a MaxDepthReached warning.
//	Accumulate: a near-singular quadrature failure forces Subdivide when
//	            still possible; at the floor the point is nudged radially
//	            by twice SingEps and retried once, with a NearSingular
//	            warning.
//	Terminal:   the node's value is added to the running total.
//
// The stack is LIFO and children are pushed in reverse canonical order, so
// leaves are accumulated in exactly the canonical axis-major order every
// run: the total is bit-reproducible for a fixed configuration.
func (c *controller) run(el Element, p tesseroid.Point) (float64, []elemWarning, error) {
	var (
		total float64
		warns []elemWarning
	)

	stack := make([]node, 0, 8*c.opts.MaxDepth+1)
	stack = append(stack, node{tess: el.Tess, depth: 0})

	for len(stack) > 0 {
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Evaluate: the distance-size ratio test.
		far := nd.tess.Distance(p) >= c.opts.Ratio*nd.tess.MaxDimension()
		if far {
			v, err := quadrature.Field(c.comp, nd.tess, el.Rho, p, c.rule, c.opts.SingEps)
			if err == nil {
				total += v

				continue
			}
			if !errors.Is(err, quadrature.ErrSingularConfiguration) {
				return 0, warns, err
			}
			// Near-singular despite passing the ratio test: treat as if
			// the test had failed and fall through to Subdivide.
		}

		// Subdivide while the depth budget and axis sizes allow it.
		if nd.depth < c.opts.MaxDepth {
			if children := nd.tess.Split(c.opts.MinSize); children != nil {
				for i := len(children) - 1; i >= 0; i-- {
					stack = append(stack, node{tess: children[i], depth: nd.depth + 1})
				}

				continue
			}
		}

		// Forced accumulation at the subdivision floor.
		v, err := quadrature.Field(c.comp, nd.tess, el.Rho, p, c.rule, c.opts.SingEps)
		if err != nil && errors.Is(err, quadrature.ErrSingularConfiguration) && c.opts.SingEps > 0 {
			// Nudge outward by 2·SingEps: any node inside the guard radius
			// of p ends up at least SingEps away from the nudged point.
			nudged := p
			nudged.R += 2 * c.opts.SingEps
			v, err = quadrature.Field(c.comp, nd.tess, el.Rho, nudged, c.rule, c.opts.SingEps)
			if err == nil {
				warns = append(warns, elemWarning{kind: NearSingular, depth: nd.depth})
			}
		}
		if err != nil {
			return 0, warns, err
		}

		total += v
		warns = append(warns, elemWarning{kind: MaxDepthReached, depth: nd.depth})
	}

	return total, warns, nil
}
