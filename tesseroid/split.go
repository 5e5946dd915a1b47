package tesseroid

// Split bisects the tesseroid into up to 8 children (octants) by halving
// each axis whose linear size is at least 2·minSize meters. Axes already
// below that limit are left whole, so children are never created with
// near-zero extent. If no axis is splittable, Split returns nil.
//
// Enumeration order is canonical axis-major (radius outermost, then
// latitude, then longitude; lower half before upper half on every axis),
// which keeps downstream accumulation order, and therefore floating-point
// results, reproducible across runs.
func (t Tesseroid) Split(minSize float64) []Tesseroid {
	dr, dlat, dlon := t.Dimensions()

	rBounds := halves(t.R1, t.R2, dr >= 2*minSize)
	latBounds := halves(t.S, t.N, dlat >= 2*minSize)
	lonBounds := halves(t.W, t.E, dlon >= 2*minSize)

	if len(rBounds) == 1 && len(latBounds) == 1 && len(lonBounds) == 1 {
		return nil
	}

	children := make([]Tesseroid, 0, len(rBounds)*len(latBounds)*len(lonBounds))
	for _, rb := range rBounds {
		for _, lab := range latBounds {
			for _, lob := range lonBounds {
				children = append(children, Tesseroid{
					R1: rb[0], R2: rb[1],
					S: lab[0], N: lab[1],
					W: lob[0], E: lob[1],
				})
			}
		}
	}

	return children
}

// halves bisects [lo, hi] at its midpoint when split is true, otherwise
// returns the interval whole.
func halves(lo, hi float64, split bool) [][2]float64 {
	if !split {
		return [][2]float64{{lo, hi}}
	}
	mid := 0.5 * (lo + hi)

	return [][2]float64{{lo, mid}, {mid, hi}}
}
