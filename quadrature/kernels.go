package quadrature

// geom carries the per-node geometry shared by every kernel: the
// observation radius r, the node radius rn, the Jacobian factor
// κ = rn²·cos φn, the great-circle cosine cosPsi between point and node,
// the latitude direction factor kphi, the node latitude cosine, the sine
// of the longitude difference (node − point), and the Euclidean
// point-to-node distance ell.
type geom struct {
	r, rn   float64
	kappa   float64
	cosPsi  float64
	kphi    float64
	cosLatN float64
	sinDLon float64
	ell     float64
}

// kernel evaluates the Green's function for one field component at one
// integration node, in the local north-east-down frame of the observation
// point. The Jacobian factor κ is folded in; G and unit conversions are
// applied once per tesseroid in Field.
func kernel(c Component, g geom) float64 {
	l2 := g.ell * g.ell
	l3 := l2 * g.ell

	switch c {
	case Potential:
		return g.kappa / g.ell
	case Gx:
		return g.kappa * g.rn * g.kphi / l3
	case Gy:
		return g.kappa * g.rn * g.cosLatN * g.sinDLon / l3
	case Gz:
		// Sign flipped so gz points down, toward the masses.
		return g.kappa * (g.r - g.rn*g.cosPsi) / l3
	}

	// Tensor components share the displacement vector from point to node
	// projected on the local axes.
	l5 := l3 * l2
	dx := g.rn * g.kphi
	dy := g.rn * g.cosLatN * g.sinDLon
	dz := g.rn*g.cosPsi - g.r

	switch c {
	case Gxx:
		return g.kappa * (3*dx*dx - l2) / l5
	case Gxy:
		return g.kappa * 3 * dx * dy / l5
	case Gxz:
		return g.kappa * 3 * dx * dz / l5
	case Gyy:
		return g.kappa * (3*dy*dy - l2) / l5
	case Gyz:
		return g.kappa * 3 * dy * dz / l5
	case Gzz:
		return g.kappa * (3*dz*dz - l2) / l5
	}

	return 0
}
