// Package quadrature evaluates the gravitational field of a single
// tesseroid by tensor-product Gauss–Legendre integration in spherical
// coordinates.
//
// For a field component F, an observation point P and a tesseroid T with
// density ρ, the engine computes
//
//	F(P) = G · ∫∫∫_T ρ(r', φ', λ') · kernel_F(P; r', φ', λ') dr' dφ' dλ'
//
// by sampling the integrand at order³ Gauss–Legendre nodes: the canonical
// [-1, 1] abscissas of an order-n rule are mapped to the tesseroid's bounds
// on every axis by a linear change of variable, and the spherical volume
// element r'²·cos φ' together with the per-axis half-spans forms the
// Jacobian. Density is evaluated at every node, which is what makes
// continuously varying density "just work" — no piecewise-constant
// discretization of the profile is needed.
//
// Components and output units:
//
//	Potential            m²/s² (SI)
//	Gx, Gy, Gz           mGal, local north-east-down axes, Gz positive down
//	Gxx … Gzz            Eötvös
//
// Kernels are the standard tesseroid Green's functions in the local
// north-east-down frame of the observation point (Grombein et al. 2013).
//
// Accuracy here is conditional: fixed-order quadrature is only trustworthy
// when the tesseroid is small compared to its distance from the observation
// point. Enforcing that is the adaptive subdivision controller's job
// (package forward); this package's own guard is the singularity epsilon —
// if any node falls within singEps meters of the observation point the
// integrand is effectively singular and Field reports
// ErrSingularConfiguration instead of returning a degenerate value.
package quadrature
