package kernel

// Geometry bundles the bounding information an error bound depends on:
// the dimension, the bounding radii of the reference-side (far) and
// query-side (local) regions, and the minimum/maximum squared distances
// between the two regions as reported by the spatial tree.
type Geometry struct {
	Dim         int
	FarRadius   float64
	LocalRadius float64
	MinDistSqd  float64
	MaxDistSqd  float64
}

// Aux is the kernel auxiliary capability consumed by the expansion
// engine. It carries the kernel-specific constants — a scale factor k
// and a bandwidth h, combined as k·h to normalize displacement vectors —
// plus the derivative-weight tables and closed-form truncation-error
// bounds the engine cannot know on its own.
//
// Implementations must be pure: no method may mutate shared state, so a
// single Aux value can serve any number of expansions concurrently.
type Aux interface {
	// Scale returns the kernel-specific multiplier k applied to the
	// bandwidth (√2 for the Gaussian).
	Scale() float64

	// Bandwidth returns the kernel bandwidth h. Implementations must
	// guarantee a finite, strictly positive value at construction time.
	Bandwidth() float64

	// DerivativeMap returns, for the normalized point u, the table m with
	// m[d][n] holding the n-th one-dimensional derivative weight along
	// dimension d, for n = 0..order. Far-field evaluation multiplies one
	// entry per dimension for each multi-index; far-to-local translation
	// queries orders up to twice the truncation order.
	DerivativeMap(u []float64, order int) ([][]float64, error)

	// FarFieldBound returns the per-unit-weight truncation-error bound for
	// evaluating a far-field expansion of the given order anywhere in the
	// local region. The second return is false when no order converges for
	// this geometry (the far region is too wide for the bandwidth);
	// callers treat that as an infeasible approximation.
	FarFieldBound(geom Geometry, order int) (float64, bool)

	// ConversionBound is the FarFieldBound analogue for the combined
	// far-field truncation plus far-to-local conversion error.
	ConversionBound(geom Geometry, order int) (float64, bool)
}
