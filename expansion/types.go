package expansion

import (
	"math"

	"github.com/katalvlaran/multipole/kernel"
)

// minKernelScale is the smallest normalization scale k·h the engine
// accepts. Dividing displacements by anything smaller is numerically
// degenerate and would surface as NaN/Inf coefficients.
const minKernelScale = 1e-12

// Region is the bounding-volume contract the order selector consumes.
// The spatial tree owns the concrete geometry; the engine only needs a
// dimension and a bounding radius, alongside the min/max squared
// distances the tree already computes between region pairs.
type Region interface {
	// Dim returns the dimensionality of the region.
	Dim() int
	// Radius returns the radius of a ball enclosing the region.
	Radius() float64
}

// Ball is a minimal concrete Region: a center with an enclosing radius.
// It doubles as the reference implementation of the distance queries a
// spatial tree supplies to the order selector.
type Ball struct {
	Center []float64
	R      float64
}

// Dim returns the ball's dimension.
func (b Ball) Dim() int { return len(b.Center) }

// Radius returns the ball's radius.
func (b Ball) Radius() float64 { return b.R }

// MinDistanceSqd returns the squared minimum distance between the two
// balls (0 when they intersect).
func (b Ball) MinDistanceSqd(o Ball) float64 {
	d := math.Sqrt(distSqd(b.Center, o.Center)) - b.R - o.R
	if d < 0 {
		d = 0
	}
	return d * d
}

// MaxDistanceSqd returns the squared maximum distance between the two
// balls.
func (b Ball) MaxDistanceSqd(o Ball) float64 {
	d := math.Sqrt(distSqd(b.Center, o.Center)) + b.R + o.R
	return d * d
}

// distSqd returns the squared Euclidean distance between equal-length
// coordinate slices.
func distSqd(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// normScale returns the displacement normalization scale k·h, guarding
// against degenerate values.
func normScale(aux kernel.Aux) (float64, error) {
	kh := aux.Scale() * aux.Bandwidth()
	if math.IsNaN(kh) || math.IsInf(kh, 0) || kh < minKernelScale {
		return 0, ErrDegenerateScale
	}
	return kh, nil
}

// sameKernel reports whether two auxiliaries describe the same
// normalization, which is what translation correctness depends on.
func sameKernel(a, b kernel.Aux) bool {
	return a.Scale() == b.Scale() && a.Bandwidth() == b.Bandwidth()
}
