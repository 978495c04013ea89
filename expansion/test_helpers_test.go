package expansion_test

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/multipole/kernel"
)

// monoAux is a minimal kernel auxiliary for deterministic tests:
// scale and bandwidth are both 1 (so displacements are not rescaled) and
// the derivative weights are plain monomials, m[d][n] = u[d]^n. With it,
// far-field evaluation reduces to the raw Taylor polynomial of the
// accumulated moments — every expected value is computable by hand.
type monoAux struct{}

func (monoAux) Scale() float64     { return 1 }
func (monoAux) Bandwidth() float64 { return 1 }

func (monoAux) DerivativeMap(u []float64, order int) ([][]float64, error) {
	if order < 0 {
		return nil, kernel.ErrOrder
	}
	m := make([][]float64, len(u))
	for d, x := range u {
		row := make([]float64, order+1)
		row[0] = 1
		for n := 1; n <= order; n++ {
			row[n] = row[n-1] * x
		}
		m[d] = row
	}
	return m, nil
}

// FarFieldBound is a plain geometric tail: s^(p+1)/(1-s) with s the far
// radius. Monotone in the order, infeasible at s >= 1.
func (monoAux) FarFieldBound(g kernel.Geometry, order int) (float64, bool) {
	return geometricTail(g.FarRadius, order)
}

func (monoAux) ConversionBound(g kernel.Geometry, order int) (float64, bool) {
	return geometricTail(g.FarRadius+g.LocalRadius, order)
}

func geometricTail(s float64, order int) (float64, bool) {
	if !(s >= 0) || s >= 1 {
		return 0, false
	}
	tail := s / (1 - s)
	for p := 0; p < order; p++ {
		tail *= s
	}
	return tail, true
}

// makeDense packs row-major point coordinates into a gonum matrix.
func makeDense(rows, cols int, vals []float64) *mat.Dense {
	return mat.NewDense(rows, cols, vals)
}
