package kernel

import (
	"math"

	"github.com/katalvlaran/multipole/multiindex"
)

// MinBandwidth is the smallest bandwidth a Gaussian aux accepts.
// Displacements are divided by k·h; anything this small is numerically
// degenerate rather than a meaningful smoothing scale.
const MinBandwidth = 1e-12

// cramerConstant is the constant K in Cramér's inequality
// |H_n(x)|·e^{-x²/2} ≤ K·2^{n/2}·√(n!), which caps the Hermite-function
// magnitudes appearing in the truncation-error bounds.
const cramerConstant = 1.09

// Gaussian is the kernel auxiliary for k(x,y) = exp(-‖x-y‖²/(2h²)).
// Its scale factor is √2, so displacements normalize as (x-c)/(√2·h) and
// the kernel factorizes per dimension as e^{-(v_d-u_d)²}.
//
// The derivative weights are the Hermite functions
// h_n(t) = H_n(t)·e^{-t²}, generated by the recurrence
// h_{n+1}(t) = 2t·h_n(t) - 2n·h_{n-1}(t) with h_0(t) = e^{-t²}.
type Gaussian struct {
	h float64
}

// NewGaussian builds the Gaussian auxiliary for bandwidth h.
// Returns ErrBandwidth when h is NaN, infinite or below MinBandwidth.
func NewGaussian(h float64) (*Gaussian, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < MinBandwidth {
		return nil, ErrBandwidth
	}
	return &Gaussian{h: h}, nil
}

// Scale returns √2, the Gaussian bandwidth multiplier.
func (g *Gaussian) Scale() float64 { return math.Sqrt2 }

// Bandwidth returns the bandwidth h.
func (g *Gaussian) Bandwidth() float64 { return g.h }

// DerivativeMap returns the Hermite-function table m[d][n] = h_n(u[d])
// for n = 0..order, one row per dimension.
//
// Errors:
//   - ErrDimension — u is empty
//   - ErrOrder     — order < 0
//
// Complexity: O(len(u)·order).
func (g *Gaussian) DerivativeMap(u []float64, order int) ([][]float64, error) {
	if len(u) == 0 {
		return nil, ErrDimension
	}
	if order < 0 {
		return nil, ErrOrder
	}
	m := make([][]float64, len(u))
	for d, x := range u {
		row := make([]float64, order+1)
		row[0] = math.Exp(-x * x)
		if order >= 1 {
			row[1] = 2 * x * row[0]
		}
		for n := 1; n < order; n++ {
			row[n+1] = 2*x*row[n] - 2*float64(n)*row[n-1]
		}
		m[d] = row
	}
	return m, nil
}

// FarFieldBound bounds the error of evaluating a far-field expansion of
// the given order at any query point in the local region, per unit of
// accumulated weight. The geometric ratio √D·r_far/h must stay below 1
// for the Hermite tail to converge; otherwise the second return is false
// and no order suffices.
func (g *Gaussian) FarFieldBound(geom Geometry, order int) (float64, bool) {
	s := math.Sqrt(float64(geom.Dim)) * geom.FarRadius / g.h
	return g.tailBound(geom, s, order)
}

// ConversionBound bounds the combined far-field truncation plus
// far-to-local conversion error at the given truncation order, per unit
// of accumulated weight. Both regions contribute to the geometric ratio:
// √(2D)·(r_far + r_local)/h must stay below 1.
func (g *Gaussian) ConversionBound(geom Geometry, order int) (float64, bool) {
	s := math.Sqrt(2*float64(geom.Dim)) * (geom.FarRadius + geom.LocalRadius) / g.h
	return g.tailBound(geom, s, order)
}

// tailBound evaluates the closed-form tail
//
//	K^D · e^{-minDistSqd/(4h²)} · s^{p+1} / (√((p+1)!) · (1-s))
//
// which majorizes the discarded series terms via Cramér's inequality.
// Strictly decreasing in the order whenever s < 1.
func (g *Gaussian) tailBound(geom Geometry, s float64, order int) (float64, bool) {
	if !(s >= 0) || s >= 1 {
		return 0, false
	}
	fact, err := multiindex.Factorial(order + 1)
	if err != nil {
		return 0, false
	}
	front := math.Exp(-geom.MinDistSqd / (4 * g.h * g.h))
	kd := math.Pow(cramerConstant, float64(geom.Dim))
	return kd * front * math.Pow(s, float64(order+1)) / (math.Sqrt(fact) * (1 - s)), true
}
