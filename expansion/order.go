package expansion

import (
	"math"

	"github.com/katalvlaran/multipole/kernel"
)

// Order selection: a monotone linear search over orders 0..MaxOrder() of
// the expansion's table, using the kernel auxiliary's closed-form error
// bounds. The bounds shrink as the order grows (down to the numeric
// floor), so the first qualifying order is the minimum one. The search is
// bounded by the table maximum and therefore always terminates.
//
// Bounds are per unit of accumulated weight; callers scale their error
// budget by the region's weight sum before asking.

// OrderForEvaluating returns the minimum truncation order whose far-field
// evaluation error bound, for a query anywhere in localRegion, stays
// within maxError — together with that bound as actualError.
//
// minDistSqd/maxDistSqd are the squared distance extremes between the
// regions as computed by the spatial tree.
//
// Errors:
//   - ErrNilRegion, ErrDimensionMismatch, ErrBadRange (malformed distance
//     bounds or negative radii), ErrTolerance
//   - ErrInfeasible — no order up to the table maximum qualifies; the
//     caller must fall back to exact pairwise evaluation. The returned
//     order is -1 in that case.
func (f *FarField) OrderForEvaluating(farRegion, localRegion Region, minDistSqd, maxDistSqd, maxError float64) (int, float64, error) {
	geom, err := f.geometry(farRegion, localRegion, minDistSqd, maxDistSqd, maxError)
	if err != nil {
		return -1, 0, err
	}
	return selectOrder(func(p int) (float64, bool) {
		return f.aux.FarFieldBound(geom, p)
	}, f.table.MaxOrder(), maxError)
}

// OrderForConvertingToLocal is the OrderForEvaluating analogue for the
// combined far-field truncation plus far-to-local conversion error: the
// returned order is the minimum truncation order for TranslateToLocal
// that keeps the total error within maxError.
//
// Errors: as for OrderForEvaluating; ErrInfeasible (order -1) is the
// recoverable "approximate this pair exactly instead" signal.
func (f *FarField) OrderForConvertingToLocal(farRegion, localRegion Region, minDistSqd, maxDistSqd, maxError float64) (int, float64, error) {
	geom, err := f.geometry(farRegion, localRegion, minDistSqd, maxDistSqd, maxError)
	if err != nil {
		return -1, 0, err
	}
	return selectOrder(func(p int) (float64, bool) {
		return f.aux.ConversionBound(geom, p)
	}, f.table.MaxOrder(), maxError)
}

// geometry validates the selector inputs and assembles the bound geometry.
func (f *FarField) geometry(farRegion, localRegion Region, minDistSqd, maxDistSqd, maxError float64) (kernel.Geometry, error) {
	var geom kernel.Geometry
	if farRegion == nil || localRegion == nil {
		return geom, ErrNilRegion
	}
	if farRegion.Dim() != f.table.Dim() || localRegion.Dim() != f.table.Dim() {
		return geom, ErrDimensionMismatch
	}
	if math.IsNaN(maxError) || maxError <= 0 {
		return geom, ErrTolerance
	}
	if minDistSqd < 0 || maxDistSqd < minDistSqd ||
		farRegion.Radius() < 0 || localRegion.Radius() < 0 {
		return geom, ErrBadRange
	}
	return kernel.Geometry{
		Dim:         f.table.Dim(),
		FarRadius:   farRegion.Radius(),
		LocalRadius: localRegion.Radius(),
		MinDistSqd:  minDistSqd,
		MaxDistSqd:  maxDistSqd,
	}, nil
}

// selectOrder walks orders 0..maxOrder and returns the first one whose
// bound qualifies. bound's second return is false when the geometry rules
// out convergence at any order, which short-circuits to ErrInfeasible.
func selectOrder(bound func(order int) (float64, bool), maxOrder int, maxError float64) (int, float64, error) {
	for p := 0; p <= maxOrder; p++ {
		e, ok := bound(p)
		if !ok {
			return -1, 0, ErrInfeasible
		}
		if e <= maxError {
			return p, e, nil
		}
	}
	return -1, 0, ErrInfeasible
}
