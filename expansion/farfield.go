package expansion

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/multipole/kernel"
	"github.com/katalvlaran/multipole/multiindex"
)

// FarField is a truncated multivariate Taylor summary of a reference
// point set, centered on its region. Coefficients are indexed by the
// multi-index rank of the shared Table and store the factorial-folded
// moments
//
//	coeffs[α] = Σ_j w_j · u_j^α / α!,   u_j = (r_j - center)/(k·h),
//
// so coeffs[0] is always the accumulated weight sum.
//
// A FarField owns its center and coefficient vector; it never references
// the tree region that created it. The order only grows: refinement adds
// higher-order terms without touching accumulated lower-order work.
//
// Concurrency: a FarField under active accumulation must not be read
// concurrently. Once accumulation completes, any number of goroutines may
// evaluate or translate from it.
type FarField struct {
	center []float64
	coeffs []float64
	order  int
	table  *multiindex.Table
	aux    kernel.Aux
}

// NewFarField builds a zero-initialized far-field expansion about center.
// The order starts at 0 with a single (weight-sum) coefficient slot.
//
// Errors:
//   - ErrNilExpansion     — table or aux is nil
//   - ErrDimensionMismatch — len(center) != table.Dim()
func NewFarField(center []float64, table *multiindex.Table, aux kernel.Aux) (*FarField, error) {
	if table == nil || aux == nil {
		return nil, ErrNilExpansion
	}
	if len(center) != table.Dim() {
		return nil, ErrDimensionMismatch
	}
	c := make([]float64, len(center))
	copy(c, center)
	return &FarField{
		center: c,
		coeffs: make([]float64, 1),
		table:  table,
		aux:    aux,
	}, nil
}

// Order returns the highest order the expansion has accumulated to.
func (f *FarField) Order() int { return f.order }

// Center returns a copy of the expansion center.
func (f *FarField) Center() []float64 {
	c := make([]float64, len(f.center))
	copy(c, f.center)
	return c
}

// Coefficients returns a copy of the coefficient vector, rank-indexed per
// the expansion's multi-index table.
func (f *FarField) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// WeightSum returns the zeroth moment — the total accumulated weight.
// Valid from construction onward. Complexity: O(1).
func (f *FarField) WeightSum() float64 { return f.coeffs[0] }

// checkOrder validates a requested accumulation/evaluation order against
// the table range.
func (f *FarField) checkOrder(order int) error {
	if order < 0 || order > f.table.MaxOrder() {
		return ErrMaxOrderExceeded
	}
	return nil
}

// grow extends the coefficient vector to cover the given order.
func (f *FarField) grow(order int) {
	n := f.table.NumTerms(order)
	for len(f.coeffs) < n {
		f.coeffs = append(f.coeffs, 0)
	}
}

// Accumulate adds the contribution of a single reference point: for every
// multi-index α with |α| ≤ order, weight·u^α/α! is added to the coefficient
// at α's rank, with u = (point-center)/(k·h). Repeated calls are running
// sums; AccumulateCoeffs is the faster batch form.
//
// Errors: ErrDimensionMismatch, ErrMaxOrderExceeded, ErrDegenerateScale.
func (f *FarField) Accumulate(point []float64, weight float64, order int) error {
	if len(point) != f.table.Dim() {
		return ErrDimensionMismatch
	}
	if err := f.checkOrder(order); err != nil {
		return err
	}
	kh, err := normScale(f.aux)
	if err != nil {
		return err
	}

	n := f.table.NumTerms(order)
	f.grow(order)
	u := make([]float64, len(point))
	for d := range u {
		u[d] = (point[d] - f.center[d]) / kh
	}
	mono := make([]float64, n)
	if err = f.table.Monomials(u, order, mono); err != nil {
		return err
	}
	inv := f.table.InverseFactorials()
	for r := 0; r < n; r++ {
		f.coeffs[r] += weight * mono[r] * inv[r]
	}
	if order > f.order {
		f.order = order
	}
	return nil
}

// AccumulateCoeffs accumulates the far-field moments of the reference
// rows data[begin..end) with their weights. This is the hot loop: for N
// rows, dimension D and order p the cost is O(N·C(p+D, D)), and the inner
// multi-index loop is branch-free (one multiply-add per term over the
// table's monomial recurrence).
//
// Rows of data are points; weights is indexed by row.
//
// Errors: ErrNilData, ErrDimensionMismatch, ErrBadRange,
// ErrMaxOrderExceeded, ErrDegenerateScale.
func (f *FarField) AccumulateCoeffs(data *mat.Dense, weights []float64, begin, end, order int) error {
	if err := f.checkBatch(data, weights, begin, end, order); err != nil {
		return err
	}
	return f.accumulateRange(data, weights, begin, end, order, 0)
}

// RefineCoeffs extends a previously accumulated expansion to a strictly
// higher order over the same point range, computing only the multi-index
// ranks not already covered. Calling it with order ≤ Order() is a no-op;
// lower-order work is never redone or discarded.
//
// Errors: as for AccumulateCoeffs.
func (f *FarField) RefineCoeffs(data *mat.Dense, weights []float64, begin, end, order int) error {
	if err := f.checkBatch(data, weights, begin, end, order); err != nil {
		return err
	}
	if order <= f.order {
		return nil
	}
	from := f.table.NumTerms(f.order)
	return f.accumulateRange(data, weights, begin, end, order, from)
}

// checkBatch validates the shared preconditions of the batch calls.
func (f *FarField) checkBatch(data *mat.Dense, weights []float64, begin, end, order int) error {
	if data == nil {
		return ErrNilData
	}
	rows, cols := data.Dims()
	if cols != f.table.Dim() {
		return ErrDimensionMismatch
	}
	if begin < 0 || end > rows || begin > end || len(weights) < end {
		return ErrBadRange
	}
	return f.checkOrder(order)
}

// accumulateRange adds the contributions of rows [begin, end) for the
// coefficient ranks [from, NumTerms(order)).
func (f *FarField) accumulateRange(data *mat.Dense, weights []float64, begin, end, order, from int) error {
	kh, err := normScale(f.aux)
	if err != nil {
		return err
	}
	n := f.table.NumTerms(order)
	f.grow(order)

	u := make([]float64, f.table.Dim())
	mono := make([]float64, n)
	inv := f.table.InverseFactorials()
	for i := begin; i < end; i++ {
		row := data.RawRowView(i)
		for d := range u {
			u[d] = (row[d] - f.center[d]) / kh
		}
		if err = f.table.Monomials(u, order, mono); err != nil {
			return err
		}
		w := weights[i]
		for r := from; r < n; r++ {
			f.coeffs[r] += w * mono[r] * inv[r]
		}
	}
	if order > f.order {
		f.order = order
	}
	return nil
}

// EvaluateField evaluates the expansion at a query point:
//
//	Σ_{|α| ≤ order} coeffs[α] · Π_d m[d][α_d],   v = (q-center)/(k·h),
//
// where m is the kernel auxiliary's derivative map at v (the inverse
// multi-index factorials are already folded into the coefficients).
//
// Errors: ErrDimensionMismatch, ErrDegenerateScale, and ErrOrderExceeded
// when order is negative or above the accumulated order.
func (f *FarField) EvaluateField(q []float64, order int) (float64, error) {
	if len(q) != f.table.Dim() {
		return 0, ErrDimensionMismatch
	}
	if order < 0 || order > f.order {
		return 0, ErrOrderExceeded
	}
	kh, err := normScale(f.aux)
	if err != nil {
		return 0, err
	}

	v := make([]float64, len(q))
	for d := range v {
		v[d] = (q[d] - f.center[d]) / kh
	}
	dm, err := f.aux.DerivativeMap(v, order)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	n := f.table.NumTerms(order)
	for r := 0; r < n; r++ {
		w := 1.0
		for d, a := range f.table.Index(r) {
			w *= dm[d][a]
		}
		sum += f.coeffs[r] * w
	}
	return sum, nil
}

// EvaluateFieldRow evaluates the expansion at row q of a dataset.
// Returns ErrBadRange when the row index is out of bounds.
func (f *FarField) EvaluateFieldRow(data *mat.Dense, row, order int) (float64, error) {
	if data == nil {
		return 0, ErrNilData
	}
	rows, cols := data.Dims()
	if cols != f.table.Dim() {
		return 0, ErrDimensionMismatch
	}
	if row < 0 || row >= rows {
		return 0, ErrBadRange
	}
	return f.EvaluateField(data.RawRowView(row), order)
}

// Print writes a human-readable dump of the expansion to w, one line per
// multi-index. Diagnostic only; no behavioral contract beyond readability.
func (f *FarField) Print(name string, w io.Writer) {
	fmt.Fprintf(w, "%s: far-field expansion, dim=%d, order=%d, center=%v\n",
		name, f.table.Dim(), f.order, f.center)
	n := f.table.NumTerms(f.order)
	for r := 0; r < n; r++ {
		fmt.Fprintf(w, "  %v: %g\n", f.table.Index(r), f.coeffs[r])
	}
}
