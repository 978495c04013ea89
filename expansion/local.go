package expansion

import (
	"fmt"
	"io"

	"github.com/katalvlaran/multipole/kernel"
	"github.com/katalvlaran/multipole/multiindex"
)

// Local is a Taylor expansion about a query-side center, usable for
// direct evaluation at nearby query points. It shares the FarField
// coefficient layout but its semantics differ: local coefficients are
// populated only by translation operators (far→local, local→local),
// never by direct point accumulation, and every factorial and 1/(k·h)
// rescale is folded in at translation time, so evaluation is a plain
// polynomial in the raw displacement:
//
//	L(q) = Σ_{|β| ≤ order} coeffs[β] · (q - center)^β.
//
// Concurrency follows the FarField discipline: translations into the same
// Local must be serialized by the caller; completed expansions are safe
// for concurrent evaluation.
type Local struct {
	center []float64
	coeffs []float64
	order  int
	table  *multiindex.Table
	aux    kernel.Aux
}

// NewLocal builds a zero-initialized local expansion about center.
//
// Errors:
//   - ErrNilExpansion      — table or aux is nil
//   - ErrDimensionMismatch — len(center) != table.Dim()
func NewLocal(center []float64, table *multiindex.Table, aux kernel.Aux) (*Local, error) {
	if table == nil || aux == nil {
		return nil, ErrNilExpansion
	}
	if len(center) != table.Dim() {
		return nil, ErrDimensionMismatch
	}
	c := make([]float64, len(center))
	copy(c, center)
	return &Local{
		center: c,
		coeffs: make([]float64, 1),
		table:  table,
		aux:    aux,
	}, nil
}

// Order returns the highest order translated into the expansion.
func (l *Local) Order() int { return l.order }

// Center returns a copy of the expansion center.
func (l *Local) Center() []float64 {
	c := make([]float64, len(l.center))
	copy(c, l.center)
	return c
}

// Coefficients returns a copy of the coefficient vector, rank-indexed per
// the expansion's multi-index table.
func (l *Local) Coefficients() []float64 {
	c := make([]float64, len(l.coeffs))
	copy(c, l.coeffs)
	return c
}

// grow extends the coefficient vector to cover the given order.
func (l *Local) grow(order int) {
	n := l.table.NumTerms(order)
	for len(l.coeffs) < n {
		l.coeffs = append(l.coeffs, 0)
	}
}

// EvaluateField evaluates the local polynomial at a query point near the
// center. No kernel rescale is applied here; translation already folded
// it into the coefficients.
//
// Errors: ErrDimensionMismatch, and ErrOrderExceeded when order is
// negative or above the translated order.
func (l *Local) EvaluateField(q []float64, order int) (float64, error) {
	if len(q) != l.table.Dim() {
		return 0, ErrDimensionMismatch
	}
	if order < 0 || order > l.order {
		return 0, ErrOrderExceeded
	}

	disp := make([]float64, len(q))
	for d := range disp {
		disp[d] = q[d] - l.center[d]
	}
	n := l.table.NumTerms(order)
	mono := make([]float64, n)
	if err := l.table.Monomials(disp, order, mono); err != nil {
		return 0, err
	}

	sum := 0.0
	for r := 0; r < n; r++ {
		sum += l.coeffs[r] * mono[r]
	}
	return sum, nil
}

// Print writes a human-readable dump of the expansion to w, one line per
// multi-index. Diagnostic only.
func (l *Local) Print(name string, w io.Writer) {
	fmt.Fprintf(w, "%s: local expansion, dim=%d, order=%d, center=%v\n",
		name, l.table.Dim(), l.order, l.center)
	n := l.table.NumTerms(l.order)
	for r := 0; r < n; r++ {
		fmt.Fprintf(w, "  %v: %g\n", l.table.Index(r), l.coeffs[r])
	}
}
