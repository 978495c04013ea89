package multiindex

import "sync"

// MaxTableOrder is the largest truncation order a Table supports.
// Translation operators touch per-dimension derivative orders up to twice
// the table order, so factorials are precomputed up to 2·MaxTableOrder;
// beyond that, double-precision factorial bookkeeping degrades.
const MaxTableOrder = 20

// factorials is the process-wide read-only factorial cache, built lazily
// once and never mutated afterwards.
var factorials = sync.OnceValue(func() []float64 {
	f := make([]float64, 2*MaxTableOrder+1)
	f[0] = 1
	for n := 1; n < len(f); n++ {
		f[n] = f[n-1] * float64(n)
	}
	return f
})

// Factorial returns n! as a float64.
// Returns ErrOrderRange when n < 0 or n > 2·MaxTableOrder.
// Complexity: O(1) after the first call.
func Factorial(n int) (float64, error) {
	if n < 0 || n > 2*MaxTableOrder {
		return 0, ErrOrderRange
	}
	return factorials()[n], nil
}

// Table enumerates and indexes every D-dimensional multi-index α with
// |α| ≤ maxOrder. The enumeration is deterministic and stable: grouped by
// increasing order, ascending lexicographic within an order. A Table is
// immutable after construction and safe for concurrent readers.
//
// The table also carries the combinatorial constants the expansion
// machinery needs per term (inverse factorials 1/α!) and a parent/axis
// recurrence that lets all monomials u^α be evaluated with one multiply
// per term (see Monomials).
type Table struct {
	dim      int
	maxOrder int

	indices [][]int // rank → multi-index
	orders  []int   // rank → |α|
	offsets []int   // order → first rank of that order; offsets[maxOrder+1] == TotalTerms
	parent  []int   // rank → rank of α − e_axis (rank 0 unused)
	axis    []int   // rank → dimension whose component was decremented
	invFact []float64
	ranks   map[string]int
}

// New builds the multi-index table for the given dimension and maximum
// order. The table size grows combinatorially: C(maxOrder+dim, dim) terms.
//
// Errors:
//   - ErrDimension  — dim < 1
//   - ErrOrderRange — maxOrder < 0 or maxOrder > MaxTableOrder
func New(dim, maxOrder int) (*Table, error) {
	// Validate shape before any allocation.
	if dim < 1 {
		return nil, ErrDimension
	}
	if maxOrder < 0 || maxOrder > MaxTableOrder {
		return nil, ErrOrderRange
	}

	t := &Table{
		dim:      dim,
		maxOrder: maxOrder,
		offsets:  make([]int, maxOrder+2),
		ranks:    make(map[string]int),
	}

	// Enumerate order by order; within an order, compose() emits
	// multi-indices in ascending lexicographic order.
	scratch := make([]int, dim)
	for o := 0; o <= maxOrder; o++ {
		t.offsets[o] = len(t.indices)
		t.compose(scratch, o, 0)
	}
	t.offsets[maxOrder+1] = len(t.indices)

	return t, nil
}

// compose fills positions pos..dim-1 of alpha with every composition of
// rem, ascending lexicographic, recording each completed multi-index.
func (t *Table) compose(alpha []int, rem, pos int) {
	if pos == t.dim-1 {
		alpha[pos] = rem
		t.record(alpha)
		return
	}
	for v := 0; v <= rem; v++ {
		alpha[pos] = v
		t.compose(alpha, rem-v, pos+1)
	}
}

// record appends a copy of alpha as the next rank and derives its
// constants: order, inverse factorial, rank lookup key and the
// parent/axis recurrence step.
func (t *Table) record(alpha []int) {
	rank := len(t.indices)
	cp := make([]int, t.dim)
	copy(cp, alpha)
	t.indices = append(t.indices, cp)

	order := 0
	inv := 1.0
	for _, a := range cp {
		order += a
		inv /= factorials()[a]
	}
	t.orders = append(t.orders, order)
	t.invFact = append(t.invFact, inv)
	t.ranks[tupleKey(cp)] = rank

	// Parent step: decrement the last nonzero component. The parent has a
	// strictly smaller order, hence a smaller rank, so Monomials can fill
	// ranks in a single forward pass.
	par, ax := 0, 0
	if order > 0 {
		for d := t.dim - 1; d >= 0; d-- {
			if cp[d] > 0 {
				ax = d
				break
			}
		}
		cp[ax]--
		par = t.ranks[tupleKey(cp)]
		cp[ax]++
	}
	t.parent = append(t.parent, par)
	t.axis = append(t.axis, ax)
}

// tupleKey packs a multi-index into a map key. Components never exceed
// 2·MaxTableOrder, so one byte each suffices.
func tupleKey(alpha []int) string {
	b := make([]byte, len(alpha))
	for i, a := range alpha {
		b[i] = byte(a)
	}
	return string(b)
}

// Dim returns the table's dimension. Complexity: O(1).
func (t *Table) Dim() int { return t.dim }

// MaxOrder returns the largest order the table enumerates. Complexity: O(1).
func (t *Table) MaxOrder() int { return t.maxOrder }

// TotalTerms returns the number of enumerated multi-indices,
// C(maxOrder+dim, dim). Complexity: O(1).
func (t *Table) TotalTerms() int { return len(t.indices) }

// NumTerms returns the number of multi-indices with |α| ≤ order, i.e.
// C(order+dim, dim). Out-of-range orders clamp: negative orders yield 0,
// orders above MaxOrder yield TotalTerms. Complexity: O(1).
func (t *Table) NumTerms(order int) int {
	if order < 0 {
		return 0
	}
	if order > t.maxOrder {
		return len(t.indices)
	}
	return t.offsets[order+1]
}

// Index returns the multi-index at the given rank. The returned slice is
// a read-only view into the table; callers must not modify it.
// Returns nil when rank is out of range.
func (t *Table) Index(rank int) []int {
	if rank < 0 || rank >= len(t.indices) {
		return nil
	}
	return t.indices[rank]
}

// Rank returns the rank of alpha in the enumeration and whether alpha is
// present (correct length, non-negative components, |α| ≤ MaxOrder).
func (t *Table) Rank(alpha []int) (int, bool) {
	if len(alpha) != t.dim {
		return 0, false
	}
	for _, a := range alpha {
		if a < 0 {
			return 0, false
		}
	}
	r, ok := t.ranks[tupleKey(alpha)]
	return r, ok
}

// OrderOf returns |α| for the multi-index at rank, or -1 when rank is out
// of range. Complexity: O(1).
func (t *Table) OrderOf(rank int) int {
	if rank < 0 || rank >= len(t.orders) {
		return -1
	}
	return t.orders[rank]
}

// InverseFactorial returns 1/α! = 1/(α₁!·…·α_D!) for the multi-index at
// rank, or 0 when rank is out of range. Complexity: O(1).
func (t *Table) InverseFactorial(rank int) float64 {
	if rank < 0 || rank >= len(t.invFact) {
		return 0
	}
	return t.invFact[rank]
}

// InverseFactorials returns the rank-indexed table of 1/α! values as a
// read-only view; callers must not modify it. Hot accumulation loops use
// this to avoid per-term method calls.
func (t *Table) InverseFactorials() []float64 { return t.invFact }

// Multinomial returns the multinomial coefficient |α|!/(α₁!·…·α_D!).
//
// Errors:
//   - ErrIndexMismatch — len(alpha) != Dim()
//   - ErrOrderRange    — a component is negative or |α| > 2·MaxTableOrder
func (t *Table) Multinomial(alpha []int) (float64, error) {
	if len(alpha) != t.dim {
		return 0, ErrIndexMismatch
	}
	order := 0
	denom := 1.0
	for _, a := range alpha {
		if a < 0 {
			return 0, ErrOrderRange
		}
		order += a
	}
	numer, err := Factorial(order)
	if err != nil {
		return 0, err
	}
	for _, a := range alpha {
		denom *= factorials()[a]
	}
	return numer / denom, nil
}

// Power returns Π_d u[d]^α_d, the monomial u^α.
// Returns ErrIndexMismatch when the slice lengths disagree with the
// table's dimension. Complexity: O(|α|).
func (t *Table) Power(u []float64, alpha []int) (float64, error) {
	if len(u) != t.dim || len(alpha) != t.dim {
		return 0, ErrIndexMismatch
	}
	p := 1.0
	for d, a := range alpha {
		for i := 0; i < a; i++ {
			p *= u[d]
		}
	}
	return p, nil
}

// Monomials evaluates u^α for every multi-index with |α| ≤ order, writing
// the value for rank r into out[r]. It walks the precomputed parent/axis
// recurrence, so the inner loop is branch-free with one multiply per term.
//
// Errors:
//   - ErrIndexMismatch — len(u) != Dim()
//   - ErrOrderRange    — order < 0 or order > MaxOrder()
//   - ErrBufferSize    — len(out) < NumTerms(order)
//
// Complexity: O(C(order+dim, dim)).
func (t *Table) Monomials(u []float64, order int, out []float64) error {
	if len(u) != t.dim {
		return ErrIndexMismatch
	}
	if order < 0 || order > t.maxOrder {
		return ErrOrderRange
	}
	n := t.offsets[order+1]
	if len(out) < n {
		return ErrBufferSize
	}
	out[0] = 1
	for r := 1; r < n; r++ {
		out[r] = out[t.parent[r]] * u[t.axis[r]]
	}
	return nil
}
