// Package multiindex enumerates D-dimensional multi-indices and supplies
// the factorial and multinomial constants that Cartesian series
// expansions depend on.
//
// 🚀 What is a multi-index?
//
//	A tuple of non-negative integers α = (α₁,…,α_D) indexing one term of
//	a multivariate Taylor series; its order is |α| = Σ α_d. All α with
//	|α| ≤ p, for fixed D, form the coefficient layout of a truncated
//	expansion — C(p+D, D) terms in total.
//
// ✨ Key features:
//   - deterministic enumeration: grouped by increasing order, ascending
//     lexicographic within an order — stable across calls and processes
//   - O(1) rank ↔ multi-index lookups over a precomputed indexed table
//   - factorial / inverse-factorial / multinomial constants as pure,
//     side-effect-free functions over a lazily built read-only cache
//   - Monomials: all u^α up to an order with one multiply per term via a
//     parent/axis recurrence, keeping accumulation loops branch-free
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/multipole/multiindex"
//
//	t, err := multiindex.New(3, 8) // D=3, orders 0..8
//	if err != nil { ... }
//	n := t.NumTerms(8)             // C(11,3) terms
//	mono := make([]float64, n)
//	_ = t.Monomials([]float64{0.5, -0.2, 1.0}, 8, mono)
//
// Performance:
//
//   - Build: O(C(p+D, D) · D) time, done once per (D, p) pair
//   - Lookups and per-term constants: O(1)
//
// Orders are capped at MaxTableOrder to keep double-precision factorial
// tables exact enough; New returns ErrOrderRange beyond that.
package multiindex
