// Package expansion implements Cartesian far-field and local series
// expansions with their translation operators and error-bounded order
// selection — the core of a fast-multipole / dual-tree kernel summation
// engine.
//
// 🚀 What is a series expansion here?
//
//	Instead of evaluating a kernel between every reference/query point
//	pair, the points inside a reference region are summarized by a
//	truncated multivariate Taylor (far-field) expansion about the
//	region's center. That summary can be evaluated at distant query
//	points, merged into a parent region (far→far), or converted into a
//	local expansion (far→local) that query points evaluate cheaply.
//
// ✨ Key features:
//   - FarField: single-point and batch moment accumulation (gonum
//     mat.Dense rows), monotone order refinement, query evaluation
//   - Local: query-side polynomial, populated only by translation
//   - Translation operators: far→far, far→local, local→local — exact
//     combinatorial bookkeeping over a shared multi-index table
//   - Order selection: minimal truncation order meeting a caller error
//     bound, with an explicit recoverable ErrInfeasible signal
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/multipole/expansion"
//	    "github.com/katalvlaran/multipole/kernel"
//	    "github.com/katalvlaran/multipole/multiindex"
//	)
//
//	tbl, _ := multiindex.New(2, 8)
//	aux, _ := kernel.NewGaussian(0.5)
//	far, _ := expansion.NewFarField([]float64{0, 0}, tbl, aux)
//	_ = far.AccumulateCoeffs(data, weights, 0, n, 8)
//
//	p, bound, err := far.OrderForConvertingToLocal(farBall, queryBall,
//	    farBall.MinDistanceSqd(queryBall), farBall.MaxDistanceSqd(queryBall),
//	    maxError/far.WeightSum())
//	if err != nil {
//	    // expansion.ErrInfeasible → evaluate this pair exactly instead
//	}
//	local, _ := expansion.NewLocal(queryCenter, tbl, aux)
//	_ = far.TranslateToLocal(local, p)
//	v, _ := local.EvaluateField(query, p)
//	_ = bound // total error ≤ bound · far.WeightSum()
//
// Concurrency:
//
//	The engine is single-threaded pure computation. Disjoint expansions
//	may be accumulated in parallel, and completed expansions evaluated
//	from any number of goroutines; an expansion under accumulation, or
//	the target of concurrent translations, must be serialized by the
//	caller (single-writer, multi-reader-after-write discipline).
//
// Performance:
//
//   - Accumulation: O(N·C(p+D, D)) for N points, branch-free inner loop
//   - Evaluation: O(C(p+D, D)·D) per query point
//   - Translations: O(C(p+D, D)²) — accepted, p is small in practice
package expansion
