// Package multipole is a Cartesian series-expansion engine for fast
// multipole and dual-tree kernel summations — polynomial summaries of
// point sets that replace exhaustive pairwise kernel evaluation.
//
// 🚀 What is multipole?
//
//	A pure-Go computational core that brings together:
//		• Multi-index tables: enumeration, factorial & multinomial constants
//		• Far-field expansions: accumulate point moments, evaluate at queries
//		• Local expansions: query-side Taylor summaries built by translation
//		• Translation operators: far→far, far→local, local→local
//		• Order selection: minimal truncation order under an error bound
//
// ✨ Why choose multipole?
//
//   - Deterministic – stable multi-index enumeration, no global mutable state
//   - Rock-solid guarantees – explicit sentinel errors, no panics on input
//   - Numerically careful – folded factorials, guarded bandwidth scales
//   - Extensible – kernels plug in through a small auxiliary interface
//
// Under the hood, everything is organized under three subpackages:
//
//	multiindex/ — D-dimensional multi-index enumeration & combinatorics
//	kernel/     — kernel auxiliary capability (scale, bandwidth,
//	              derivative maps, truncation-error bounds) + Gaussian
//	expansion/  — far-field & local expansions, translation operators,
//	              error-bounded order selection
//
// Quick sketch of the data flow:
//
//	points ──AccumulateCoeffs──▶ FarField ──TranslateToLocal──▶ Local
//	                                │                             │
//	                        EvaluateField(q)              EvaluateField(q)
//
// A tree-construction collaborator accumulates reference points into
// far-field expansions per region; a dual-tree driver asks the order
// selector whether a region pair can be approximated, translates
// coefficients, and finally evaluates per query point.
//
//	go get github.com/katalvlaran/multipole/expansion
package multipole
