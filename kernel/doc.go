// Package kernel defines the kernel auxiliary capability consumed by the
// expansion engine, and ships the Gaussian auxiliary as its reference
// implementation.
//
// 🚀 What is a kernel auxiliary?
//
//	The read-only bundle of kernel-specific constants a Cartesian series
//	expansion needs: a scale factor k and bandwidth h (displacements are
//	normalized as (x-c)/(k·h)), the per-dimension derivative-weight
//	tables used by far-field evaluation and far-to-local translation,
//	and the closed-form truncation-error bounds driving order selection.
//
// ✨ Key features:
//   - small capability interface (Aux) — kernels plug in without the
//     engine knowing their functional form
//   - Gaussian auxiliary: k = √2, Hermite-function derivative maps via a
//     two-term recurrence, Cramér-inequality error bounds
//   - strict bandwidth validation: near-zero scales are rejected at
//     construction instead of surfacing later as NaN coefficients
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/multipole/kernel"
//
//	aux, err := kernel.NewGaussian(0.5) // bandwidth h = 0.5
//	if err != nil { ... }
//	// hand aux to expansion.NewFarField / expansion.NewLocal
//
// Error bounds are reported per unit of accumulated weight; the
// dual-tree driver scales its error budget by the region's weight sum.
package kernel
