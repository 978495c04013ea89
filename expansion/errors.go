// Package expansion: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// expansion package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package expansion

import "errors"

// NOTE ON RECOVERABILITY
// ----------------------
// ErrInfeasible is an expected, recoverable condition: the order selector
// could not meet the requested error bound and the caller must fall back
// to exact pairwise evaluation for that region pair. Every other sentinel
// marks a contract violation at the call site (bad range, mismatched
// dimensions, evaluation beyond the accumulated order) and is not
// recoverable by retry.

var (
	// ErrNilExpansion is returned when a nil expansion is passed to a
	// translation operator or constructor.
	ErrNilExpansion = errors.New("expansion: nil expansion")

	// ErrNilRegion is returned when a nil bounding region is passed to the
	// order selector.
	ErrNilRegion = errors.New("expansion: nil region")

	// ErrNilData is returned when a nil dataset is passed to a batch
	// accumulation call.
	ErrNilData = errors.New("expansion: nil data matrix")

	// ErrDimensionMismatch indicates that a point, dataset or region does
	// not match the expansion's dimension.
	ErrDimensionMismatch = errors.New("expansion: dimension mismatch")

	// ErrBadRange indicates an invalid [begin, end) row range, a weights
	// slice shorter than the range, or malformed distance bounds.
	ErrBadRange = errors.New("expansion: invalid range")

	// ErrOrderExceeded is returned when evaluation or translation is
	// requested at an order the expansion has not accumulated to.
	ErrOrderExceeded = errors.New("expansion: order exceeds accumulated order")

	// ErrMaxOrderExceeded is returned when a requested order is negative or
	// exceeds the multi-index table's maximum.
	ErrMaxOrderExceeded = errors.New("expansion: order outside table range")

	// ErrExpansionMismatch is returned when a translation pairs expansions
	// built over different tables or kernel constants, or an expansion
	// with itself.
	ErrExpansionMismatch = errors.New("expansion: incompatible expansions")

	// ErrDegenerateScale is returned when the kernel normalization scale
	// k·h is too close to zero for stable displacement normalization.
	ErrDegenerateScale = errors.New("expansion: near-zero kernel scale")

	// ErrTolerance is returned when a requested error tolerance is not a
	// positive finite number.
	ErrTolerance = errors.New("expansion: error tolerance must be positive")

	// ErrInfeasible is returned by the order selector when no order within
	// the table maximum satisfies the requested error bound. Callers fall
	// back to direct pairwise evaluation.
	ErrInfeasible = errors.New("expansion: no order satisfies the error bound")
)
