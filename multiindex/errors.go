// Package multiindex: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// multiindex package. All functions MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered
// error conditions.

package multiindex

import "errors"

var (
	// ErrDimension is returned when the requested dimension is < 1.
	ErrDimension = errors.New("multiindex: dimension must be >= 1")

	// ErrOrderRange is returned when a requested order is negative or
	// exceeds MaxTableOrder (double-precision factorial tables are only
	// precomputed up to 2·MaxTableOrder).
	ErrOrderRange = errors.New("multiindex: order out of supported range")

	// ErrIndexMismatch is returned when a multi-index or coordinate slice
	// does not match the table's dimension.
	ErrIndexMismatch = errors.New("multiindex: length does not match table dimension")

	// ErrBufferSize is returned when a caller-supplied output buffer is too
	// short for the requested order.
	ErrBufferSize = errors.New("multiindex: output buffer too short")
)
