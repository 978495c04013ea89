// Package kernel: sentinel error set.

package kernel

import "errors"

var (
	// ErrBandwidth is returned when a kernel bandwidth is NaN, non-positive
	// or below MinBandwidth — division by such a scale would silently
	// produce NaN/Inf coefficients downstream.
	ErrBandwidth = errors.New("kernel: bandwidth must be finite and >= MinBandwidth")

	// ErrOrder is returned when a negative derivative order is requested.
	ErrOrder = errors.New("kernel: order must be >= 0")

	// ErrDimension is returned when a coordinate slice is empty.
	ErrDimension = errors.New("kernel: point must have at least one coordinate")
)
