package grid

import "errors"

var (
	// ErrNegativeExtent indicates a box extent below zero.
	ErrNegativeExtent = errors.New("grid: box extent must be ≥ 0")
)
