// SPDX-License-Identifier: MIT
// Package: tightbind/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach the preset name and the offending parameter
//     using `%w`, e.g. "Square: Ly=0: builder: invalid dimension".
//   • Presets MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Lattice-level failures (nil rule, bad impurity parameters, ...) are
// reported with the lattice package sentinels and pass through unchanged.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension indicates a requested length ≤ 0.
// Raised before any build work; no partial lattice is ever returned.
// Usage: if errors.Is(err, ErrInvalidDimension) { /* report the parameter */ }.
var ErrInvalidDimension = errors.New("builder: invalid dimension")

// ErrNeedRandSource indicates that on-site disorder was requested without
// a random source (WithSeed or WithRand).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownShape indicates a preset name that New does not recognize.
var ErrUnknownShape = errors.New("builder: unknown shape")

// dimensionErrorf reports an invalid length of the given preset.
// The result reads "<Method>: <param>=<value>: builder: invalid dimension".
// Complexity: O(1).
func dimensionErrorf(method, param string, value int) error {
	return fmt.Errorf("%s: %s=%d: %w", method, param, value, ErrInvalidDimension)
}

// builderErrorf prefixes err with the preset name, keeping it for errors.Is.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
