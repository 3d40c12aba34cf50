// SPDX-License-Identifier: MIT
// Package: tightbind/builder
//
// options.go - functional options for the shape presets.
//
// Contract (strict):
//   • Options are functional (type Option func(*presetConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil predicates/models/loggers, NaN/Inf couplings, negative disorder).
//     Presets themselves MUST NOT panic.
//   • Lengths are NOT validated here: a non-positive length is a user input
//     error and surfaces from the preset as ErrInvalidDimension.
//   • Determinism is explicit: disorder draws come from WithSeed or WithRand.
//
// Hints:
//   • Options a preset has no use for are ignored (e.g. WithLengths on Chain,
//     WithHoppingZ on Square).
//   • WithInclusion is ANDed with the preset's own predicate.

package builder

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/tightbind/grid"
	"github.com/katalvlaran/tightbind/lattice"
)

// Option customizes a preset by mutating a presetConfig before resolution.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*presetConfig)

// WithLengths sets the secondary lengths Ly and Lz.
func WithLengths(ly, lz int) Option {
	return func(c *presetConfig) {
		c.ly, c.lz = &ly, &lz
	}
}

// WithLengthY sets Ly only; Lz keeps defaulting to Lx.
func WithLengthY(ly int) Option {
	return func(c *presetConfig) {
		c.ly = &ly
	}
}

// WithLengthZ sets Lz only; Ly keeps defaulting to Lx.
func WithLengthZ(lz int) Option {
	return func(c *presetConfig) {
		c.lz = &lz
	}
}

// WithHopping sets the primary hopping J (Jx). Jy and Jz follow it unless set.
// Panics on NaN/Inf.
func WithHopping(j float64) Option {
	mustFinite("WithHopping", j)
	return func(c *presetConfig) {
		c.jx = &j
	}
}

// WithHoppingY sets Jy. Panics on NaN/Inf.
func WithHoppingY(j float64) Option {
	mustFinite("WithHoppingY", j)
	return func(c *presetConfig) {
		c.jy = &j
	}
}

// WithHoppingZ sets Jz. Panics on NaN/Inf.
func WithHoppingZ(j float64) Option {
	mustFinite("WithHoppingZ", j)
	return func(c *presetConfig) {
		c.jz = &j
	}
}

// WithOnSite sets the on-site energy ω. Panics on NaN/Inf.
func WithOnSite(w float64) Option {
	mustFinite("WithOnSite", w)
	return func(c *presetConfig) {
		c.onSite = &w
	}
}

// WithOrigin places the lattice: the corner for Chain/Square/Cubic/BCC,
// the center for Rhombus.
func WithOrigin(o grid.Coord) Option {
	return func(c *presetConfig) {
		c.origin = &o
	}
}

// WithInclusion adds a site predicate, ANDed with the preset's own.
// Panics on nil.
func WithInclusion(p grid.Predicate) Option {
	if p == nil {
		panic("builder: WithInclusion(nil)")
	}
	return func(c *presetConfig) {
		c.include = grid.And(c.include, p)
	}
}

// WithImpurity attaches the model answering Lattice.CouplingAt. Panics on nil.
func WithImpurity(m lattice.Impurity) Option {
	if m == nil {
		panic("builder: WithImpurity(nil)")
	}
	return func(c *presetConfig) {
		c.impurity = m
	}
}

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *presetConfig) {
		c.logger = l
	}
}

// WithDropZeros prunes matrix entries that cancel to zero (e.g. ω = 0 or
// J = 0). By default explicit zeros stay in the sparsity pattern.
func WithDropZeros() Option {
	return func(c *presetConfig) {
		c.dropZeros = true
	}
}

// WithDisorder adds uniform on-site disorder of width w: each coordinate
// gets ω + U(-w/2, w/2). Requires WithSeed or WithRand.
// Panics if w < 0 or w is NaN/Inf.
func WithDisorder(w float64) Option {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic("builder: WithDisorder(w<0 or non-finite)")
	}
	return func(c *presetConfig) {
		c.disorder = w
	}
}

// WithRand provides an explicit RNG for disorder draws. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *presetConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *presetConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func mustFinite(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("builder: " + name + "(non-finite)")
	}
}
