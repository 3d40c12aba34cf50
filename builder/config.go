// SPDX-License-Identifier: MIT
// Package: tightbind/builder
//
// config.go - optional-field configuration and the single resolution step.
//
// Design:
//   • presetConfig records ONLY what the caller set: every numeric knob is a
//     pointer, nil meaning "not given". Options never read each other.
//   • resolve applies the default cascade exactly once, at the preset
//     boundary, producing a plain resolvedConfig with no optional fields.
//   • newPresetConfig applies options in-order (later overrides earlier).
//
// Default cascade:
//   • Ly ← Lx, Lz ← Lx
//   • Jx ← DefaultHopping, Jy ← Jx, Jz ← Jx
//   • ω  ← DefaultOnSite
//   • origin ← (0,0,0) (the corner; the center for Rhombus)
//   • disorder ← 0 (clean lattice), rng ← nil

package builder

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/tightbind/grid"
	"github.com/katalvlaran/tightbind/lattice"
	"github.com/katalvlaran/tightbind/matrix"
)

// presetConfig aggregates the caller's choices before defaults are applied.
type presetConfig struct {
	ly, lz     *int
	jx, jy, jz *float64
	onSite     *float64
	origin     *grid.Coord

	include   grid.Predicate
	impurity  lattice.Impurity
	logger    *slog.Logger
	dropZeros bool

	// On-site disorder: ω + U(-W/2, W/2) per coordinate, drawn from rng.
	disorder float64
	rng      *rand.Rand
}

// resolvedConfig is presetConfig after the default cascade.
type resolvedConfig struct {
	lx, ly, lz int
	jx, jy, jz float64
	onSite     float64
	origin     grid.Coord

	include   grid.Predicate
	impurity  lattice.Impurity
	logger    *slog.Logger
	dropZeros bool
	disorder  float64
	rng       *rand.Rand
}

// newPresetConfig applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newPresetConfig(opts ...Option) presetConfig {
	var cfg presetConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// resolve runs the default cascade for primary length lx.
// Complexity: O(1).
func (c presetConfig) resolve(lx int) resolvedConfig {
	r := resolvedConfig{
		lx:        lx,
		ly:        lx,
		lz:        lx,
		jx:        DefaultHopping,
		onSite:    DefaultOnSite,
		include:   c.include,
		impurity:  c.impurity,
		logger:    c.logger,
		dropZeros: c.dropZeros,
		disorder:  c.disorder,
		rng:       c.rng,
	}
	if c.ly != nil {
		r.ly = *c.ly
	}
	if c.lz != nil {
		r.lz = *c.lz
	}
	if c.jx != nil {
		r.jx = *c.jx
	}
	// Secondary couplings follow the resolved primary one.
	r.jy, r.jz = r.jx, r.jx
	if c.jy != nil {
		r.jy = *c.jy
	}
	if c.jz != nil {
		r.jz = *c.jz
	}
	if c.onSite != nil {
		r.onSite = *c.onSite
	}
	if c.origin != nil {
		r.origin = *c.origin
	}

	return r
}

// latticeOptions translates the resolved knobs into lattice.Build options.
func (r resolvedConfig) latticeOptions() []lattice.Option {
	opts := make([]lattice.Option, 0, 3)
	if r.logger != nil {
		opts = append(opts, lattice.WithLogger(r.logger))
	}
	if r.impurity != nil {
		opts = append(opts, lattice.WithImpurity(r.impurity))
	}
	if r.dropZeros {
		opts = append(opts, lattice.WithMatrixOptions(matrix.WithDropZeros()))
	}

	return opts
}
