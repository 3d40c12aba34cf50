// SPDX-License-Identifier: MIT
// Package: tightbind/builder
//
// impl_square.go - implementation of the Square(Lx) preset.
//
// Canonical model:
//   • Box (Lx,Ly,1); Ly defaults to Lx.
//   • Rule: ω on-site, Jx to (X±1), Jy to (Y±1); Jy defaults to Jx.
//
// Contract:
//   • Lx ≥ 1 and Ly ≥ 1, checked in that order.
//
// Complexity:
//   • Time O(Lx·Ly), Space O(Lx·Ly).

package builder

import (
	"github.com/katalvlaran/tightbind/grid"
	"github.com/katalvlaran/tightbind/lattice"
)

// Square builds an Lx×Ly square lattice (Ly from WithLengths/WithLengthY).
func Square(lx int, opts ...Option) (*lattice.Lattice, error) {
	return build(presets[ShapeSquare], lx, opts)
}

func squareGeometry(cfg resolvedConfig) (lattice.Geometry, error) {
	if err := validateLengths(MethodSquare,
		lengthParam{paramLx, cfg.lx},
		lengthParam{paramLy, cfg.ly},
	); err != nil {
		return lattice.Geometry{}, err
	}

	return lattice.Geometry{
		Box:       grid.Box{Lx: cfg.lx, Ly: cfg.ly, Lz: 1},
		Origin:    cfg.origin,
		Rule:      axialRule(cfg.onSite, cfg.jx, cfg.jy),
		Include:   cfg.include,
		Dimension: 2,
	}, nil
}
