// SPDX-License-Identifier: MIT
// Package: tightbind/builder
//
// impl_rhombus.go - implementation of the Rhombus(L) preset.
//
// Canonical model:
//   • Box (2L+1, 2L+1, 1) whose center is the requested center c
//     (WithOrigin, default (0,0,0)); the box corner is c − (L, L, 0).
//   • Sites: |dx−dy| ≤ L and |dx+dy| ≤ L, (dx, dy) relative to c.
//     This is a square rotated by 45°, 2L²+2L+1 sites.
//   • Rule: ω on-site, Jx to (X±1), Jy to (Y±1).
//
// Contract:
//   • L ≥ 1 (else ErrInvalidDimension "Rhombus: L=<v>").

package builder

import (
	"github.com/katalvlaran/tightbind/grid"
	"github.com/katalvlaran/tightbind/lattice"
)

// Rhombus builds a diamond-shaped 2D lattice of half-diagonal l.
func Rhombus(l int, opts ...Option) (*lattice.Lattice, error) {
	return build(presets[ShapeRhombus], l, opts)
}

func rhombusGeometry(cfg resolvedConfig) (lattice.Geometry, error) {
	if err := validateLength(MethodRhombus, paramL, cfg.lx); err != nil {
		return lattice.Geometry{}, err
	}
	l := cfg.lx
	center := cfg.origin
	side := 2*l + 1

	return lattice.Geometry{
		Box:       grid.Box{Lx: side, Ly: side, Lz: 1},
		Origin:    center.Sub(grid.C(l, l, 0)),
		Rule:      axialRule(cfg.onSite, cfg.jx, cfg.jy),
		Include:   grid.And(grid.Rhombus(center, l), cfg.include),
		Dimension: 2,
	}, nil
}
