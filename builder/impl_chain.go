// SPDX-License-Identifier: MIT
// Package: tightbind/builder
//
// impl_chain.go - implementation of the Chain(L) preset.
//
// Canonical model:
//   • Box (L,1,1), corner at the origin option.
//   • Rule: ω on-site, J to (X±1).
//   • No inclusion predicate of its own.
//
// Contract:
//   • L ≥ 1 (else ErrInvalidDimension "Chain: L=<v>").
//   • WithLengths / WithHoppingY / WithHoppingZ are ignored.
//
// Complexity:
//   • Time O(L), Space O(L): N = L sites, nnz = 3L-2.

package builder

import (
	"github.com/katalvlaran/tightbind/grid"
	"github.com/katalvlaran/tightbind/lattice"
)

// Chain builds a 1D chain of l sites.
func Chain(l int, opts ...Option) (*lattice.Lattice, error) {
	return build(presets[ShapeChain], l, opts)
}

func chainGeometry(cfg resolvedConfig) (lattice.Geometry, error) {
	if err := validateLength(MethodChain, paramL, cfg.lx); err != nil {
		return lattice.Geometry{}, err
	}

	return lattice.Geometry{
		Box:       grid.Box{Lx: cfg.lx, Ly: 1, Lz: 1},
		Origin:    cfg.origin,
		Rule:      axialRule(cfg.onSite, cfg.jx),
		Include:   cfg.include,
		Dimension: 1,
	}, nil
}
