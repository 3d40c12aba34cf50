// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/tightbind/grid"
	"github.com/katalvlaran/tightbind/lattice"
)

// Cubic builds an Lx×Ly×Lz simple cubic lattice with anisotropic hopping
// Jx, Jy, Jz. Ly and Lz default to Lx; Jy and Jz default to Jx.
// Lengths are checked in the order Lx, Ly, Lz.
// Complexity: O(Lx·Ly·Lz).
func Cubic(lx int, opts ...Option) (*lattice.Lattice, error) {
	return build(presets[ShapeCubic], lx, opts)
}

func cubicGeometry(cfg resolvedConfig) (lattice.Geometry, error) {
	if err := validateLengths(MethodCubic,
		lengthParam{paramLx, cfg.lx},
		lengthParam{paramLy, cfg.ly},
		lengthParam{paramLz, cfg.lz},
	); err != nil {
		return lattice.Geometry{}, err
	}

	return lattice.Geometry{
		Box:       grid.Box{Lx: cfg.lx, Ly: cfg.ly, Lz: cfg.lz},
		Origin:    cfg.origin,
		Rule:      axialRule(cfg.onSite, cfg.jx, cfg.jy, cfg.jz),
		Include:   cfg.include,
		Dimension: 3,
	}, nil
}
