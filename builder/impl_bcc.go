// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/tightbind/grid"
	"github.com/katalvlaran/tightbind/lattice"
)

// BCC builds a body-centered cubic lattice inside an Lx×Ly×Lz box: the
// coordinates whose components share parity, each coupled with J to its
// eight (±1,±1,±1) neighbors. Parity is taken on absolute coordinates, so
// an odd origin selects the complementary sublattice of the raw box.
// Complexity: O(Lx·Ly·Lz).
func BCC(lx int, opts ...Option) (*lattice.Lattice, error) {
	return build(presets[ShapeBCC], lx, opts)
}

func bccGeometry(cfg resolvedConfig) (lattice.Geometry, error) {
	if err := validateLengths(MethodBCC,
		lengthParam{paramLx, cfg.lx},
		lengthParam{paramLy, cfg.ly},
		lengthParam{paramLz, cfg.lz},
	); err != nil {
		return lattice.Geometry{}, err
	}

	return lattice.Geometry{
		Box:       grid.Box{Lx: cfg.lx, Ly: cfg.ly, Lz: cfg.lz},
		Origin:    cfg.origin,
		Rule:      lattice.NewRule(cfg.onSite, cfg.jx, grid.BodyDiagonals()),
		Include:   grid.And(grid.SameParity, cfg.include),
		Dimension: 3,
	}, nil
}
