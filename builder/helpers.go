// Package builder provides internal helper functions used by the presets
// to assemble coupling rules.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Performance: rules are built once per preset call, never per site.
//   - Determinism: hop order follows grid.Axial / grid.BodyDiagonals.
package builder

import (
	"math/rand"

	"github.com/katalvlaran/tightbind/grid"
	"github.com/katalvlaran/tightbind/lattice"
)

// axialRule builds an on-site term plus ± hops along the first len(j) axes;
// j[k] is the amplitude along axis k. Hop order: +X, -X, +Y, -Y, +Z, -Z.
//
// Complexity: O(len(j)) time and space.
func axialRule(onSite float64, j ...float64) lattice.Rule {
	offsets := grid.Axial(len(j))
	hops := make([]lattice.Hop, len(offsets))
	var k int
	for k = range offsets {
		// offsets come in (+axis, -axis) pairs.
		hops[k] = lattice.Hop{Offset: offsets[k], Strength: j[k/2]}
	}

	return lattice.Rule{OnSite: onSite, Hops: hops}
}

// disorderedRule wraps base with per-coordinate on-site shifts drawn from
// U(-w/2, w/2). Draws happen in box scan order over every shifted box
// coordinate, excluded or not, so a site's shift depends only on the seed
// and the box, never on the inclusion predicate.
//
// Complexity: O(V) time and space, V = box volume.
func disorderedRule(g lattice.Geometry, base lattice.Rule, w float64, rng *rand.Rand) lattice.CouplingRule {
	shift := make(map[grid.Coord]float64, g.Box.Volume())
	g.Box.Each(func(c grid.Coord) bool {
		shift[c.Add(g.Origin)] = w * (rng.Float64() - 0.5)
		return true
	})

	return lattice.RuleFunc(func(c grid.Coord) []lattice.Coupling {
		out := base.Couplings(c)
		// Couplings always starts with the on-site term.
		out[0].Strength += shift[c]
		return out
	})
}
