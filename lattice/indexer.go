// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/tightbind/grid"
)

// Indexer is the coordinate↔index bijection of a lattice.
//
// Indices are handed out sequentially from 0 in registration order, so the
// mapping is dense and reproducible for a fixed registration sequence.
// Coordinates rejected by the inclusion predicate are never indexed.
type Indexer struct {
	include grid.Predicate
	index   map[grid.Coord]int
	sites   []grid.Coord
}

// NewIndexer returns an empty Indexer. A nil include accepts everything.
func NewIndexer(include grid.Predicate) *Indexer {
	if include == nil {
		include = grid.All
	}

	return &Indexer{
		include: include,
		index:   make(map[grid.Coord]int),
	}
}

// newIndexerCap is NewIndexer with a capacity hint for the site table.
func newIndexerCap(include grid.Predicate, capacity int) *Indexer {
	ix := NewIndexer(include)
	ix.index = make(map[grid.Coord]int, capacity)
	ix.sites = make([]grid.Coord, 0, capacity)

	return ix
}

// Register indexes c if the inclusion predicate holds.
//
// Behavior:
//   - New included coordinate: next index, true.
//   - Already registered coordinate: its existing index, true.
//   - Excluded coordinate: -1, false. It stays absent for good.
//
// Complexity: O(1) amortized.
func (ix *Indexer) Register(c grid.Coord) (int, bool) {
	if i, ok := ix.index[c]; ok {
		return i, true
	}
	if !ix.include(c) {
		return -1, false
	}
	i := len(ix.sites)
	ix.index[c] = i
	ix.sites = append(ix.sites, c)

	return i, true
}

// Lookup returns the index of c. It is false for coordinates that were
// never registered, were excluded, or lie outside the scanned box.
// Complexity: O(1).
func (ix *Indexer) Lookup(c grid.Coord) (int, bool) {
	i, ok := ix.index[c]
	return i, ok
}

// Coord returns the coordinate with index i.
// Errors: ErrSiteOutOfRange when i is outside [0, Len()).
func (ix *Indexer) Coord(i int) (grid.Coord, error) {
	if i < 0 || i >= len(ix.sites) {
		return grid.Coord{}, fmt.Errorf("Indexer.Coord(%d): N=%d: %w", i, len(ix.sites), ErrSiteOutOfRange)
	}

	return ix.sites[i], nil
}

// Len returns the number of indexed sites.
func (ix *Indexer) Len() int { return len(ix.sites) }

// Sites returns a copy of the index→coordinate table.
func (ix *Indexer) Sites() []grid.Coord {
	out := make([]grid.Coord, len(ix.sites))
	copy(out, ix.sites)

	return out
}

// Clone returns an independent copy sharing only the predicate.
// Complexity: O(N).
func (ix *Indexer) Clone() *Indexer {
	cp := newIndexerCap(ix.include, len(ix.sites))
	for i, c := range ix.sites {
		cp.index[c] = i
		cp.sites = append(cp.sites, c)
	}

	return cp
}
