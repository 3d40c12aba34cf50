// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/unixpickle/model3d/model3d"

	"github.com/katalvlaran/tightbind/grid"
	"github.com/katalvlaran/tightbind/matrix"
)

const (
	ctxApply      = "Lattice.Apply"
	ctxApplyBatch = "Lattice.ApplyBatch"
	ctxCouplingAt = "Lattice.CouplingAt"
)

// Lattice is a compiled tight-binding model: an N×N Hamiltonian over the
// included sites plus the site bookkeeping. It is never mutated after
// Build returns, so every method is safe for concurrent use.
type Lattice struct {
	h         *matrix.CSR
	ix        *Indexer
	dim       int
	name      string
	box       grid.Box
	origin    grid.Coord
	impurity  Impurity
	positions []model3d.Coord3D
}

// Hamiltonian returns the assembled matrix. CSR values are immutable.
func (l *Lattice) Hamiltonian() *matrix.CSR { return l.h }

// Size returns N, the number of sites.
func (l *Lattice) Size() int { return l.ix.Len() }

// Dimension returns the presentation dimensionality (1, 2 or 3).
func (l *Lattice) Dimension() int { return l.dim }

// Name returns the shape label.
func (l *Lattice) Name() string { return l.name }

// Box returns the scanned box.
func (l *Lattice) Box() grid.Box { return l.box }

// Origin returns the offset applied to the box coordinates.
func (l *Lattice) Origin() grid.Coord { return l.origin }

// Indexer returns a copy of the site indexer; registering on it does not
// affect the lattice.
func (l *Lattice) Indexer() *Indexer { return l.ix.Clone() }

// Sites returns the index→coordinate table.
func (l *Lattice) Sites() []grid.Coord { return l.ix.Sites() }

// Index returns the index of the site at c, or false if c is not a site.
func (l *Lattice) Index(c grid.Coord) (int, bool) { return l.ix.Lookup(c) }

// Site returns the coordinate of site i.
// Errors: ErrSiteOutOfRange.
func (l *Lattice) Site(i int) (grid.Coord, error) { return l.ix.Coord(i) }

// HasImpurity reports whether CouplingAt is defined.
func (l *Lattice) HasImpurity() bool { return l.impurity != nil }

// Apply returns H·v.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(v) != Size().
//
// Complexity: O(N + nnz).
func (l *Lattice) Apply(v []float64) ([]float64, error) {
	y, err := l.h.MatVec(v)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ctxApply, l.name, err)
	}

	return y, nil
}

// ApplyBatch returns H·M for an N×k operand; every column of M is a state.
// k = 0 and N = 0 are legal and give empty results.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when M.Rows() != Size().
//
// Complexity: O(nnz·k).
func (l *Lattice) ApplyBatch(m matrix.Matrix) (*matrix.Dense, error) {
	y, err := l.h.MulDense(m)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ctxApplyBatch, l.name, err)
	}

	return y, nil
}

// CouplingAt returns the coupling between an impurity at p and every site,
// in index order. p may be any point in space.
//
// Errors:
//   - ErrUnsupportedQuery when the lattice has no impurity model.
//   - ErrInvalidProbe when p has a non-finite component.
//
// Complexity: O(N).
func (l *Lattice) CouplingAt(p model3d.Coord3D) ([]float64, error) {
	if l.impurity == nil {
		return nil, fmt.Errorf("%s %s: %w", ctxCouplingAt, l.name, ErrUnsupportedQuery)
	}
	if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.Z) {
		return nil, fmt.Errorf("%s %s: %v: %w", ctxCouplingAt, l.name, p, ErrInvalidProbe)
	}
	out := make([]float64, len(l.positions))
	for i, pos := range l.positions {
		out[i] = l.impurity.Coupling(pos, p)
	}

	return out, nil
}
