// SPDX-License-Identifier: MIT

// Package matrix - Triplets: coordinate-form (COO) accumulator.
//
// Purpose:
//   - Collect (row, col, value) contributions in emission order.
//   - Sum duplicates on compression: repeated (i,j) pairs accumulate
//     additively, they never overwrite.
//   - Produce a CSR whose layout is a pure function of the multiset of
//     contributions and their emission order (bit-identical rebuilds).
//
// Complexity quicksheet:
//   - Add: amortized O(1); ToCSR: O(nnz log nnz) for the stable sort + O(r).
package matrix

import (
	"fmt"
	"sort"
)

const (
	ctxTripletsAdd = "Triplets.Add"
	ctxTripletsCSR = "Triplets.ToCSR"
)

// Triplets accumulates sparse entries before compression.
// Not safe for concurrent mutation; build on one goroutine, then compress.
type Triplets struct {
	r, c    int
	entries []Entry
	opts    Options
}

// NewTriplets creates an empty accumulator for an rows×cols matrix.
// Zero extents are legal (an empty lattice yields a 0×0 matrix).
//
// Errors:
//   - ErrBadShape when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewTriplets(rows, cols int, opts ...Option) (*Triplets, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewTriplets(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Triplets{r: rows, c: cols, opts: gatherOptions(opts...)}, nil
}

// Rows returns the row count.
func (t *Triplets) Rows() int { return t.r }

// Cols returns the column count.
func (t *Triplets) Cols() int { return t.c }

// Len returns the number of contributions collected so far (duplicates included).
func (t *Triplets) Len() int { return len(t.entries) }

// Add records value v at (i, j).
//
// Implementation:
//   - Stage 1: bounds check (0≤i<rows, 0≤j<cols).
//   - Stage 2: enforce numeric policy.
//   - Stage 3: append in emission order.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf (policy on).
//
// Complexity:
//   - Amortized O(1).
func (t *Triplets) Add(i, j int, v float64) error {
	if i < 0 || i >= t.r || j < 0 || j >= t.c {
		return fmt.Errorf("%s(%d,%d): %w", ctxTripletsAdd, i, j, ErrOutOfRange)
	}
	if t.opts.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("%s(%d,%d): %w", ctxTripletsAdd, i, j, ErrNaNInf)
	}
	t.entries = append(t.entries, Entry{Row: i, Col: j, Value: v})

	return nil
}

// Entries returns a copy of the collected contributions in emission order.
func (t *Triplets) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)

	return out
}

// ToCSR compresses the triplets into an immutable CSR matrix.
//
// Implementation:
//   - Stage 1: stable sort of a copy by (row, col); emission order breaks ties,
//     so floating-point summation order is fixed.
//   - Stage 2: merge runs of equal (row, col) by summation.
//   - Stage 3: optionally drop |sum| ≤ eps (WithDropZeros).
//   - Stage 4: build row pointers.
//
// Behavior highlights:
//   - The accumulator is left untouched and may keep growing afterwards.
//   - Column indices within each row are strictly ascending.
//
// Errors:
//   - ErrNaNInf if summation overflowed to ±Inf under the finite-only policy.
//
// Complexity:
//   - Time O(nnz log nnz + rows), Space O(nnz + rows).
func (t *Triplets) ToCSR() (*CSR, error) {
	sorted := t.Entries()
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})

	rowPtr := make([]int, t.r+1)
	colIdx := make([]int, 0, len(sorted))
	values := make([]float64, 0, len(sorted))

	var k, run int
	for k = 0; k < len(sorted); k = run {
		e := sorted[k]
		sum := e.Value
		for run = k + 1; run < len(sorted) && sorted[run].Row == e.Row && sorted[run].Col == e.Col; run++ {
			sum += sorted[run].Value
		}
		if t.opts.validateNaNInf && isNonFinite(sum) {
			return nil, fmt.Errorf("%s: entry (%d,%d): %w", ctxTripletsCSR, e.Row, e.Col, ErrNaNInf)
		}
		if !t.opts.keepZeros && abs(sum) <= t.opts.eps {
			continue
		}
		colIdx = append(colIdx, e.Col)
		values = append(values, sum)
		rowPtr[e.Row+1]++
	}
	// Prefix sums turn per-row counts into offsets.
	for k = 0; k < t.r; k++ {
		rowPtr[k+1] += rowPtr[k]
	}

	return &CSR{
		r:      t.r,
		c:      t.c,
		rowPtr: rowPtr,
		colIdx: colIdx,
		values: values,
	}, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
