// SPDX-License-Identifier: MIT

// Package matrix - CSR: immutable compressed sparse row storage.
//
// Purpose:
//   - Hold a lattice Hamiltonian in O(rows + nnz) memory.
//   - Serve read-only queries (At, Do, RowEntries) and products (MatVec, MulDense).
//   - Never change after construction: Set reports ErrMatrixNotImplemented,
//     so concurrent readers need no locking.
//
// Layout:
//   - rowPtr has rows+1 offsets; row i occupies colIdx/values[rowPtr[i]:rowPtr[i+1]].
//   - colIdx is strictly ascending inside each row (binary search in At).
//
// Complexity quicksheet:
//   - At: O(log nnz(row)); MatVec: O(nnz); MulDense: O(nnz*k); Transpose: O(nnz + cols).
package matrix

import (
	"fmt"
	"sort"
	"strings"
)

const (
	ctxCSRAt       = "CSR.At"
	ctxCSRSet      = "CSR.Set"
	ctxCSRMatVec   = "CSR.MatVec"
	ctxCSRMulDense = "CSR.MulDense"
	ctxCSRRow      = "CSR.RowEntries"
)

// CSR is a compressed sparse row matrix. Build one with Triplets.ToCSR.
// The zero value is a valid 0×0 matrix.
type CSR struct {
	r, c   int
	rowPtr []int
	colIdx []int
	values []float64
}

var (
	_ Matrix       = (*CSR)(nil)
	_ fmt.Stringer = (*CSR)(nil)
)

// Rows returns the row count.
func (m *CSR) Rows() int { return m.r }

// Cols returns the column count.
func (m *CSR) Cols() int { return m.c }

// NNZ returns the number of stored entries (explicit zeros included).
func (m *CSR) NNZ() int { return len(m.values) }

// rowRange returns the [lo,hi) slice bounds of row i.
// An empty (zero value) CSR has no rowPtr; every row is then empty.
func (m *CSR) rowRange(i int) (int, int) {
	if len(m.rowPtr) == 0 {
		return 0, 0
	}
	return m.rowPtr[i], m.rowPtr[i+1]
}

// At returns the stored value at (i, j), or 0 when (i, j) is not stored.
//
// Errors:
//   - ErrOutOfRange when (i, j) is outside the shape.
//
// Complexity:
//   - Time O(log nnz(row i)), Space O(1).
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxCSRAt, i, j, ErrOutOfRange)
	}
	lo, hi := m.rowRange(i)
	cols := m.colIdx[lo:hi]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return m.values[lo+k], nil
	}

	return 0, nil
}

// Set is unsupported: a CSR is immutable once compressed.
// Always returns ErrMatrixNotImplemented (or ErrOutOfRange for bad indices).
func (m *CSR) Set(i, j int, _ float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("%s(%d,%d): %w", ctxCSRSet, i, j, ErrOutOfRange)
	}

	return fmt.Errorf("%s(%d,%d): %w", ctxCSRSet, i, j, ErrMatrixNotImplemented)
}

// Clone returns a deep copy.
// Complexity: O(rows + nnz).
func (m *CSR) Clone() Matrix {
	cp := &CSR{
		r:      m.r,
		c:      m.c,
		rowPtr: make([]int, len(m.rowPtr)),
		colIdx: make([]int, len(m.colIdx)),
		values: make([]float64, len(m.values)),
	}
	copy(cp.rowPtr, m.rowPtr)
	copy(cp.colIdx, m.colIdx)
	copy(cp.values, m.values)

	return cp
}

// Do visits every stored entry in row-major order; stops when f returns false.
// Complexity: O(nnz).
func (m *CSR) Do(f func(i, j int, v float64) bool) {
	var i, k, lo, hi int
	for i = 0; i < m.r; i++ {
		lo, hi = m.rowRange(i)
		for k = lo; k < hi; k++ {
			if !f(i, m.colIdx[k], m.values[k]) {
				return
			}
		}
	}
}

// Entries returns all stored entries in row-major order.
// Complexity: O(nnz).
func (m *CSR) Entries() []Entry {
	out := make([]Entry, 0, len(m.values))
	m.Do(func(i, j int, v float64) bool {
		out = append(out, Entry{Row: i, Col: j, Value: v})
		return true
	})

	return out
}

// RowEntries returns the stored entries of row i in ascending column order.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, rows).
func (m *CSR) RowEntries(i int) ([]Entry, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("%s(%d): %w", ctxCSRRow, i, ErrOutOfRange)
	}
	lo, hi := m.rowRange(i)
	out := make([]Entry, 0, hi-lo)
	for k := lo; k < hi; k++ {
		out = append(out, Entry{Row: i, Col: m.colIdx[k], Value: m.values[k]})
	}

	return out, nil
}

// MatVec computes y = m * x.
//
// Contract: len(x) == Cols().
// Determinism: each y[i] sums row entries in ascending column order.
//
// Errors:
//   - ErrNilMatrix for a nil x on a non-empty matrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(rows + nnz), Space O(rows) for y.
func (m *CSR) MatVec(x []float64) ([]float64, error) {
	if x == nil && m.c > 0 {
		return nil, fmt.Errorf("%s: %w", ctxCSRMatVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, fmt.Errorf("%s: len(x)=%d, cols=%d: %w", ctxCSRMatVec, len(x), m.c, ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	var i, k, lo, hi int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		lo, hi = m.rowRange(i)
		for k = lo; k < hi; k++ {
			acc += m.values[k] * x[m.colIdx[k]]
		}
		y[i] = acc
	}

	return y, nil
}

// MulDense computes Y = m * B for a dense-like right operand.
//
// Implementation:
//   - Stage 1: validate B (non-nil, B.Rows == m.Cols).
//   - Stage 2: fast path for *Dense reads the flat buffer; other Matrix
//     implementations go through At.
//   - Stage 3: for each stored (i,k,a) accumulate a*B[k,:] into Y[i,:].
//
// Behavior highlights:
//   - Zero-sized shapes are legal (0×k, N×0).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, errors from B.At.
//
// Complexity:
//   - Time O(nnz*k), Space O(rows*k).
func (m *CSR) MulDense(b Matrix) (*Dense, error) {
	if b == nil {
		return nil, fmt.Errorf("%s: %w", ctxCSRMulDense, ErrNilMatrix)
	}
	if b.Rows() != m.c {
		return nil, fmt.Errorf("%s: a.Cols=%d, b.Rows=%d: %w", ctxCSRMulDense, m.c, b.Rows(), ErrDimensionMismatch)
	}
	k := b.Cols()
	res, err := newDenseZeroOK(m.r, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCSRMulDense, err)
	}

	src, ok := b.(*Dense)
	if !ok {
		// Materialize the operand once; keeps the inner loop on a flat buffer.
		if src, err = toDense(b); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxCSRMulDense, err)
		}
	}

	var i, p, q, lo, hi, dst, row int
	var a float64
	for i = 0; i < m.r; i++ {
		dst = i * k
		lo, hi = m.rowRange(i)
		for p = lo; p < hi; p++ {
			a = m.values[p]
			row = m.colIdx[p] * k
			for q = 0; q < k; q++ {
				res.data[dst+q] += a * src.data[row+q]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new CSR.
// Complexity: O(rows + cols + nnz).
func (m *CSR) Transpose() *CSR {
	t := &CSR{
		r:      m.c,
		c:      m.r,
		rowPtr: make([]int, m.c+1),
		colIdx: make([]int, len(m.colIdx)),
		values: make([]float64, len(m.values)),
	}
	for _, j := range m.colIdx {
		t.rowPtr[j+1]++
	}
	for j := 0; j < m.c; j++ {
		t.rowPtr[j+1] += t.rowPtr[j]
	}
	next := make([]int, m.c)
	copy(next, t.rowPtr[:m.c])
	// Rows are visited in ascending order, so each transposed row receives
	// ascending column indices.
	m.Do(func(i, j int, v float64) bool {
		t.colIdx[next[j]] = i
		t.values[next[j]] = v
		next[j]++
		return true
	})

	return t
}

// ToDense expands the matrix into a new Dense.
// Complexity: O(rows*cols + nnz).
func (m *CSR) ToDense() (*Dense, error) {
	d, err := newDenseZeroOK(m.r, m.c)
	if err != nil {
		return nil, err
	}
	m.Do(func(i, j int, v float64) bool {
		d.data[i*m.c+j] = v
		return true
	})

	return d, nil
}

// Diagonal returns the main diagonal (length min(rows, cols)).
func (m *CSR) Diagonal() []float64 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i], _ = m.At(i, i)
	}

	return out
}

// String renders "CSR r×c nnz=N" followed by one "(i,j) v" line per entry.
func (m *CSR) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CSR %d×%d nnz=%d\n", m.r, m.c, len(m.values))
	m.Do(func(i, j int, v float64) bool {
		fmt.Fprintf(&b, "(%d,%d) %g\n", i, j, v)
		return true
	})

	return b.String()
}

// toDense copies any Matrix into a Dense through At.
func toDense(src Matrix) (*Dense, error) {
	d, err := newDenseZeroOK(src.Rows(), src.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}
