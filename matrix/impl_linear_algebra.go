// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix-vector and matrix-matrix products, transpose and approximate
// equality. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Notes:
//   - *CSR and *Dense operands take fast paths; any other Matrix falls back
//     to bounds-checked At/Set loops with a fixed i→j order.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opAllClose  = "AllClose"
	opScale     = "Scale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-paths: *CSR (O(nnz)) and *Dense (one flat pass per row).
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c) generic, Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if s, ok := m.(*CSR); ok {
		y, err := s.MatVec(x)
		if err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
		return y, nil
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Mul computes the product a * b into a new Dense.
//
// Contract: a, b non-nil; a.Cols() == b.Rows().
// Fast-path: a *CSR delegates to CSR.MulDense.
// Complexity: Time O(r*n*c) generic, O(nnz*c) for sparse a; Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	if s, ok := a.(*CSR); ok {
		res, err := s.MulDense(b)
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		return res, nil
	}

	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := newDenseZeroOK(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	// i-k-j order keeps the inner loop on contiguous rows of b and res.
	var i, k, j int
	var aik float64
	for i = 0; i < da.r; i++ {
		for k = 0; k < da.c; k++ {
			aik = da.data[i*da.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < db.c; j++ {
				res.data[i*res.c+j] += aik * db.data[k*db.c+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ. A *CSR stays sparse; anything else becomes a Dense.
// Complexity: O(nnz) sparse, O(r*c) otherwise.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if s, ok := m.(*CSR); ok {
		return s.Transpose(), nil
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := newDenseZeroOK(src.c, src.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < src.r; i++ {
		for j = 0; j < src.c; j++ {
			res.data[j*res.c+i] = src.data[i*src.c+j]
		}
	}

	return res, nil
}

// ScaleVec returns alpha*x as a new slice.
func ScaleVec(alpha float64, x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = alpha * v
	}
	return out
}

// AXPBY returns a*x + b*y as a new slice.
//
// Errors:
//   - ErrDimensionMismatch when len(x) != len(y).
func AXPBY(a float64, x []float64, b float64, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, matrixErrorf(opScale, ErrDimensionMismatch)
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = a*x[i] + b*y[i]
	}

	return out, nil
}

// AllClose reports whether |a[i,j] - b[i,j]| ≤ atol + rtol*|b[i,j]| for all
// entries. Negative tolerances are normalized to their absolute values.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond densification of sparse operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k := range da.data {
		if math.Abs(da.data[k]-db.data[k]) > atol+rtol*math.Abs(db.data[k]) {
			return false, nil
		}
	}

	return true, nil
}
