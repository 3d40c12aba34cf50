// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - Symmetry of a CSR runs in O(nnz log nnz); the generic path scans the
//    upper triangle in O(n²).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → content).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare otherwise. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is accepted only when n == 0.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil && n > 0 {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSymmetric checks that m is square and |m[i,j] - m[j,i]| ≤ tol.
//
// Implementation:
//   - Stage 1: NotNil → Square → finite tolerance.
//   - Stage 2: *CSR walks its stored entries and looks up the mirrored
//     entry; other matrices scan the strict upper triangle.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (tolerance), ErrAsymmetry.
//
// Complexity:
//   - CSR: O(nnz log nnz(row)); generic: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	if s, ok := m.(*CSR); ok {
		var bad error
		s.Do(func(i, j int, v float64) bool {
			// Both triangles are visited so that an entry with no stored
			// mirror is caught from either side.
			if j == i {
				return true
			}
			w, _ := s.At(j, i)
			if math.Abs(v-w) > tol {
				bad = fmt.Errorf("ValidateSymmetric: (%d,%d)=%g vs (%d,%d)=%g: %w", i, j, v, j, i, w, ErrAsymmetry)
				return false
			}
			return true
		})
		return bad
	}

	n := m.Rows()
	var i, j int
	var aij, aji float64
	var err error
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(aij-aji) > tol {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%g vs (%d,%d)=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}

	return nil
}

// IsSymmetric is the boolean form of ValidateSymmetric.
func IsSymmetric(m Matrix, tol float64) bool {
	return ValidateSymmetric(m, tol) == nil
}
