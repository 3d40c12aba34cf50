// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix contract shared by Dense and CSR.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional array of float64 values.
//
// Complexity notes: Rows/Cols are O(1); At/Set are O(1) for Dense and
// O(log nnz(row)) for CSR; Clone is proportional to the stored entries.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Read-only implementations return ErrMatrixNotImplemented.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Entry is one stored element of a sparse matrix in coordinate form.
type Entry struct {
	Row, Col int
	Value    float64
}
