// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// Gonum wraps any Matrix so it can be handed to gonum routines
// (mat.Equal, mat.Formatted, mat.Dense.Mul, ...). FromGonum copies a gonum
// matrix back into a Dense.
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// gonumView adapts Matrix to gonum's mat.Matrix.
// gonum's contract panics on out-of-range access, so At does too.
type gonumView struct {
	m Matrix
}

var _ mat.Matrix = gonumView{}

// Gonum returns a read-only gonum view of m. The view shares storage with m.
// Complexity: O(1).
func Gonum(m Matrix) mat.Matrix {
	return gonumView{m: m}
}

func (g gonumView) Dims() (r, c int) { return g.m.Rows(), g.m.Cols() }

func (g gonumView) At(i, j int) float64 {
	v, err := g.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}
	return v
}

func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// FromGonum copies a gonum matrix into a new Dense.
// Zero-sized gonum matrices are not representable in gonum, so the result
// always has positive extents.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	r, c := src.Dims()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = d.Set(i, j, src.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
