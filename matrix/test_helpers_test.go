// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for sparse/dense kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tightbind/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non fast-path) branches in code under test.
type hide struct{ matrix.Matrix }

// MustDense builds a Dense from rows or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return d
}

// MustCSR compresses the given entries into an r×c CSR or fails the test.
func MustCSR(t *testing.T, r, c int, entries ...matrix.Entry) *matrix.CSR {
	t.Helper()
	tr, err := matrix.NewTriplets(r, c)
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, tr.Add(e.Row, e.Col, e.Value))
	}
	m, err := tr.ToCSR()
	require.NoError(t, err)
	return m
}

// randomSparse builds a deterministic random r×c CSR with roughly density*r*c
// entries and its dense twin.
func randomSparse(t *testing.T, r, c int, density float64, seed int64) (*matrix.CSR, [][]float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	dense := make([][]float64, r)
	tr, err := matrix.NewTriplets(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		dense[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if rng.Float64() < density {
				v := rng.NormFloat64()
				dense[i][j] = v
				require.NoError(t, tr.Add(i, j, v))
			}
		}
	}
	m, err := tr.ToCSR()
	require.NoError(t, err)
	return m, dense
}

// randomVec returns a deterministic random vector.
func randomVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()
	}
	return out
}
