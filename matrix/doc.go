// Package matrix offers the numeric containers behind lattice Hamiltonians.
//
// The matrix package provides:
//
//   - Matrix, a small bounds-checked interface shared by every container.
//   - Dense, a row-major matrix used for batches of vectors and for tests.
//   - Triplets, a coordinate-form (COO) accumulator that sums duplicate
//     entries, and CSR, the immutable compressed-row matrix it produces.
//   - Kernels (MatVec, Mul, Transpose, AllClose) with fast paths for
//     *Dense and *CSR operands.
//   - Validators and a numeric policy (finite-only ingestion, epsilon).
//   - Interop: Gonum exposes any Matrix as a gonum mat.Matrix, and
//     WriteMatrixMarket exports a CSR in Matrix Market coordinate format.
//
// CSR is read-only after construction; products never mutate their
// operands, so a CSR may be shared by concurrent readers.
package matrix
