// Package tightbind builds tight-binding Hamiltonians on finite lattices:
// a set of integer sites, a coupling rule and, optionally, an impurity probe,
// turned into a sparse symmetric matrix ready for numerical work.
//
// 🚀 What is tightbind?
//
//	A small, deterministic library that brings together:
//		• Integer coordinates, boxes and inclusion predicates (grid)
//		• Triplet accumulation and immutable CSR matrices (matrix)
//		• The two-pass lattice build and impurity couplings (lattice)
//		• Ready-made shapes: chain, square, rhombus, cubic, BCC (builder)
//		• A YAML-driven CLI writing Matrix Market files (cmd/tbgen)
//
// ✨ Why choose tightbind?
//
//   - Deterministic: same parameters give bit-identical matrices
//   - Open boundaries: neighbors outside the site set are simply dropped
//   - Interoperable: gonum views and Matrix Market export
//   - Safe to share: a built lattice is immutable and goroutine-safe
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/     Coord, Box, offsets, predicates, real-space positions
//	matrix/   Dense, Triplets, CSR, validators, gonum and Matrix Market glue
//	lattice/  Indexer, coupling rules, impurity models, Build and Lattice
//	builder/  shape presets, functional options, the default cascade
//
// Quick ASCII example, the rhombus of half-width 1:
//
//	        (0,1)
//	          │
//	(-1,0)─(0,0)─(1,0)
//	          │
//	        (0,-1)
//
// gives five sites and a 5×5 Hamiltonian with ω on the diagonal and J on
// every drawn bond.
//
//	go get github.com/katalvlaran/tightbind
package tightbind
