// Package grid provides the integer coordinate space shared by every lattice
// shape: 3D coordinates, rectangular boxes scanned in a fixed order,
// neighbor-offset tables and inclusion predicates.
//
// What:
//
//   - Coord is an (X, Y, Z) integer triple with component-wise arithmetic.
//     1D and 2D shapes live in the same space with trailing extents of 1.
//   - Box enumerates [0,Lx)×[0,Ly)×[0,Lz) in ascending (X, Y, Z) order:
//     X varies slowest, Z fastest.
//   - Axial and BodyDiagonals return precomputed neighbor offsets.
//   - Predicate selects which candidate coordinates are lattice sites
//     (All, SameParity, Rhombus, And).
//   - Position maps a coordinate onto a model3d.Coord3D point.
//
// Complexity:
//
//   - Box.Each: O(Lx·Ly·Lz), no allocations.
//   - Predicates: O(1) per coordinate.
//
// Errors:
//
//   - ErrNegativeExtent: NewBox received a negative extent.
package grid
