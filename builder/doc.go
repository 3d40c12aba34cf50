// Package builder provides the tight-binding shape presets: declarative
// configurations that hand a box, a coupling rule, an inclusion predicate
// and an origin to lattice.Build.
//
// The package offers the following key components:
//
//   - Presets:
//     – Chain(L):    1D chain, box (L,1,1), ±X hopping J.
//     – Square(Lx):  2D, box (Lx,Ly,1), ±X Jx, ±Y Jy.
//     – Rhombus(L):  2D diamond |dx−dy| ≤ L, |dx+dy| ≤ L around a center.
//     – Cubic(Lx):   3D, box (Lx,Ly,Lz), ±X Jx, ±Y Jy, ±Z Jz.
//     – BCC(Lx):     same-parity sublattice with eight diagonal hops J.
//     – New(shape, L): the same presets selected by name (CLI, configs).
//   - Configuration primitives:
//     – Option:          a function that records one caller choice.
//     – presetConfig:    optional fields, nil meaning "not given".
//     – resolve:         the single default cascade (Ly←Lx, Lz←Lx, Jy←Jx,
//     Jz←Jx, J←1, ω←1, origin←0).
//   - Validation helpers:
//     – validateLength / validateLengths: length ≥ 1, else ErrInvalidDimension
//     carrying the preset and parameter name.
//   - Shared constants:
//     – MethodChain, MethodSquare, … tokens for error context.
//     – DefaultHopping, DefaultOnSite, MinLength.
//
// Guarantees:
//
//   - Fail fast: invalid lengths are reported before any build work, so no
//     partially built lattice is ever returned.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Every preset emits each edge from both endpoints, so the Hamiltonian
//     is symmetric.
//   - Determinism: identical parameters (and seed, with WithDisorder) give
//     bit-identical lattices.
//
// See individual function documentation for detailed contracts.
package builder
