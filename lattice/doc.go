// Package lattice compiles a lattice geometry into a sparse tight-binding
// Hamiltonian.
//
// What:
//
//   - CouplingRule enumerates, for one coordinate, the (strength, neighbor)
//     pairs it couples to. Rule is the value-object form: an on-site energy
//     plus a list of (offset, strength) hops.
//   - Indexer assigns each included coordinate a dense, stable index in
//     [0, N) and answers the reverse query.
//   - Build runs the two-pass compiler: pass 1 indexes every included
//     coordinate of the box in scan order; pass 2 evaluates the rule of
//     every site and accumulates couplings into COO triplets, dropping
//     neighbors that have no index (open boundary). The triplets are then
//     compressed into an immutable CSR.
//   - Lattice is the resulting operator: Hamiltonian, Apply, ApplyBatch and
//     CouplingAt for an external impurity probe.
//   - Contact, Radius and Exponential are ready-made impurity models.
//
// Why two passes:
//
//   - A rule may reference a neighbor that is later in scan order. Indexing
//     everything first makes coordinate→index independent of the order in
//     which neighbors are visited.
//
// Complexity:
//
//   - Build: O(V·k + nnz·log nnz), V = box volume, k = couplings per site.
//   - Apply: O(N + nnz); ApplyBatch: O(nnz·cols); CouplingAt: O(N).
//
// Options:
//
//   - WithLogger: structured debug record per build (default: discarded).
//   - WithImpurity: enables CouplingAt.
//   - WithMatrixOptions: numeric policy of the triplet accumulator.
//
// Errors:
//
//   - ErrNilRule: geometry without a coupling rule.
//   - ErrNonFiniteCoupling: NaN/±Inf strength in a Rule.
//   - ErrInvalidImpurity: impurity model with meaningless parameters.
//   - ErrInvalidProbe: CouplingAt with a non-finite position.
//   - ErrUnsupportedQuery: CouplingAt on a lattice with no impurity model.
//   - ErrSiteOutOfRange: reverse lookup outside [0, N).
//
// Concurrency:
//
//   - A built Lattice is never mutated; all its methods are safe for
//     concurrent use. Indexer values are not safe for concurrent Register.
package lattice
