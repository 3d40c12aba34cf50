// SPDX-License-Identifier: MIT

package lattice

import "errors"

// Sentinel errors for the lattice package. Callers branch with errors.Is;
// detection sites wrap them with method context.
var (
	// ErrNilRule indicates a Geometry without a CouplingRule.
	ErrNilRule = errors.New("lattice: coupling rule is nil")

	// ErrNonFiniteCoupling indicates a NaN or ±Inf strength in a Rule.
	ErrNonFiniteCoupling = errors.New("lattice: coupling strength must be finite")

	// ErrInvalidImpurity indicates impurity model parameters with no physical meaning.
	ErrInvalidImpurity = errors.New("lattice: invalid impurity parameters")

	// ErrInvalidProbe indicates a probe position with a non-finite component.
	ErrInvalidProbe = errors.New("lattice: probe position must be finite")

	// ErrUnsupportedQuery indicates CouplingAt on a lattice without an impurity model.
	// It is distinct from an all-zero result: "not defined" versus "no coupling".
	ErrUnsupportedQuery = errors.New("lattice: impurity coupling is not defined for this lattice")

	// ErrSiteOutOfRange indicates a site index outside [0, N).
	ErrSiteOutOfRange = errors.New("lattice: site index out of range")
)
