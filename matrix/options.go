// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of
// sparse accumulation and structural checks. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves them.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (symmetry) and by DropZeros when compressing triplets.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultKeepZeros keeps explicitly accumulated zeros in the CSR pattern.
	// A coupling of strength 0 is still a declared coupling.
	DefaultKeepZeros = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	keepZeros      bool    // DefaultKeepZeros
}

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Affects newly created containers only; existing ones keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDropZeros removes entries whose accumulated |value| ≤ eps when
// triplets are compressed into CSR.
func WithDropZeros() Option {
	return func(o *Options) { o.keepZeros = false }
}

// WithKeepZeros keeps explicitly accumulated zeros in the CSR pattern (default).
func WithKeepZeros() Option {
	return func(o *Options) { o.keepZeros = true }
}

// NewOptions resolves setters on top of the defaults. Exposed for callers
// that want to inspect the effective policy.
func NewOptions(user ...Option) Options { return gatherOptions(user...) }

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-only ingestion is enforced.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// KeepZeros reports whether explicit zeros survive compression.
func (o Options) KeepZeros() bool { return o.keepZeros }

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from the documented defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		keepZeros:      DefaultKeepZeros,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
