// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tightbind/grid"
)

const (
	ctxRuleValidate = "Rule.Validate"
)

// Coupling is one term emitted by a CouplingRule: Strength added to the
// matrix entry (site, To).
type Coupling struct {
	Strength float64
	To       grid.Coord
}

// CouplingRule enumerates the couplings of the site at c, including the
// on-site term (To == c). Implementations must be pure.
type CouplingRule interface {
	Couplings(c grid.Coord) []Coupling
}

// RuleFunc adapts a plain function to CouplingRule, for rules whose terms
// depend on the coordinate (disorder, gradients, ...).
type RuleFunc func(c grid.Coord) []Coupling

// Couplings calls f(c).
func (f RuleFunc) Couplings(c grid.Coord) []Coupling { return f(c) }

// Hop is a translation-invariant coupling to the site at c+Offset.
type Hop struct {
	Offset   grid.Coord
	Strength float64
}

// Rule is a translation-invariant coupling rule: every site carries the
// same on-site energy and the same list of hops.
// Rules are plain values and can be compared with Equal.
type Rule struct {
	OnSite float64
	Hops   []Hop
}

var _ CouplingRule = Rule{}

// Couplings returns the on-site term first, then one term per hop in
// declaration order.
// Complexity: O(len(Hops)).
func (r Rule) Couplings(c grid.Coord) []Coupling {
	out := make([]Coupling, 0, len(r.Hops)+1)
	out = append(out, Coupling{Strength: r.OnSite, To: c})
	for _, h := range r.Hops {
		out = append(out, Coupling{Strength: h.Strength, To: c.Add(h.Offset)})
	}

	return out
}

// Equal reports whether r and o declare the same on-site energy and the
// same hops in the same order. Strengths are compared exactly.
func (r Rule) Equal(o Rule) bool {
	if r.OnSite != o.OnSite || len(r.Hops) != len(o.Hops) {
		return false
	}
	for i := range r.Hops {
		if r.Hops[i] != o.Hops[i] {
			return false
		}
	}

	return true
}

// Validate rejects NaN and ±Inf strengths.
func (r Rule) Validate() error {
	if !isFinite(r.OnSite) {
		return fmt.Errorf("%s: on-site %v: %w", ctxRuleValidate, r.OnSite, ErrNonFiniteCoupling)
	}
	for i, h := range r.Hops {
		if !isFinite(h.Strength) {
			return fmt.Errorf("%s: hop %d %s: %v: %w", ctxRuleValidate, i, h.Offset, h.Strength, ErrNonFiniteCoupling)
		}
	}

	return nil
}

// IsReciprocal reports whether every hop has a mirror hop (negated offset,
// equal strength). A reciprocal Rule always yields a symmetric matrix.
// Complexity: O(len(Hops)²).
func (r Rule) IsReciprocal() bool {
	for _, h := range r.Hops {
		found := false
		for _, m := range r.Hops {
			if m.Offset == h.Offset.Neg() && m.Strength == h.Strength {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// NewRule builds a Rule that couples every offset with the same strength.
func NewRule(onSite, strength float64, offsets []grid.Coord) Rule {
	hops := make([]Hop, len(offsets))
	for i, off := range offsets {
		hops[i] = Hop{Offset: off, Strength: strength}
	}

	return Rule{OnSite: onSite, Hops: hops}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
