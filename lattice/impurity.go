// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"github.com/unixpickle/model3d/model3d"

	"github.com/katalvlaran/tightbind/grid"
)

// Impurity defines the coupling between an external probe and one site.
// site is the absolute (origin-shifted) site position with unit spacing.
// Implementations must be pure; Lattice calls them concurrently.
type Impurity interface {
	Coupling(site, probe model3d.Coord3D) float64
}

// validator is implemented by rules and impurity models that can check
// their own parameters before a build.
type validator interface {
	Validate() error
}

// Contact couples the probe to the single site nearest to it with
// strength G. A probe exactly half-way between sites rounds away from zero.
type Contact struct {
	G float64
}

// Coupling returns G if site is the lattice point nearest to probe.
func (m Contact) Coupling(site, probe model3d.Coord3D) float64 {
	if grid.Nearest(site) == grid.Nearest(probe) {
		return m.G
	}
	return 0
}

// Validate rejects a non-finite G.
func (m Contact) Validate() error {
	if !isFinite(m.G) {
		return fmt.Errorf("Contact: G=%v: %w", m.G, ErrInvalidImpurity)
	}
	return nil
}

// Radius couples the probe with strength G to every site within
// Euclidean distance R (inclusive).
type Radius struct {
	G, R float64
}

// Coupling returns G when |site - probe| ≤ R.
func (m Radius) Coupling(site, probe model3d.Coord3D) float64 {
	if site.Dist(probe) <= m.R {
		return m.G
	}
	return 0
}

// Validate rejects a non-finite G and a negative or non-finite R.
func (m Radius) Validate() error {
	if !isFinite(m.G) {
		return fmt.Errorf("Radius: G=%v: %w", m.G, ErrInvalidImpurity)
	}
	if !isFinite(m.R) || m.R < 0 {
		return fmt.Errorf("Radius: R=%v: %w", m.R, ErrInvalidImpurity)
	}
	return nil
}

// Exponential couples the probe to every site with G·exp(-d/Xi), d being
// the site-probe distance.
type Exponential struct {
	G, Xi float64
}

// Coupling returns G·exp(-|site - probe|/Xi).
func (m Exponential) Coupling(site, probe model3d.Coord3D) float64 {
	return m.G * math.Exp(-site.Dist(probe)/m.Xi)
}

// Validate rejects a non-finite G and a non-positive or non-finite Xi.
func (m Exponential) Validate() error {
	if !isFinite(m.G) {
		return fmt.Errorf("Exponential: G=%v: %w", m.G, ErrInvalidImpurity)
	}
	if !isFinite(m.Xi) || m.Xi <= 0 {
		return fmt.Errorf("Exponential: Xi=%v: %w", m.Xi, ErrInvalidImpurity)
	}
	return nil
}
