// SPDX-License-Identifier: MIT
// Package: tightbind/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: build(preset, lx, opts). Resolves the config once,
//     asks the preset for its geometry, then delegates to lattice.Build.
//   - Presets are declarative: box, rule, predicate, origin. No preset
//     contains build logic of its own.
//   - Functional options resolve into an immutable resolvedConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical lattices.
//   - Safety: never panic; invalid lengths fail before any build work.

package builder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tightbind/lattice"
)

// Shape names a preset for New.
type Shape string

// Known shapes.
const (
	ShapeChain   Shape = "chain"
	ShapeSquare  Shape = "square"
	ShapeRhombus Shape = "rhombus"
	ShapeCubic   Shape = "cubic"
	ShapeBCC     Shape = "bcc"
)

// geometryFn validates the resolved lengths and describes the preset.
// Errors returned here already carry the preset name.
type geometryFn func(cfg resolvedConfig) (lattice.Geometry, error)

// preset binds a shape to its method tag, description and geometry.
type preset struct {
	method      string
	description string
	geometry    geometryFn
}

// presets is the registry used by New; the order of shapeOrder is the
// listing order.
var (
	presets = map[Shape]preset{
		ShapeChain:   {MethodChain, "1D chain (L,1,1), ±X hopping J", chainGeometry},
		ShapeSquare:  {MethodSquare, "2D square (Lx,Ly,1), ±X Jx, ±Y Jy", squareGeometry},
		ShapeRhombus: {MethodRhombus, "2D rhombus |dx-dy|≤L, |dx+dy|≤L around a center, ±X Jx, ±Y Jy", rhombusGeometry},
		ShapeCubic:   {MethodCubic, "3D cubic (Lx,Ly,Lz), ±X Jx, ±Y Jy, ±Z Jz", cubicGeometry},
		ShapeBCC:     {MethodBCC, "body-centered cubic (Lx,Ly,Lz), same-parity sites, 8 diagonal hops J", bccGeometry},
	}
	shapeOrder = []Shape{ShapeChain, ShapeSquare, ShapeRhombus, ShapeCubic, ShapeBCC}
)

// Shapes lists the known shapes in a fixed order.
func Shapes() []Shape {
	out := make([]Shape, len(shapeOrder))
	copy(out, shapeOrder)

	return out
}

// Describe returns a one-line description of s, or "" for unknown shapes.
func Describe(s Shape) string {
	return presets[s].description
}

// New builds the preset named s with primary length lx.
//
// Errors:
//   - ErrUnknownShape for an unregistered name; otherwise as the preset.
func New(s Shape, lx int, opts ...Option) (*lattice.Lattice, error) {
	p, ok := presets[s]
	if !ok {
		return nil, fmt.Errorf("%s(%q): %w", MethodNew, string(s), ErrUnknownShape)
	}

	return build(p, lx, opts)
}

// build is the single orchestrator behind every preset.
//
// Implementation:
//   - Stage 1: resolve options (single default cascade).
//   - Stage 2: preset geometry; lengths are validated here, before any work.
//   - Stage 3: optional disorder wrapping (needs an RNG).
//   - Stage 4: lattice.Build with logger/impurity/zero policy.
//
// Complexity:
//   - Dominated by lattice.Build: O(V·k + nnz·log nnz).
func build(p preset, lx int, opts []Option) (*lattice.Lattice, error) {
	cfg := newPresetConfig(opts...).resolve(lx)

	g, err := p.geometry(cfg)
	if err != nil {
		return nil, err
	}
	g.Name = p.method

	if cfg.disorder > 0 {
		if cfg.rng == nil {
			return nil, builderErrorf(p.method, ErrNeedRandSource)
		}
		if base, ok := g.Rule.(lattice.Rule); ok {
			g.Rule = disorderedRule(g, base, cfg.disorder, cfg.rng)
		}
	}

	if cfg.logger != nil {
		cfg.logger.Debug("preset resolved",
			slog.String("shape", p.method),
			slog.Int("lx", cfg.lx), slog.Int("ly", cfg.ly), slog.Int("lz", cfg.lz),
			slog.Float64("jx", cfg.jx), slog.Float64("jy", cfg.jy), slog.Float64("jz", cfg.jz),
			slog.Float64("onsite", cfg.onSite),
			slog.String("origin", cfg.origin.String()),
			slog.Float64("disorder", cfg.disorder),
		)
	}

	l, err := lattice.Build(g, cfg.latticeOptions()...)
	if err != nil {
		return nil, builderErrorf(p.method, err)
	}

	return l, nil
}
