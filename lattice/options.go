// SPDX-License-Identifier: MIT

package lattice

import (
	"log/slog"

	"github.com/katalvlaran/tightbind/matrix"
)

// Option customizes Build.
// Option constructors panic on nil arguments; Build itself never panics.
type Option func(*buildConfig)

// buildConfig is the resolved set of Build options.
type buildConfig struct {
	logger     *slog.Logger
	impurity   Impurity
	matrixOpts []matrix.Option
}

// discardLogger is the default: builds are silent unless a logger is given.
var discardLogger = slog.New(slog.DiscardHandler)

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{logger: discardLogger}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithLogger routes the per-build debug record to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("lattice: WithLogger(nil)")
	}
	return func(c *buildConfig) {
		c.logger = l
	}
}

// WithImpurity attaches the impurity model used by Lattice.CouplingAt.
// Its parameters are validated by Build when it implements Validate.
func WithImpurity(m Impurity) Option {
	if m == nil {
		panic("lattice: WithImpurity(nil)")
	}
	return func(c *buildConfig) {
		c.impurity = m
	}
}

// WithMatrixOptions forwards numeric-policy options to the triplet
// accumulator (e.g. matrix.WithDropZeros to prune cancelled entries).
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(c *buildConfig) {
		c.matrixOpts = append(c.matrixOpts, opts...)
	}
}
