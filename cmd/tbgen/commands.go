// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tightbind/builder"
	"github.com/katalvlaran/tightbind/lattice"
	"github.com/katalvlaran/tightbind/matrix"
)

// symmetryTol is the tolerance used for the symmetry line of the summary.
const symmetryTol = 1e-12

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

type buildFlags struct {
	config string
	output string
	probe  string
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "tbgen",
		Short: "Generate tight-binding lattice Hamiltonians",
		Long: `tbgen builds the Hamiltonian of a tight-binding lattice described by a
YAML file and writes it in Matrix Market coordinate format.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newBuildCmd(&verbose), newPresetsCmd())

	return rootCmd
}

func newBuildCmd(verbose *bool) *cobra.Command {
	var f buildFlags

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a lattice Hamiltonian from a YAML config",
		Long: `Build reads the lattice config, builds the Hamiltonian and writes it as a
Matrix Market file. With --probe, the impurity couplings to the given point are
printed as "index<TAB>site<TAB>value" lines for every non-zero coupling.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), *verbose)
			return runBuild(cmd.OutOrStdout(), logger, f)
		},
	}
	buildCmd.Flags().StringVarP(&f.config, "config", "c", "", "Path to the lattice YAML config")
	buildCmd.Flags().StringVarP(&f.output, "output", "o", stdoutPath, "Matrix Market output path, - for stdout")
	buildCmd.Flags().StringVar(&f.probe, "probe", "", "Impurity position as x,y,z")
	_ = buildCmd.MarkFlagRequired("config")

	return buildCmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available lattice shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range builder.Shapes() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", s, builder.Describe(s)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// newLogger returns a text logger on w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runBuild(stdout io.Writer, logger *slog.Logger, f buildFlags) error {
	cfg, err := LoadConfig(f.config)
	if err != nil {
		return err
	}

	opts := append(cfg.Options(), builder.WithLogger(logger))
	l, err := builder.New(builder.Shape(cfg.Shape), cfg.Lengths[0], opts...)
	if err != nil {
		return err
	}

	h := l.Hamiltonian()
	logger.Info("lattice built",
		"shape", cfg.Shape,
		"sites", l.Size(),
		"nnz", h.NNZ(),
		"symmetric", matrix.IsSymmetric(h, symmetryTol),
		"components", len(l.Components()),
	)

	if err = writeHamiltonian(stdout, f.output, l); err != nil {
		return err
	}
	if f.probe == "" {
		return nil
	}

	return writeProbe(stdout, f.probe, l)
}

// writeHamiltonian writes the Matrix Market file to path, or to stdout
// when path is "-".
func writeHamiltonian(stdout io.Writer, path string, l *lattice.Lattice) (err error) {
	comment := fmt.Sprintf("%s lattice, box %s, origin %s, %d sites", l.Name(), l.Box(), l.Origin(), l.Size())
	if path == stdoutPath {
		return matrix.WriteMatrixMarket(stdout, l.Hamiltonian(), comment)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return matrix.WriteMatrixMarket(out, l.Hamiltonian(), comment)
}

// writeProbe prints the non-zero impurity couplings to the probe point.
func writeProbe(w io.Writer, probe string, l *lattice.Lattice) error {
	p, err := parseProbe(probe)
	if err != nil {
		return err
	}
	g, err := l.CouplingAt(p)
	if err != nil {
		return err
	}
	sites := l.Sites()
	for i, v := range g {
		if v == 0 {
			continue
		}
		if _, err = fmt.Fprintf(w, "%d\t%s\t%g\n", i, sites[i], v); err != nil {
			return err
		}
	}

	return nil
}
