// File: builder_impl_test.go
// Package builder_test contains functional tests for all shape presets,
// verifying site counts, index bijection, symmetry, linearity and
// deterministic rebuilds.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tightbind/builder"
	"github.com/katalvlaran/tightbind/grid"
	"github.com/katalvlaran/tightbind/lattice"
	"github.com/katalvlaran/tightbind/matrix"
)

// presetCase describes one preset invocation and its independent oracle.
type presetCase struct {
	name    string
	make    func() (*lattice.Lattice, error)
	box     grid.Box
	origin  grid.Coord
	include grid.Predicate
	dim     int
}

func presetCases() []presetCase {
	return []presetCase{
		{
			name: "Chain(5)",
			make: func() (*lattice.Lattice, error) { return builder.Chain(5) },
			box:  grid.Box{Lx: 5, Ly: 1, Lz: 1}, dim: 1,
		},
		{
			name: "Square(3,Ly=4)",
			make: func() (*lattice.Lattice, error) { return builder.Square(3, builder.WithLengthY(4)) },
			box:  grid.Box{Lx: 3, Ly: 4, Lz: 1}, dim: 2,
		},
		{
			name: "Rhombus(2)",
			make: func() (*lattice.Lattice, error) { return builder.Rhombus(2, builder.WithHoppingY(0.5)) },
			box:  grid.Box{Lx: 5, Ly: 5, Lz: 1}, origin: grid.C(-2, -2, 0),
			include: grid.Rhombus(grid.C(0, 0, 0), 2), dim: 2,
		},
		{
			name: "Cubic(2,3,4)",
			make: func() (*lattice.Lattice, error) {
				return builder.Cubic(2, builder.WithLengths(3, 4), builder.WithHoppingZ(-0.3), builder.WithOnSite(0))
			},
			box: grid.Box{Lx: 2, Ly: 3, Lz: 4}, dim: 3,
		},
		{
			name: "BCC(4)",
			make: func() (*lattice.Lattice, error) { return builder.BCC(4, builder.WithHopping(-1)) },
			box:  grid.Box{Lx: 4, Ly: 4, Lz: 4}, include: grid.SameParity, dim: 3,
		},
		{
			name: "BCC(3) odd origin",
			make: func() (*lattice.Lattice, error) { return builder.BCC(3, builder.WithOrigin(grid.C(1, 0, 0))) },
			box:  grid.Box{Lx: 3, Ly: 3, Lz: 3}, origin: grid.C(1, 0, 0), include: grid.SameParity, dim: 3,
		},
	}
}

// expectedSites enumerates the box independently of the lattice package.
func expectedSites(tc presetCase) []grid.Coord {
	var out []grid.Coord
	for x := 0; x < tc.box.Lx; x++ {
		for y := 0; y < tc.box.Ly; y++ {
			for z := 0; z < tc.box.Lz; z++ {
				c := grid.C(x, y, z).Add(tc.origin)
				if tc.include == nil || tc.include(c) {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

// TestPresets_Properties checks the structural properties shared by every preset.
func TestPresets_Properties(t *testing.T) {
	t.Parallel()

	for _, tc := range presetCases() {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l, err := tc.make()
			require.NoError(t, err)

			// Site count and scan-order mapping.
			want := expectedSites(tc)
			require.Equal(t, len(want), l.Size())
			require.Equal(t, want, l.Sites())
			if tc.include == nil {
				require.Equal(t, tc.box.Volume(), l.Size())
			}
			require.Equal(t, tc.dim, l.Dimension())

			// Bijection between sites and [0, N).
			seen := make(map[grid.Coord]bool, l.Size())
			for i := 0; i < l.Size(); i++ {
				c, err := l.Site(i)
				require.NoError(t, err)
				require.False(t, seen[c], "coordinate %s indexed twice", c)
				seen[c] = true
				j, ok := l.Index(c)
				require.True(t, ok)
				require.Equal(t, i, j)
			}

			// Reciprocal rules give a symmetric matrix.
			h := l.Hamiltonian()
			require.Equal(t, l.Size(), h.Rows())
			require.NoError(t, matrix.ValidateSymmetric(h, 1e-12))

			// Linearity of Apply.
			rng := rand.New(rand.NewSource(11))
			n := l.Size()
			v1, v2 := make([]float64, n), make([]float64, n)
			for i := range v1 {
				v1[i], v2[i] = rng.NormFloat64(), rng.NormFloat64()
			}
			a, b := 0.8, -2.5
			mix, err := matrix.AXPBY(a, v1, b, v2)
			require.NoError(t, err)
			lhs, err := l.Apply(mix)
			require.NoError(t, err)
			y1, err := l.Apply(v1)
			require.NoError(t, err)
			y2, err := l.Apply(v2)
			require.NoError(t, err)
			rhs, err := matrix.AXPBY(a, y1, b, y2)
			require.NoError(t, err)
			require.True(t, floats.EqualApprox(lhs, rhs, 1e-10))

			// Idempotent rebuild: bit-identical indices and entries.
			again, err := tc.make()
			require.NoError(t, err)
			require.Equal(t, l.Sites(), again.Sites())
			require.Equal(t, h.Entries(), again.Hamiltonian().Entries())
		})
	}
}

// TestChain_L3 checks the open-boundary chain of length 3.
func TestChain_L3(t *testing.T) {
	t.Parallel()

	l, err := builder.Chain(3)
	require.NoError(t, err)
	d, err := l.Hamiltonian().ToDense()
	require.NoError(t, err)
	want, err := matrix.NewDenseFromRows([][]float64{
		{1, 1, 0},
		{1, 1, 1},
		{0, 1, 1},
	})
	require.NoError(t, err)
	ok, err := matrix.AllClose(d, want, 0, 0)
	require.NoError(t, err)
	require.True(t, ok, "got\n%s", d)

	// No wraparound entries are stored.
	for _, e := range l.Hamiltonian().Entries() {
		require.NotEqual(t, 2, abs(e.Row-e.Col))
	}
}

// TestRhombus_L1 checks the 5-site rhombus and its scan-order mapping.
func TestRhombus_L1(t *testing.T) {
	t.Parallel()

	l, err := builder.Rhombus(1)
	require.NoError(t, err)
	require.Equal(t, 5, l.Size())
	require.Equal(t, []grid.Coord{
		grid.C(-1, 0, 0),
		grid.C(0, -1, 0),
		grid.C(0, 0, 0),
		grid.C(0, 1, 0),
		grid.C(1, 0, 0),
	}, l.Sites())

	// The center couples to the four tips; tips do not couple to each other.
	center, _ := l.Index(grid.C(0, 0, 0))
	row, err := l.Hamiltonian().RowEntries(center)
	require.NoError(t, err)
	require.Len(t, row, 5)
	tip, _ := l.Index(grid.C(-1, 0, 0))
	row, err = l.Hamiltonian().RowEntries(tip)
	require.NoError(t, err)
	require.Len(t, row, 2)

	// A custom center shifts every site.
	moved, err := builder.Rhombus(1, builder.WithOrigin(grid.C(5, 5, 2)))
	require.NoError(t, err)
	for i, c := range l.Sites() {
		got, err := moved.Site(i)
		require.NoError(t, err)
		require.Equal(t, c.Add(grid.C(5, 5, 2)), got)
	}
	require.Equal(t, l.Hamiltonian().Entries(), moved.Hamiltonian().Entries())
}

// TestBCC_Parity2 checks the 2×2×2 box: only (0,0,0) and (1,1,1) survive.
func TestBCC_Parity2(t *testing.T) {
	t.Parallel()

	l, err := builder.BCC(2, builder.WithHopping(0.7))
	require.NoError(t, err)
	require.Equal(t, []grid.Coord{grid.C(0, 0, 0), grid.C(1, 1, 1)}, l.Sites())
	for _, c := range []grid.Coord{grid.C(1, 0, 0), grid.C(0, 1, 1), grid.C(1, 1, 0)} {
		_, ok := l.Index(c)
		require.False(t, ok, "%s must be excluded", c)
	}
	require.Equal(t, []matrix.Entry{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 1, Value: 0.7},
		{Row: 1, Col: 0, Value: 0.7},
		{Row: 1, Col: 1, Value: 1},
	}, l.Hamiltonian().Entries())
}

// TestDefaults_Propagation checks the secondary-parameter cascade.
func TestDefaults_Propagation(t *testing.T) {
	t.Parallel()

	at := func(t *testing.T, l *lattice.Lattice, a, b grid.Coord) float64 {
		t.Helper()
		i, ok := l.Index(a)
		require.True(t, ok)
		j, ok := l.Index(b)
		require.True(t, ok)
		v, err := l.Hamiltonian().At(i, j)
		require.NoError(t, err)
		return v
	}
	o, x, y, z := grid.C(0, 0, 0), grid.C(1, 0, 0), grid.C(0, 1, 0), grid.C(0, 0, 1)

	// Everything defaulted: J=1, ω=1, Ly=Lz=Lx.
	l, err := builder.Cubic(2)
	require.NoError(t, err)
	require.Equal(t, 8, l.Size())
	require.Equal(t, 1.0, at(t, l, o, o))
	require.Equal(t, 1.0, at(t, l, o, x))
	require.Equal(t, 1.0, at(t, l, o, y))
	require.Equal(t, 1.0, at(t, l, o, z))

	// Jy and Jz follow Jx; an explicit Jy overrides only Y.
	l, err = builder.Cubic(2, builder.WithHopping(-2), builder.WithHoppingY(0.25), builder.WithOnSite(3))
	require.NoError(t, err)
	require.Equal(t, 3.0, at(t, l, o, o))
	require.Equal(t, -2.0, at(t, l, o, x))
	require.Equal(t, 0.25, at(t, l, o, y))
	require.Equal(t, -2.0, at(t, l, o, z))

	// Option order does not matter for the cascade.
	l, err = builder.Cubic(2, builder.WithHoppingY(0.25), builder.WithHopping(-2))
	require.NoError(t, err)
	require.Equal(t, 0.25, at(t, l, o, y))
	require.Equal(t, -2.0, at(t, l, o, z))

	// Square: Ly defaults to Lx, WithLengthZ is irrelevant.
	l, err = builder.Square(4, builder.WithLengthZ(9))
	require.NoError(t, err)
	require.Equal(t, 16, l.Size())
}

// TestPresets_InvalidDimension checks fail-fast errors naming the parameter.
func TestPresets_InvalidDimension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		make func() (*lattice.Lattice, error)
		msg  string
	}{
		{"chain zero", func() (*lattice.Lattice, error) { return builder.Chain(0) }, "Chain: L=0: builder: invalid dimension"},
		{"square ly", func() (*lattice.Lattice, error) { return builder.Square(2, builder.WithLengthY(0)) }, "Square: Ly=0: builder: invalid dimension"},
		{"square lx first", func() (*lattice.Lattice, error) { return builder.Square(-1, builder.WithLengthY(0)) }, "Square: Lx=-1: builder: invalid dimension"},
		{"rhombus", func() (*lattice.Lattice, error) { return builder.Rhombus(0) }, "Rhombus: L=0: builder: invalid dimension"},
		{"cubic lz", func() (*lattice.Lattice, error) { return builder.Cubic(2, builder.WithLengths(2, -1)) }, "Cubic: Lz=-1: builder: invalid dimension"},
		{"bcc lx", func() (*lattice.Lattice, error) { return builder.BCC(-3) }, "BCC: Lx=-3: builder: invalid dimension"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			l, err := tc.make()
			require.Nil(t, l)
			require.ErrorIs(t, err, builder.ErrInvalidDimension)
			require.EqualError(t, err, tc.msg)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	require.Equal(t, []builder.Shape{
		builder.ShapeChain, builder.ShapeSquare, builder.ShapeRhombus, builder.ShapeCubic, builder.ShapeBCC,
	}, builder.Shapes())
	for _, s := range builder.Shapes() {
		require.NotEmpty(t, builder.Describe(s))
	}
	require.Empty(t, builder.Describe("hexagonal"))

	byName, err := builder.New(builder.ShapeSquare, 3, builder.WithHopping(2))
	require.NoError(t, err)
	direct, err := builder.Square(3, builder.WithHopping(2))
	require.NoError(t, err)
	require.Equal(t, direct.Hamiltonian().Entries(), byName.Hamiltonian().Entries())
	require.Equal(t, builder.MethodSquare, byName.Name())

	_, err = builder.New("hexagonal", 3)
	require.ErrorIs(t, err, builder.ErrUnknownShape)
}

func TestPresets_Impurity(t *testing.T) {
	t.Parallel()

	l, err := builder.Square(3)
	require.NoError(t, err)
	_, err = l.CouplingAt(grid.Position(grid.C(1, 1, 0)))
	require.ErrorIs(t, err, lattice.ErrUnsupportedQuery)

	l, err = builder.Square(3, builder.WithImpurity(lattice.Radius{G: 2, R: 1}))
	require.NoError(t, err)
	g, err := l.CouplingAt(grid.Position(grid.C(1, 1, 0)))
	require.NoError(t, err)
	// Center plus its four neighbors.
	require.Equal(t, 10.0, floats.Sum(g))

	_, err = builder.Square(3, builder.WithImpurity(lattice.Radius{G: 2, R: -1}))
	require.ErrorIs(t, err, lattice.ErrInvalidImpurity)
}

func TestPresets_InclusionAndZeros(t *testing.T) {
	t.Parallel()

	noMiddle := func(c grid.Coord) bool { return c.X != 1 }
	l, err := builder.Square(3, builder.WithInclusion(noMiddle))
	require.NoError(t, err)
	require.Equal(t, 6, l.Size())
	require.NoError(t, matrix.ValidateSymmetric(l.Hamiltonian(), 0))

	// Preset predicate and user predicate are combined.
	r, err := builder.Rhombus(1, builder.WithInclusion(func(c grid.Coord) bool { return c.Y >= 0 }))
	require.NoError(t, err)
	require.Equal(t, []grid.Coord{grid.C(-1, 0, 0), grid.C(0, 0, 0), grid.C(0, 1, 0), grid.C(1, 0, 0)}, r.Sites())

	kept, err := builder.Square(2, builder.WithOnSite(0))
	require.NoError(t, err)
	require.Equal(t, 12, kept.Hamiltonian().NNZ())
	pruned, err := builder.Square(2, builder.WithOnSite(0), builder.WithDropZeros())
	require.NoError(t, err)
	require.Equal(t, 8, pruned.Hamiltonian().NNZ())
}

func TestPresets_Disorder(t *testing.T) {
	t.Parallel()

	_, err := builder.Chain(4, builder.WithDisorder(1))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	a, err := builder.Cubic(3, builder.WithDisorder(0.5), builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.Cubic(3, builder.WithDisorder(0.5), builder.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a.Hamiltonian().Entries(), b.Hamiltonian().Entries())
	require.NoError(t, matrix.ValidateSymmetric(a.Hamiltonian(), 0))

	diag := a.Hamiltonian().Diagonal()
	distinct := make(map[float64]bool)
	for _, d := range diag {
		require.InDelta(t, builder.DefaultOnSite, d, 0.25)
		distinct[d] = true
	}
	require.Greater(t, len(distinct), 1)

	// Zero width is the clean lattice; no RNG needed.
	clean, err := builder.Cubic(3, builder.WithDisorder(0))
	require.NoError(t, err)
	for _, d := range clean.Hamiltonian().Diagonal() {
		require.Equal(t, builder.DefaultOnSite, d)
	}
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	require.Panics(t, func() { builder.WithHopping(nan) })
	require.Panics(t, func() { builder.WithHoppingY(nan) })
	require.Panics(t, func() { builder.WithHoppingZ(nan) })
	require.Panics(t, func() { builder.WithOnSite(nan) })
	require.Panics(t, func() { builder.WithInclusion(nil) })
	require.Panics(t, func() { builder.WithImpurity(nil) })
	require.Panics(t, func() { builder.WithLogger(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithDisorder(-1) })
	require.NotPanics(t, func() { builder.WithLengths(0, -1) })
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func BenchmarkBCC(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := builder.BCC(16); err != nil {
			b.Fatal(err)
		}
	}
}
