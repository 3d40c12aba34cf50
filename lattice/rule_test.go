package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tightbind/grid"
	"github.com/katalvlaran/tightbind/lattice"
)

func TestRule_CouplingsOrder(t *testing.T) {
	r := lattice.Rule{
		OnSite: 0.5,
		Hops: []lattice.Hop{
			{Offset: grid.C(1, 0, 0), Strength: -1},
			{Offset: grid.C(-1, 0, 0), Strength: -1},
			{Offset: grid.C(0, 0, 2), Strength: 3},
		},
	}
	got := r.Couplings(grid.C(4, 5, 6))
	require.Equal(t, []lattice.Coupling{
		{Strength: 0.5, To: grid.C(4, 5, 6)},
		{Strength: -1, To: grid.C(5, 5, 6)},
		{Strength: -1, To: grid.C(3, 5, 6)},
		{Strength: 3, To: grid.C(4, 5, 8)},
	}, got)

	// Empty rule still emits the on-site term.
	require.Equal(t, []lattice.Coupling{{To: grid.C(0, 0, 0)}}, lattice.Rule{}.Couplings(grid.C(0, 0, 0)))
}

func TestRule_Equal(t *testing.T) {
	a := lattice.NewRule(1, 2, grid.Axial(2))
	b := lattice.NewRule(1, 2, grid.Axial(2))
	require.True(t, a.Equal(b))

	b.Hops[3].Strength = 2.5
	require.False(t, a.Equal(b), "strength differs")
	require.False(t, a.Equal(lattice.NewRule(0, 2, grid.Axial(2))), "on-site differs")
	require.False(t, a.Equal(lattice.NewRule(1, 2, grid.Axial(1))), "hop count differs")

	// Same hops, different order.
	c := lattice.NewRule(1, 2, grid.Axial(2))
	c.Hops[0], c.Hops[1] = c.Hops[1], c.Hops[0]
	require.False(t, a.Equal(c))
}

func TestRule_Validate(t *testing.T) {
	cases := []struct {
		name string
		rule lattice.Rule
		ok   bool
	}{
		{"finite", lattice.NewRule(-2, 0, grid.BodyDiagonals()), true},
		{"nan on-site", lattice.Rule{OnSite: math.NaN()}, false},
		{"inf hop", lattice.NewRule(1, math.Inf(1), grid.Axial(1)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rule.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, lattice.ErrNonFiniteCoupling)
		})
	}
}

func TestRule_IsReciprocal(t *testing.T) {
	require.True(t, lattice.NewRule(1, 1, grid.Axial(3)).IsReciprocal())
	require.True(t, lattice.NewRule(1, 1, grid.BodyDiagonals()).IsReciprocal())
	require.True(t, lattice.Rule{OnSite: 3}.IsReciprocal())

	oneWay := lattice.Rule{Hops: []lattice.Hop{{Offset: grid.C(1, 0, 0), Strength: 1}}}
	require.False(t, oneWay.IsReciprocal())

	unequal := lattice.Rule{Hops: []lattice.Hop{
		{Offset: grid.C(1, 0, 0), Strength: 1},
		{Offset: grid.C(-1, 0, 0), Strength: 2},
	}}
	require.False(t, unequal.IsReciprocal())
}

func TestRuleFunc(t *testing.T) {
	var f lattice.CouplingRule = lattice.RuleFunc(func(c grid.Coord) []lattice.Coupling {
		return []lattice.Coupling{{Strength: float64(c.X), To: c}}
	})
	require.Equal(t, []lattice.Coupling{{Strength: 7, To: grid.C(7, 0, 0)}}, f.Couplings(grid.C(7, 0, 0)))
}
