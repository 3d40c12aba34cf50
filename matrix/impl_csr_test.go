package matrix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tightbind/matrix"
)

// CSRSuite exercises CSR accessors and kernels against dense references.
type CSRSuite struct {
	suite.Suite
	m     *matrix.CSR
	dense [][]float64
}

func (s *CSRSuite) SetupTest() {
	// [ 1 0 2 ]
	// [ 0 0 0 ]
	// [ 3 4 0 ]
	s.dense = [][]float64{{1, 0, 2}, {0, 0, 0}, {3, 4, 0}}
	s.m = MustCSR(s.T(), 3, 3,
		matrix.Entry{Row: 2, Col: 1, Value: 4},
		matrix.Entry{Row: 0, Col: 2, Value: 2},
		matrix.Entry{Row: 0, Col: 0, Value: 1},
		matrix.Entry{Row: 2, Col: 0, Value: 3},
	)
}

func (s *CSRSuite) TestAt() {
	for i := range s.dense {
		for j := range s.dense[i] {
			v, err := s.m.At(i, j)
			require.NoError(s.T(), err)
			require.Equal(s.T(), s.dense[i][j], v, "At(%d,%d)", i, j)
		}
	}
	_, err := s.m.At(3, 0)
	require.ErrorIs(s.T(), err, matrix.ErrOutOfRange)
	_, err = s.m.At(0, -1)
	require.ErrorIs(s.T(), err, matrix.ErrOutOfRange)
}

func (s *CSRSuite) TestImmutable() {
	require.ErrorIs(s.T(), s.m.Set(0, 0, 9), matrix.ErrMatrixNotImplemented)
	require.ErrorIs(s.T(), s.m.Set(9, 0, 9), matrix.ErrOutOfRange)
	v, _ := s.m.At(0, 0)
	require.Equal(s.T(), 1.0, v)
}

func (s *CSRSuite) TestCloneIndependent() {
	c := s.m.Clone().(*matrix.CSR)
	require.Equal(s.T(), s.m.Entries(), c.Entries())
	require.Equal(s.T(), s.m.String(), c.String())
}

func (s *CSRSuite) TestRowEntries() {
	row, err := s.m.RowEntries(2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []matrix.Entry{{Row: 2, Col: 0, Value: 3}, {Row: 2, Col: 1, Value: 4}}, row)

	row, err = s.m.RowEntries(1)
	require.NoError(s.T(), err)
	require.Empty(s.T(), row)

	_, err = s.m.RowEntries(3)
	require.ErrorIs(s.T(), err, matrix.ErrOutOfRange)
}

func (s *CSRSuite) TestMatVec() {
	y, err := s.m.MatVec([]float64{1, 2, 3})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{7, 0, 11}, y)

	_, err = s.m.MatVec([]float64{1, 2})
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)
	_, err = s.m.MatVec(nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
}

func (s *CSRSuite) TestMulDense() {
	b := MustDense(s.T(), [][]float64{{1, 0}, {0, 1}, {1, 1}})
	y, err := s.m.MulDense(b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "[3, 2]\n[0, 0]\n[3, 4]\n", y.String())

	// Generic operand path gives the same result.
	y2, err := s.m.MulDense(hide{b})
	require.NoError(s.T(), err)
	require.Equal(s.T(), y.String(), y2.String())

	_, err = s.m.MulDense(MustDense(s.T(), [][]float64{{1}, {2}}))
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)
	_, err = s.m.MulDense(nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
}

func (s *CSRSuite) TestTransposeAndDiagonal() {
	tr := s.m.Transpose()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := tr.At(j, i)
			require.NoError(s.T(), err)
			require.Equal(s.T(), s.dense[i][j], v)
		}
	}
	require.Equal(s.T(), s.m.Entries(), tr.Transpose().Entries())
	require.Equal(s.T(), []float64{1, 0, 0}, s.m.Diagonal())
}

func (s *CSRSuite) TestToDense() {
	d, err := s.m.ToDense()
	require.NoError(s.T(), err)
	ok, err := matrix.AllClose(d, MustDense(s.T(), s.dense), 0, 0)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
}

func (s *CSRSuite) TestString() {
	out := s.m.String()
	require.True(s.T(), strings.HasPrefix(out, "CSR 3×3 nnz=4\n"))
	require.Contains(s.T(), out, "(2,1) 4\n")
}

func TestCSRSuite(t *testing.T) {
	suite.Run(t, new(CSRSuite))
}

func TestCSR_ZeroValue(t *testing.T) {
	var m matrix.CSR
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.NNZ())
	y, err := m.MatVec(nil)
	require.NoError(t, err)
	require.Empty(t, y)
	require.Empty(t, m.Entries())
	require.Empty(t, m.Transpose().Entries())
}

// TestCSR_RandomAgainstDense compares sparse kernels with the generic dense path.
func TestCSR_RandomAgainstDense(t *testing.T) {
	m, rows := randomSparse(t, 17, 11, 0.3, 42)
	d := MustDense(t, rows)

	x := randomVec(11, 7)
	ys, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	yd, err := matrix.MatVec(hide{d}, x)
	require.NoError(t, err)
	require.InDeltaSlice(t, yd, ys, 1e-12)

	b, _ := randomSparse(t, 11, 4, 0.8, 9)
	bd, err := b.ToDense()
	require.NoError(t, err)
	ps, err := matrix.Mul(m, bd)
	require.NoError(t, err)
	pd, err := matrix.Mul(hide{d}, hide{bd})
	require.NoError(t, err)
	ok, err := matrix.AllClose(ps, pd, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	tt, err := matrix.Transpose(m)
	require.NoError(t, err)
	td, err := matrix.Transpose(hide{d})
	require.NoError(t, err)
	ok, err = matrix.AllClose(tt, td, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}
