package rational_test

import (
	"testing"

	"github.com/katalvlaran/topogenome/rational"
	"github.com/stretchr/testify/require"
)

func TestQArithmetic(t *testing.T) {
	a := rational.FromFrac(1, 2)
	b := rational.FromFrac(1, 3)
	require.True(t, a.Add(b).Equal(rational.FromFrac(5, 6)))
	require.True(t, a.Sub(b).Equal(rational.FromFrac(1, 6)))
	require.True(t, a.Mul(b).Equal(rational.FromFrac(1, 6)))

	q, err := a.Div(b)
	require.NoError(t, err)
	require.True(t, q.Equal(rational.FromFrac(3, 2)))

	_, err = a.Div(rational.Zero())
	require.ErrorIs(t, err, rational.ErrSingular)
}

func TestQFracPart(t *testing.T) {
	a := rational.FromFrac(7, 2) // 3.5
	require.True(t, a.FracPart().Equal(rational.FromFrac(1, 2)))

	b := rational.FromFrac(-1, 2) // -0.5 -> frac 0.5
	require.True(t, b.FracPart().Equal(rational.FromFrac(1, 2)))
}

func TestMat3DetAndInverse(t *testing.T) {
	m := rational.Mat3FromCols(
		rational.Vec3{rational.FromInt(1), rational.FromInt(0), rational.FromInt(0)},
		rational.Vec3{rational.FromInt(0), rational.FromInt(1), rational.FromInt(0)},
		rational.Vec3{rational.FromInt(0), rational.FromInt(0), rational.FromInt(1)},
	)
	require.True(t, m.Det().Equal(rational.One()))

	inv, err := m.Inverse()
	require.NoError(t, err)
	want := rational.IdentityMat3()
	for i := 0; i < 3; i++ {
		require.True(t, inv.Row(i).Equal(want.Row(i)))
	}

	singular := rational.Mat3FromCols(
		rational.Vec3{rational.FromInt(1), rational.FromInt(0), rational.FromInt(0)},
		rational.Vec3{rational.FromInt(2), rational.FromInt(0), rational.FromInt(0)},
		rational.Vec3{rational.FromInt(0), rational.FromInt(0), rational.FromInt(1)},
	)
	_, err = singular.Inverse()
	require.ErrorIs(t, err, rational.ErrSingular)
}

func TestIMat3InverseUnimodular(t *testing.T) {
	m := rational.IMat3{{1, 1, 0}, {0, 1, 0}, {0, 0, 1}} // det == 1
	inv, err := m.Inverse()
	require.NoError(t, err)
	require.Equal(t, int64(1), m.Mul(inv)[0][0])
	require.Equal(t, rational.IdentityIMat3(), m.Mul(inv))

	nonUni := rational.IMat3{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}} // det == 2
	_, err = nonUni.Inverse()
	require.ErrorIs(t, err, rational.ErrNotUnimodular)
}

func TestIVec3Ordering(t *testing.T) {
	v := rational.IVec3{0, 1, 0}
	require.Equal(t, 2, v.ZeroCount())
	require.Equal(t, 1, v.LeadingNonzero())

	w := rational.IVec3{1, 0, 0}
	require.Equal(t, 1, w.Cmp(v))
}

func TestHermiteBasisSpansStandardLattice(t *testing.T) {
	vecs := []rational.IVec3{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}}
	m, err := rational.HermiteBasis(vecs)
	require.NoError(t, err)
	require.Equal(t, int64(1), m.Det().Int64())
}

func TestHermiteBasisRankDeficient(t *testing.T) {
	vecs := []rational.IVec3{{1, 0, 0}, {2, 0, 0}}
	_, err := rational.HermiteBasis(vecs)
	require.ErrorIs(t, err, rational.ErrSingular)
}

func TestWidthLimit(t *testing.T) {
	lim := rational.Limits{MaxBits: 8}
	small := rational.FromInt(100)
	require.NoError(t, small.CheckWidth(lim))

	big := rational.FromInt(1 << 30)
	require.ErrorIs(t, big.CheckWidth(lim), rational.ErrWidthExceeded)
}
