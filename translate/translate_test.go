package translate_test

import (
	"testing"

	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/rational"
	"github.com/katalvlaran/topogenome/translate"
	"github.com/stretchr/testify/require"
)

func pcuNet(t *testing.T) *netgraph.CrystalNet {
	t.Helper()
	g := netgraph.NewGraph(1)
	require.NoError(t, g.AddEdge(1, 1, rational.IVec3{1, 0, 0}))
	require.NoError(t, g.AddEdge(1, 1, rational.IVec3{0, 1, 0}))
	require.NoError(t, g.AddEdge(1, 1, rational.IVec3{0, 0, 1}))
	return &netgraph.CrystalNet{
		Cell:  rational.IdentityMat3(),
		Types: []string{"A"},
		Pos:   []rational.Vec3{rational.ZeroVec3()},
		Graph: g,
	}
}

// doubledPcuNet is primitive cubic doubled along x: two vertices per cell,
// the x-bond split into a short intra-cell bond and a long inter-cell one,
// y/z bonds left as self-loops on each vertex (spec §8 scenario 3).
func doubledPcuNet(t *testing.T) *netgraph.CrystalNet {
	t.Helper()
	g := netgraph.NewGraph(2)
	require.NoError(t, g.AddEdge(1, 2, rational.IVec3{0, 0, 0}))
	require.NoError(t, g.AddEdge(2, 1, rational.IVec3{1, 0, 0}))
	require.NoError(t, g.AddEdge(1, 1, rational.IVec3{0, 1, 0}))
	require.NoError(t, g.AddEdge(1, 1, rational.IVec3{0, 0, 1}))
	require.NoError(t, g.AddEdge(2, 2, rational.IVec3{0, 1, 0}))
	require.NoError(t, g.AddEdge(2, 2, rational.IVec3{0, 0, 1}))
	pos := []rational.Vec3{
		rational.ZeroVec3(),
		{rational.FromFrac(1, 2), rational.Zero(), rational.Zero()},
	}
	return &netgraph.CrystalNet{
		Cell:  rational.IdentityMat3(),
		Types: []string{"A", "A"},
		Pos:   pos,
		Graph: g,
	}
}

func TestPossibleSingleVertexEmpty(t *testing.T) {
	require.Empty(t, translate.Possible(pcuNet(t)))
}

func TestPossibleDoubledPcuFindsHalfTranslation(t *testing.T) {
	got := translate.Possible(doubledPcuNet(t))
	require.Len(t, got, 1)
	want := rational.Vec3{rational.FromFrac(1, 2), rational.Zero(), rational.Zero()}
	require.True(t, got[0].Equal(want))
}

func TestCheckValidDoubledPcuHalfTranslation(t *testing.T) {
	net := doubledPcuNet(t)
	t2 := rational.Vec3{rational.FromFrac(1, 2), rational.Zero(), rational.Zero()}
	perm, ok := translate.CheckValid(net, t2, nil)
	require.True(t, ok)
	require.Equal(t, []int{2, 1}, perm)
}

func TestCheckValidRejectsNonSymmetryTranslation(t *testing.T) {
	net := doubledPcuNet(t)
	bad := rational.Vec3{rational.FromFrac(1, 3), rational.Zero(), rational.Zero()}
	_, ok := translate.CheckValid(net, bad, nil)
	require.False(t, ok)
}

func TestMinimizeReducesDoubledPcuToOneVertex(t *testing.T) {
	net := doubledPcuNet(t)
	reduced, err := translate.Minimize(net, nil)
	require.NoError(t, err)
	require.Equal(t, 1, reduced.Graph.NV())
	require.Equal(t, 6, reduced.Graph.Degree(1))
}

func TestMinimizeNoOpOnPrimitivePcu(t *testing.T) {
	net := pcuNet(t)
	reduced, err := translate.Minimize(net, nil)
	require.NoError(t, err)
	require.Equal(t, 1, reduced.Graph.NV())
}
