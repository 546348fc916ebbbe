package candidates_test

import (
	"testing"

	"github.com/katalvlaran/topogenome/candidates"
	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/partition"
	"github.com/katalvlaran/topogenome/rational"
	"github.com/katalvlaran/topogenome/symmetry"
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

func diaNet(t *testing.T) *netgraph.CrystalNet {
	t.Helper()
	g := netgraph.NewGraph(2)
	require.NoError(t, g.AddEdge(1, 2, rational.IVec3{0, 0, 0}))
	require.NoError(t, g.AddEdge(1, 2, rational.IVec3{1, 0, 0}))
	require.NoError(t, g.AddEdge(1, 2, rational.IVec3{0, 1, 0}))
	require.NoError(t, g.AddEdge(1, 2, rational.IVec3{0, 0, 1}))
	pos := []rational.Vec3{
		rational.ZeroVec3(),
		{rational.FromFrac(3, 4), rational.FromFrac(3, 4), rational.FromFrac(3, 4)},
	}
	return &netgraph.CrystalNet{Cell: rational.IdentityMat3(), Types: []string{"A", "B"}, Pos: pos, Graph: g}
}

func TestEnumeratePcuNeighbourOnlyPhaseNonEmpty(t *testing.T) {
	net := pcuNet(t)
	classes, classOf, _, err := partition.ByCoordinationSequence(net.Graph, nil)
	require.NoError(t, err)
	syms := symmetry.Find(net, classOf)

	cands := candidates.Enumerate(net, classes, classOf, syms)
	require.NotEmpty(t, cands)
	for _, c := range cands {
		require.Equal(t, 1, c.U)
		det := c.B.Det()
		require.NotZero(t, det.Sign())
	}
}

func TestEnumerateDiaDegreeFourUsesNeighbourPhase(t *testing.T) {
	net := diaNet(t)
	classes, classOf, _, err := partition.ByCoordinationSequence(net.Graph, nil)
	require.NoError(t, err)
	syms := symmetry.Find(net, classOf)

	cands := candidates.Enumerate(net, classes, classOf, syms)
	require.NotEmpty(t, cands)
}
