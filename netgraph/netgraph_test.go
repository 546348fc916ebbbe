package netgraph_test

import (
	"testing"

	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/rational"
	"github.com/stretchr/testify/require"
)

// pcuGraph builds the primitive cubic net from spec §8 scenario 1: one
// vertex, edges 3 1 1 1 0 0 / 3 1 1 0 1 0 / 3 1 1 0 0 1.
func pcuGraph(t *testing.T) *netgraph.Graph {
	t.Helper()
	g := netgraph.NewGraph(1)
	require.NoError(t, g.AddEdge(1, 1, rational.IVec3{1, 0, 0}))
	require.NoError(t, g.AddEdge(1, 1, rational.IVec3{0, 1, 0}))
	require.NoError(t, g.AddEdge(1, 1, rational.IVec3{0, 0, 1}))
	return g
}

func TestPcuInvariants(t *testing.T) {
	g := pcuGraph(t)
	require.Equal(t, 6, g.Degree(1)) // 3 edges + 3 involutes
	require.True(t, g.HasEdge(1, 1, rational.IVec3{1, 0, 0}))
	require.True(t, g.HasEdge(1, 1, rational.IVec3{-1, 0, 0}))
	require.False(t, g.HasEdge(1, 1, rational.IVec3{2, 0, 0}))
}

func TestSelfLoopZeroOffsetRejected(t *testing.T) {
	g := netgraph.NewGraph(1)
	err := g.AddEdge(1, 1, rational.IVec3{0, 0, 0})
	require.ErrorIs(t, err, netgraph.ErrSelfLoopZeroOffset)
}

func TestDuplicateAddIsNoop(t *testing.T) {
	g := pcuGraph(t)
	require.NoError(t, g.AddEdge(1, 1, rational.IVec3{1, 0, 0}))
	require.Equal(t, 6, g.Degree(1))
}

func TestCoordinationSequencePcu(t *testing.T) {
	g := pcuGraph(t)
	seq := g.CoordinationSequence(1, 3)
	// pcu shells: 6, 18, 38 (standard cubic lattice coordination sequence).
	require.Equal(t, []int{6, 18, 38}, seq)
}

func diaGraph(t *testing.T) *netgraph.Graph {
	t.Helper()
	g := netgraph.NewGraph(2)
	require.NoError(t, g.AddEdge(1, 2, rational.IVec3{0, 0, 0}))
	require.NoError(t, g.AddEdge(1, 2, rational.IVec3{1, 0, 0}))
	require.NoError(t, g.AddEdge(1, 2, rational.IVec3{0, 1, 0}))
	require.NoError(t, g.AddEdge(1, 2, rational.IVec3{0, 0, 1}))
	return g
}

func TestDiaDegree(t *testing.T) {
	g := diaGraph(t)
	require.Equal(t, 4, g.Degree(1))
	require.Equal(t, 4, g.Degree(2))
}

func TestCrystalNetValidate(t *testing.T) {
	g := pcuGraph(t)
	net := &netgraph.CrystalNet{
		Cell:  rational.IdentityMat3(),
		Types: []string{"A"},
		Pos:   []rational.Vec3{rational.ZeroVec3()},
		Graph: g,
	}
	require.NoError(t, net.Validate())
	require.True(t, net.AllUnique())
	require.NoError(t, net.CheckDimensionality())
}

func TestCrystalNetNotThreeDimensional(t *testing.T) {
	// A 2-periodic square layer: one vertex, edges only along x and y.
	g := netgraph.NewGraph(1)
	require.NoError(t, g.AddEdge(1, 1, rational.IVec3{1, 0, 0}))
	require.NoError(t, g.AddEdge(1, 1, rational.IVec3{0, 1, 0}))
	net := &netgraph.CrystalNet{
		Cell:  rational.IdentityMat3(),
		Types: []string{"A"},
		Pos:   []rational.Vec3{rational.ZeroVec3()},
		Graph: g,
	}
	require.ErrorIs(t, net.CheckDimensionality(), netgraph.ErrNotThreeDimensional)
}
