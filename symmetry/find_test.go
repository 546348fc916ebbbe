package symmetry_test

import (
	"testing"

	"github.com/katalvlaran/topogenome/netgraph"
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

// checkClosure is spec P5: applying R to every offset and pi to every
// vertex must leave the edge set unchanged.
func checkClosure(t *testing.T, net *netgraph.CrystalNet, R rational.IMat3, perm []int) {
	t.Helper()
	for v := 1; v <= net.Graph.NV(); v++ {
		for _, e := range net.Graph.Neighbours(v) {
			ro := R.MulVec(e.Ofs)
			require.True(t, net.Graph.HasEdge(perm[v-1], perm[e.Dst-1], ro),
				"edge (%d,%d,%v) should map to an existing edge under R/pi", v, e.Dst, e.Ofs)
		}
	}
}

func TestPcuFullCubicSymmetry(t *testing.T) {
	net := pcuNet(t)
	res := symmetry.Find(net, nil)
	require.Len(t, res.Rotations, 48) // full O_h: pcu's offsets are the 6 signed unit vectors.
	for i, R := range res.Rotations {
		checkClosure(t, net, R, res.Perms[i])
	}
}

func TestDiaSymmetryClosure(t *testing.T) {
	net := diaNet(t)
	res := symmetry.Find(net, []int{0, 1}) // vertices are not interchangeable by type
	require.NotEmpty(t, res.Rotations)
	for i, R := range res.Rotations {
		checkClosure(t, net, R, res.Perms[i])
		require.Equal(t, 1, res.Perms[i][0]) // class-pruned: vertex 1 fixed
	}
}

func TestStabilizerOf(t *testing.T) {
	net := pcuNet(t)
	res := symmetry.Find(net, nil)
	stab := res.StabilizerOf(1)
	require.Equal(t, len(res.Rotations), len(stab)) // single vertex: every symmetry fixes it
}
