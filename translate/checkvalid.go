package translate

import (
	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/rational"
)

// CheckValid returns the induced vertex permutation iff translating every
// vertex position by t (optionally composed with rotation r, which may be
// nil for the identity) and rebinning into the unit cell reproduces the
// identical labelled periodic graph.
//
// perm[v-1] == w means vertex v maps to vertex w; ok is false when no
// consistent permutation exists.
func CheckValid(net *netgraph.CrystalNet, t rational.Vec3, r *rational.IMat3) (perm []int, ok bool) {
	n := net.Graph.NV()
	newPos := make([]rational.Vec3, n)
	for v := 0; v < n; v++ {
		p := net.Pos[v]
		if r != nil {
			p = r.ToQ().MulVec(p)
		}
		newPos[v] = p.Add(t)
	}

	perm = make([]int, n)
	wrap := make([]rational.IVec3, n)
	used := make([]bool, n+1)
	for v := 0; v < n; v++ {
		frac := newPos[v].Mod1()
		match := -1
		for w := 0; w < n; w++ {
			if used[w+1] {
				continue
			}
			if net.Types[w] != net.Types[v] {
				continue
			}
			if net.Pos[w].Equal(frac) {
				match = w
				break
			}
		}
		if match < 0 {
			return nil, false
		}
		used[match+1] = true
		perm[v] = match + 1

		delta := newPos[v].Sub(net.Pos[match])
		iv, ok := toIVec3(delta)
		if !ok {
			return nil, false
		}
		wrap[v] = iv
	}

	for v := 1; v <= n; v++ {
		for _, e := range net.Graph.Neighbours(v) {
			o := e.Ofs
			if r != nil {
				o = r.MulVec(o)
			}
			o = o.Add(wrap[e.Dst-1]).Sub(wrap[v-1])
			if !net.Graph.HasEdge(perm[v-1], perm[e.Dst-1], o) {
				return nil, false
			}
		}
	}
	return perm, true
}

func toIVec3(v rational.Vec3) (rational.IVec3, bool) {
	var out rational.IVec3
	for i := 0; i < 3; i++ {
		if !v[i].IsInt() {
			return rational.IVec3{}, false
		}
		out[i] = v[i].Int64()
	}
	return out, true
}
