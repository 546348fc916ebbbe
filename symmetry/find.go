package symmetry

import (
	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/rational"
)

// Result holds every detected point symmetry: Rotations[i] paired with
// Perms[i] (Perms[i][v-1] == pi(v), 1-indexed vertices), plus whether any
// detected rotation is orientation-reversing (det == -1).
type Result struct {
	Rotations []rational.IMat3
	Perms     [][]int
	HasMirror bool
}

// StabilizerOf returns every (R, pi) pair in res for which pi(u) == u,
// the stabilizer subgroup of vertex u used by candidates' deduplication.
func (res Result) StabilizerOf(u int) []rational.IMat3 {
	var out []rational.IMat3
	for i, perm := range res.Perms {
		if perm[u-1] == u {
			out = append(out, res.Rotations[i])
		}
	}
	return out
}

// Find enumerates candidate point symmetries of net, restricted to the
// signed-permutation transforms of octahedral.go (see its doc comment),
// optionally pruned by a vertex->class assignment so permutations only
// ever map a vertex to another of the same coordination-sequence class.
// classOf may be nil, meaning every vertex is its own class (no pruning).
//
// Complexity: O(48 * n!) worst case, but the class-pruned, edge-propagated
// backtracking search prunes almost all branches in practice for the
// coordination numbers periodic nets actually exhibit.
func Find(net *netgraph.CrystalNet, classOf []int) Result {
	n := net.Graph.NV()
	if classOf == nil {
		classOf = make([]int, n)
		for i := range classOf {
			classOf[i] = i
		}
	}

	var res Result
	for _, R := range signedPermutations() {
		perm, ok := search(net, classOf, R)
		if !ok {
			continue
		}
		res.Rotations = append(res.Rotations, R)
		res.Perms = append(res.Perms, perm)
		if R.Det().Sign() < 0 {
			res.HasMirror = true
		}
	}
	return res
}

// search attempts to build one permutation pi consistent with R via
// backtracking: vertex v may map to w only if they share a class and
// R*pos[v-1] == pos[w-1] (mod 1); each tentative assignment is checked
// against every edge incident to v that has its other endpoint already
// assigned.
func search(net *netgraph.CrystalNet, classOf []int, R rational.IMat3) ([]int, bool) {
	n := net.Graph.NV()
	perm := make([]int, n) // perm[v-1] == pi(v), 0 == unassigned
	used := make([]bool, n+1)

	var assign func(v int) bool
	assign = func(v int) bool {
		if v > n {
			return true
		}
		rpos := mulMat3Vec(R, net.Pos[v-1]).Mod1()
		for w := 1; w <= n; w++ {
			if used[w] || classOf[w-1] != classOf[v-1] {
				continue
			}
			if !rpos.Equal(net.Pos[w-1]) {
				continue
			}
			if !consistentWithAssigned(net, R, perm, v, w) {
				continue
			}
			perm[v-1] = w
			used[w] = true
			if assign(v + 1) {
				return true
			}
			perm[v-1] = 0
			used[w] = false
		}
		return false
	}

	if assign(1) {
		return perm, true
	}
	return nil, false
}

// mulMat3Vec applies the rational image of an integer transform to a
// rational position vector.
func mulMat3Vec(R rational.IMat3, v rational.Vec3) rational.Vec3 {
	return R.ToQ().MulVec(v)
}

// consistentWithAssigned checks every edge between v and an
// already-assigned vertex maps to an existing edge under (perm, R).
func consistentWithAssigned(net *netgraph.CrystalNet, R rational.IMat3, perm []int, v, w int) bool {
	for _, e := range net.Graph.Neighbours(v) {
		if e.Dst == v {
			// self-loop offset: must map to a self-loop offset at w.
			ro := R.MulVec(e.Ofs)
			if !net.Graph.HasEdge(w, w, ro) {
				return false
			}
			continue
		}
		pd := perm[e.Dst-1]
		if pd == 0 {
			continue // other endpoint not yet assigned; verified later
		}
		ro := R.MulVec(e.Ofs)
		if !net.Graph.HasEdge(w, pd, ro) {
			return false
		}
	}
	return true
}
