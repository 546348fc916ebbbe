package netgraph

import "github.com/katalvlaran/topogenome/rational"

// universalVertex identifies a vertex of the universal cover by its base
// vertex and the lattice cell it sits in.
type universalVertex struct {
	v   int
	ofs rational.IVec3
}

// CoordinationSequence returns (c1..ck), the sizes of the 1..k-hop shells
// around v in the infinite periodic cover.
//
// Shelling proceeds by breadth-first search over (vertex, offset) pairs
// rather than plain vertices: each level is the set of not-yet-visited
// universal vertices reachable from the previous level in one hop.
//
// Complexity: O(k * shell_size * avg_degree).
func (g *Graph) CoordinationSequence(v int, k int) []int {
	shells := make([]int, 0, k)
	if !g.HasVertex(v) || k <= 0 {
		return shells
	}

	visited := map[universalVertex]struct{}{
		{v: v, ofs: rational.IVec3{}}: {},
	}
	frontier := []universalVertex{{v: v, ofs: rational.IVec3{}}}

	for depth := 1; depth <= k; depth++ {
		var next []universalVertex
		for _, cur := range frontier {
			for _, e := range g.Neighbours(cur.v) {
				cand := universalVertex{v: e.Dst, ofs: cur.ofs.Add(e.Ofs)}
				if _, seen := visited[cand]; seen {
					continue
				}
				visited[cand] = struct{}{}
				next = append(next, cand)
			}
		}
		shells = append(shells, len(next))
		frontier = next
		if len(frontier) == 0 {
			// Stable nets with degree >= 2 never hit this, but guard
			// against malformed input rather than spin on an empty
			// frontier.
			for ; depth < k; depth++ {
				shells = append(shells, 0)
			}
			break
		}
	}
	return shells
}
