package netgraph

import "github.com/katalvlaran/topogenome/rational"

// WithBasis returns a new graph over the same vertex set with every edge
// offset rewritten under the change of basis whose inverse is binv: an
// edge carrying offset o becomes binv*o. This is the graph-level
// basis-substitution operation; genkey and basis rewrite offsets on their
// own edge lists and do not call it. The graph is replaced, never mutated
// in place.
//
// Complexity: O(E).
func (g *Graph) WithBasis(binv rational.IMat3) *Graph {
	out := NewGraph(g.NV())
	for v := 1; v <= g.NV(); v++ {
		for _, e := range g.Neighbours(v) {
			o := binv.MulVec(e.Ofs)
			if !out.HasEdge(e.Src, e.Dst, o) {
				_ = out.AddEdge(e.Src, e.Dst, o)
			}
		}
	}
	return out
}
