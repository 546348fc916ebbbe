package netgraph

import (
	"sort"
	"sync"

	"github.com/katalvlaran/topogenome/rational"
)

// Edge is one directed half-edge "(src, dst, ofs)" meaning an edge from
// vertex src in the origin cell to vertex dst in the cell at integer
// offset ofs.
type Edge struct {
	Src int
	Dst int
	Ofs rational.IVec3
}

// Reverse returns the involute half-edge (d, s, -o), which must also be
// present in the edge set.
func (e Edge) Reverse() Edge {
	return Edge{Src: e.Dst, Dst: e.Src, Ofs: e.Ofs.Neg()}
}

// less gives the canonical per-vertex ordering used to keep each
// adjacency list sorted for O(log deg) HasEdge lookups.
func less(a, b Edge) bool {
	if a.Dst != b.Dst {
		return a.Dst < b.Dst
	}
	return a.Ofs.Cmp(b.Ofs) < 0
}

// Graph is PeriodicGraph3D: n vertices numbered 1..n and a set of directed
// half-edges closed under (s,d,o) <-> (d,s,-o).
//
// muVert guards the vertex count; muEdge guards the adjacency lists.
type Graph struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	n   int
	adj map[int][]Edge // sorted per vertex by (Dst, Ofs)
}

// NewGraph allocates an empty PeriodicGraph3D over vertices 1..n.
//
// Complexity: O(n).
func NewGraph(n int) *Graph {
	g := &Graph{n: n, adj: make(map[int][]Edge, n)}
	for v := 1; v <= n; v++ {
		g.adj[v] = nil
	}
	return g
}

// NV returns the number of vertices.
//
// Complexity: O(1).
func (g *Graph) NV() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.n
}

// HasVertex reports whether 1 <= v <= NV().
//
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return v >= 1 && v <= g.n
}

// AddEdge inserts the half-edge (s,d,o) and, if absent, its involute
// (d,s,-o), enforcing the PeriodicGraph3D invariants. A duplicate
// insertion of an already-present directed triple is a no-op (idempotent).
//
// Complexity: O(log deg) for the membership check, O(deg) for the insert.
func (g *Graph) AddEdge(s, d int, o rational.IVec3) error {
	if !g.HasVertex(s) || !g.HasVertex(d) {
		return ErrVertexNotFound
	}
	if s == d && o.IsZero() {
		return ErrSelfLoopZeroOffset
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	g.insertLocked(Edge{Src: s, Dst: d, Ofs: o})
	g.insertLocked(Edge{Src: d, Dst: s, Ofs: o.Neg()})
	return nil
}

// insertLocked inserts e into its source's adjacency list if not already
// present, keeping the list sorted. Caller must hold muEdge.
func (g *Graph) insertLocked(e Edge) {
	list := g.adj[e.Src]
	i := sort.Search(len(list), func(i int) bool { return !less(list[i], e) })
	if i < len(list) && list[i].Dst == e.Dst && list[i].Ofs.Equal(e.Ofs) {
		return // already present
	}
	list = append(list, Edge{})
	copy(list[i+1:], list[i:])
	list[i] = e
	g.adj[e.Src] = list
}

// RemoveEdge deletes the half-edge (s,d,o) and its involute, if present.
// A removal of an absent edge is a no-op.
//
// Complexity: O(deg) per endpoint.
func (g *Graph) RemoveEdge(s, d int, o rational.IVec3) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	g.removeLocked(s, Edge{Src: s, Dst: d, Ofs: o})
	g.removeLocked(d, Edge{Src: d, Dst: s, Ofs: o.Neg()})
}

func (g *Graph) removeLocked(owner int, e Edge) {
	list := g.adj[owner]
	for i, cur := range list {
		if cur.Dst == e.Dst && cur.Ofs.Equal(e.Ofs) {
			g.adj[owner] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// HasEdge reports whether the directed half-edge (s,d,o) exists.
//
// Complexity: O(log deg).
func (g *Graph) HasEdge(s, d int, o rational.IVec3) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	list := g.adj[s]
	target := Edge{Src: s, Dst: d, Ofs: o}
	i := sort.Search(len(list), func(i int) bool { return !less(list[i], target) })
	return i < len(list) && list[i].Dst == d && list[i].Ofs.Equal(o)
}

// Neighbours returns a copy of the sorted half-edge list leaving v.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbours(v int) []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	list := g.adj[v]
	out := make([]Edge, len(list))
	copy(out, list)
	return out
}

// Degree returns the out-degree of v (equal to its in-degree, by the
// symmetric-closure invariant).
//
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.adj[v])
}

// AllEdges returns every half-edge in the graph, each direction listed
// once (so |AllEdges()| is twice the "undirected" edge count).
//
// Complexity: O(E).
func (g *Graph) AllEdges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	var out []Edge
	for v := 1; v <= g.n; v++ {
		out = append(out, g.adj[v]...)
	}
	return out
}

// GraphWidth returns the maximum absolute coordinate appearing in any
// edge offset, a bound on offsets reachable in one hop.
//
// Complexity: O(E).
func (g *Graph) GraphWidth() int64 {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	var w int64
	for v := 1; v <= g.n; v++ {
		for _, e := range g.adj[v] {
			for _, c := range e.Ofs {
				if c < 0 {
					c = -c
				}
				if c > w {
					w = c
				}
			}
		}
	}
	return w
}
