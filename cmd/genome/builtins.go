package main

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/rational"
)

// builtins maps a named built-in topology to its literal crystal net.
var builtins = map[string]func() *netgraph.CrystalNet{
	"pcu": pcuNet,
	"dia": diaNet,
}

// builtinNames returns every known built-in name, sorted for
// deterministic CLI help text and iteration order.
func builtinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pcuNet builds the primitive cubic net: one vertex, six half-edges
// (three axes, each direction) of degree 6.
func pcuNet() *netgraph.CrystalNet {
	g := netgraph.NewGraph(1)
	mustAdd(g, 1, 1, rational.IVec3{1, 0, 0})
	mustAdd(g, 1, 1, rational.IVec3{0, 1, 0})
	mustAdd(g, 1, 1, rational.IVec3{0, 0, 1})
	return &netgraph.CrystalNet{
		Cell:  rational.IdentityMat3(),
		Types: []string{"X"},
		Pos:   []rational.Vec3{rational.ZeroVec3()},
		Graph: g,
	}
}

// diaNet builds the diamond net: two vertices at the standard diamond
// equilibrium positions of this edge list (0 and (3/4,3/4,3/4)), four
// half-edges between them.
func diaNet() *netgraph.CrystalNet {
	g := netgraph.NewGraph(2)
	mustAdd(g, 1, 2, rational.IVec3{0, 0, 0})
	mustAdd(g, 1, 2, rational.IVec3{1, 0, 0})
	mustAdd(g, 1, 2, rational.IVec3{0, 1, 0})
	mustAdd(g, 1, 2, rational.IVec3{0, 0, 1})

	threeQuarters := rational.FromFrac(3, 4)
	return &netgraph.CrystalNet{
		Cell:  rational.IdentityMat3(),
		Types: []string{"X", "X"},
		Pos: []rational.Vec3{
			rational.ZeroVec3(),
			{threeQuarters, threeQuarters, threeQuarters},
		},
		Graph: g,
	}
}

// mustAdd panics on an AddEdge failure, which would indicate this file's
// own literal edge lists are malformed — a programmer error, never
// reachable at runtime.
func mustAdd(g *netgraph.Graph, s, d int, o rational.IVec3) {
	if err := g.AddEdge(s, d, o); err != nil {
		panic(fmt.Sprintf("cmd/genome: builtin net literal rejected: %v", err))
	}
}
