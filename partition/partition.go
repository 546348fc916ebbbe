package partition

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/topogenome/netgraph"
)

// Depth is the coordination-sequence shell depth used to distinguish
// classes, defaulting to 10; exposed here as a tuning knob rather than a
// hard-wired constant.
var Depth = 10

// ByCoordinationSequence partitions g's vertices into equivalence classes:
// (a) union-find merges vertices already known to lie in the same
// symmetry orbit via perms (each perm[v-1] == pi(v), 1-indexed, may be
// nil for no known symmetry yet); (b) one coordination sequence is
// computed per orbit representative; (c) orbits with identical sequences
// merge into the same class; (d) classes are sorted by
// (|class|*seq[1], seq) lexicographically.
//
// Returns the sorted classes (each a sorted list of 1-indexed vertices),
// a vertex->class-index map (0-indexed into classes), and one
// representative vertex per class, in the same order as classes.
//
// The union-find step allocates one *disjoint.Element per vertex and
// unions endpoints that share a known symmetry orbit, the same way a
// spanning-tree construction unions endpoints sharing a component — here
// the pairs being unioned come from perms rather than graph edges.
func ByCoordinationSequence(g *netgraph.Graph, perms [][]int) (classes [][]int, vertexClass []int, reps []int, err error) {
	n := g.NV()
	for v := 1; v <= n; v++ {
		if g.Degree(v) < 2 {
			return nil, nil, nil, fmt.Errorf("partition: ByCoordinationSequence: vertex %d: %w", v, ErrLowDegree)
		}
	}

	elems := make([]*disjoint.Element, n+1)
	for v := 1; v <= n; v++ {
		elems[v] = disjoint.NewElement()
	}
	for _, perm := range perms {
		for v := 1; v <= n; v++ {
			disjoint.Union(elems[v], elems[perm[v-1]])
		}
	}

	orbitOf := make(map[*disjoint.Element][]int)
	for v := 1; v <= n; v++ {
		root := elems[v].Find()
		orbitOf[root] = append(orbitOf[root], v)
	}

	type orbit struct {
		rep     int
		members []int
		seq     []int
	}
	var orbits []orbit
	for _, members := range orbitOf {
		sort.Ints(members)
		rep := members[0]
		orbits = append(orbits, orbit{rep: rep, members: members, seq: g.CoordinationSequence(rep, Depth)})
	}

	merged := make(map[string][]int) // seq key -> accumulated members
	var seqOf []struct {
		key string
		seq []int
	}
	for _, o := range orbits {
		key := seqKey(o.seq)
		if _, ok := merged[key]; !ok {
			seqOf = append(seqOf, struct {
				key string
				seq []int
			}{key, o.seq})
		}
		merged[key] = append(merged[key], o.members...)
	}

	type classInfo struct {
		members []int
		seq     []int
	}
	var infos []classInfo
	for _, s := range seqOf {
		members := merged[s.key]
		sort.Ints(members)
		infos = append(infos, classInfo{members: members, seq: s.seq})
	}

	sort.Slice(infos, func(i, j int) bool {
		wi := len(infos[i].members) * firstOrZero(infos[i].seq)
		wj := len(infos[j].members) * firstOrZero(infos[j].seq)
		if wi != wj {
			return wi < wj
		}
		return lessSeq(infos[i].seq, infos[j].seq)
	})

	classes = make([][]int, len(infos))
	reps = make([]int, len(infos))
	vertexClass = make([]int, n)
	for i, info := range infos {
		classes[i] = info.members
		reps[i] = info.members[0]
		for _, v := range info.members {
			vertexClass[v-1] = i
		}
	}
	return classes, vertexClass, reps, nil
}

func seqKey(seq []int) string {
	parts := make([]string, len(seq))
	for i, c := range seq {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

func firstOrZero(seq []int) int {
	if len(seq) == 0 {
		return 0
	}
	return seq[0]
}

func lessSeq(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
