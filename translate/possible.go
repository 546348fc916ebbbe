package translate

import (
	"sort"

	mapset "github.com/deckarep/golang-set"

	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/rational"
)

// Possible enumerates candidate translations as differences pos[k]-pos[1],
// deduplicated and sorted by (number-of-zero-coordinates, leading-nonzero-
// index, denominator) so the search for a minimal enlarging matrix in
// Minimize considers the most axis-aligned, smallest translations first.
func Possible(net *netgraph.CrystalNet) []rational.Vec3 {
	seen := mapset.NewSet()
	var out []rational.Vec3
	n := net.Graph.NV()
	for k := 1; k < n; k++ {
		t := net.Pos[k].Sub(net.Pos[0]).Mod1()
		if t.IsZero() {
			continue
		}
		key := t.String()
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// less orders candidate translations by the Possible sort key.
func less(a, b rational.Vec3) bool {
	za, zb := zeroCount(a), zeroCount(b)
	if za != zb {
		return za > zb // more zero coordinates sorts first
	}
	la, lb := leadingNonzero(a), leadingNonzero(b)
	if la != lb {
		return la < lb
	}
	da, db := maxDenom(a), maxDenom(b)
	return da < db
}

func zeroCount(v rational.Vec3) int {
	n := 0
	for _, c := range v {
		if c.IsZero() {
			n++
		}
	}
	return n
}

func leadingNonzero(v rational.Vec3) int {
	for i, c := range v {
		if !c.IsZero() {
			return i
		}
	}
	return 3
}

func maxDenom(v rational.Vec3) int64 {
	var max int64
	for _, c := range v {
		if d := c.Denom(); d > max {
			max = d
		}
	}
	return max
}
