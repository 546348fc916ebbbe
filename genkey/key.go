package genkey

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/rational"
)

// KeyEdge is one edge of a canonical relabelling: S and D are new
// (1-indexed) vertex labels, Ofs the offset between them in the
// candidate basis.
type KeyEdge struct {
	S, D int
	Ofs  rational.IVec3
}

// cmp gives the lexicographic order over (S, D, Ofs) used both to rank
// a run against best_so_far and to serialize the final genome string.
func (e KeyEdge) cmp(o KeyEdge) int {
	if e.S != o.S {
		if e.S < o.S {
			return -1
		}
		return 1
	}
	if e.D != o.D {
		if e.D < o.D {
			return -1
		}
		return 1
	}
	return e.Ofs.Cmp(o.Ofs)
}

// EdgeKey is the canonical edge list produced by one CandidateKey run,
// in push order.
type EdgeKey []KeyEdge

// Key relabels net breadth-first starting from u under the candidate
// basis B, comparing each generated edge
// against best at the same position. It returns improved==false (with
// nil vmap/edges) the moment a generated edge is found strictly greater
// than best at that position, and also when the run ties best at every
// position it reaches. It reports improved==true when, after a prefix of
// tied edges, one edge is strictly less than best at its position or the
// run extends past the end of best; later edges are then not compared.
//
// vmap[h-1] == w means new label h was assigned to original vertex w.
func Key(net *netgraph.CrystalNet, u int, b rational.IMat3, best EdgeKey) (vmap []int, edges EdgeKey, improved bool, err error) {
	ibInt, err := b.Inverse()
	if err != nil {
		return nil, nil, false, fmt.Errorf("genkey: Key: %w", err)
	}
	ib := ibInt.ToQ()

	n := net.Graph.NV()
	vmapArr := []int{0, u} // 1-indexed; vmapArr[0] unused, vmapArr[1] == u

	newpos := make([]rational.Vec3, n+1)
	offsets := make([]rational.IVec3, n+1)
	revVmap := make(map[int]int, n)
	revVmap[u] = 1

	origin := net.Pos[u-1]
	h := 2
	seenImproved := false
	var out EdgeKey
	seenEdges := make(map[[5]int64]struct{})

	for t := 1; t <= n; t++ {
		if t >= len(vmapArr) {
			break // fewer than n vertices reachable; caller's invariant violated upstream
		}
		oldVertex := vmapArr[t]
		ofst := offsets[t]

		type ent struct {
			c rational.Vec3
			w int
		}
		var entries []ent
		for _, e := range net.Graph.Neighbours(oldVertex) {
			shifted := net.Pos[e.Dst-1].Add(e.Ofs.ToQ()).Sub(origin).Add(ofst.ToQ())
			c := ib.MulVec(shifted)
			entries = append(entries, ent{c: c, w: e.Dst})
		}

		sorted := append([]ent(nil), entries...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].c.Cmp(sorted[j].c) < 0 })
		rank := make(map[int]int)
		for _, e := range sorted {
			if _, ok := rank[e.w]; !ok {
				rank[e.w] = len(rank)
			}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			ri, rj := rank[entries[i].w], rank[entries[j].w]
			if ri != rj {
				return ri < rj
			}
			return entries[i].c.Cmp(entries[j].c) < 0
		})

		for _, e := range entries {
			var edge KeyEdge
			if existing, seen := revVmap[e.w]; seen {
				off, ok := e.c.Sub(newpos[existing]).ToIVec3()
				if !ok {
					return nil, nil, false, fmt.Errorf("genkey: Key: %w", ErrNonIntegerOffset)
				}
				edge = KeyEdge{S: t, D: existing, Ofs: off}
			} else {
				off, ok := b.ToQ().MulVec(e.c).Add(origin).Sub(net.Pos[e.w-1]).ToIVec3()
				if !ok {
					return nil, nil, false, fmt.Errorf("genkey: Key: %w", ErrNonIntegerOffset)
				}
				newpos[h] = e.c
				offsets[h] = off
				revVmap[e.w] = h
				vmapArr = append(vmapArr, e.w)
				edge = KeyEdge{S: t, D: h, Ofs: rational.IVec3{}}
				h++
			}

			dupKey := [5]int64{int64(edge.S), int64(edge.D), edge.Ofs[0], edge.Ofs[1], edge.Ofs[2]}
			if _, dup := seenEdges[dupKey]; dup {
				return nil, nil, false, fmt.Errorf("genkey: Key: %w", ErrDuplicateEdge)
			}
			seenEdges[dupKey] = struct{}{}
			out = append(out, edge)

			if !seenImproved {
				idx := len(out) - 1
				switch {
				case idx >= len(best):
					seenImproved = true
				default:
					c := edge.cmp(best[idx])
					switch {
					case c > 0:
						return nil, nil, false, nil
					case c < 0:
						seenImproved = true
					}
				}
			}
		}
	}

	if !seenImproved {
		return nil, nil, false, nil
	}
	return vmapArr[1:], out, true, nil
}
