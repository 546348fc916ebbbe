package candidates

import (
	"sort"

	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/rational"
	"github.com/katalvlaran/topogenome/symmetry"
)

// Candidate is one (u, B) pair feeding genkey.Key: B's three columns are
// a tentative lattice basis anchored at vertex u.
type Candidate struct {
	U int
	B rational.IMat3
}

// tag is the lexicographically-ordered category used to select the
// minimal candidates in both phases: an order-type in {1,2,3,4} followed
// by the sorted class-index triple.
type tag struct {
	orderType int
	classes   [3]int
}

func lessTag(a, b tag) bool {
	if a.orderType != b.orderType {
		return a.orderType < b.orderType
	}
	for i := 0; i < 3; i++ {
		if a.classes[i] != b.classes[i] {
			return a.classes[i] < b.classes[i]
		}
	}
	return false
}

func equalTag(a, b tag) bool { return a == b }

// orderType classifies a sorted class-index triple by which entries
// coincide: 1 when all three are equal, 2 when the two smallest are
// equal (and strictly less than the largest), 3 when the two largest
// are equal (and strictly greater than the smallest), 4 when all three
// differ.
func orderType(sorted [3]int) int {
	switch {
	case sorted[0] == sorted[1] && sorted[1] == sorted[2]:
		return 1
	case sorted[0] == sorted[1]:
		return 2
	case sorted[1] == sorted[2]:
		return 3
	default:
		return 4
	}
}

func makeTag(c0, c1, c2 int) tag {
	sorted := [3]int{c0, c1, c2}
	sort.Ints(sorted[:])
	return tag{orderType: orderType(sorted), classes: sorted}
}

// Enumerate runs the two-phase candidate search and returns the
// deduplicated candidate list. classes and classOf are
// partition.ByCoordinationSequence's outputs; syms is the point-symmetry
// search result (possibly zero-value if symmetries have not yet been
// computed, in which case stabilizer deduplication is a no-op).
//
// An empty return is not itself an error: the caller checks
// net.CheckDimensionality() to distinguish "not 3-periodic" from an
// internal inconsistency.
func Enumerate(net *netgraph.CrystalNet, classes [][]int, classOf []int, syms symmetry.Result) []Candidate {
	raw := neighbourOnlyPhase(net, classes, classOf)
	if len(raw) == 0 {
		raw = fallbackPhase(net, classes, classOf)
	}
	return dedupeBySymmetry(raw, syms)
}

type rawCandidate struct {
	u   int
	b   rational.IMat3
	tag tag
}

// neighbourOnlyPhase enumerates unordered neighbour triples at each
// degree>=3 class representative, keeping only those attaining the
// global minimum tag.
func neighbourOnlyPhase(net *netgraph.CrystalNet, classes [][]int, classOf []int) []rawCandidate {
	var all []rawCandidate
	for _, class := range classes {
		u := class[0]
		if net.Graph.Degree(u) < 3 {
			continue
		}
		nbrs := net.Graph.Neighbours(u)
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				for k := j + 1; k < len(nbrs); k++ {
					m := rational.IMat3FromCols(nbrs[i].Ofs, nbrs[j].Ofs, nbrs[k].Ofs)
					if m.Det().Sign() == 0 {
						continue
					}
					cols := [3]netgraph.Edge{nbrs[i], nbrs[j], nbrs[k]}
					orderCanonically(cols[:], classOf)
					t := makeTag(classOf[cols[0].Dst-1], classOf[cols[1].Dst-1], classOf[cols[2].Dst-1])
					all = append(all, rawCandidate{
						u:   u,
						b:   rational.IMat3FromCols(cols[0].Ofs, cols[1].Ofs, cols[2].Ofs),
						tag: t,
					})
				}
			}
		}
	}
	return minimalByTag(all)
}

// fallbackPhase runs only when the neighbour-only phase finds nothing:
// it borrows a third basis vector from another class's neighbourhood,
// stopping at the first class that yields any candidate.
func fallbackPhase(net *netgraph.CrystalNet, classes [][]int, classOf []int) []rawCandidate {
	for _, class := range classes {
		var inClass []rawCandidate
		for _, repClass := range classes {
			u := repClass[0]
			nbrsU := net.Graph.Neighbours(u)
			for i := 0; i < len(nbrsU); i++ {
				for j := 0; j < len(nbrsU); j++ {
					if i == j {
						continue
					}
					x1, x2 := nbrsU[i], nbrsU[j]
					if x1.Ofs.ToQ().Cross(x2.Ofs.ToQ()).IsZero() {
						continue
					}
					for _, v := range class {
						for _, x3 := range net.Graph.Neighbours(v) {
							m := rational.IMat3FromCols(x1.Ofs, x2.Ofs, x3.Ofs)
							if m.Det().Sign() == 0 {
								continue
							}
							t := makeTag(classOf[x1.Dst-1], classOf[x2.Dst-1], classOf[x3.Dst-1])
							inClass = append(inClass, rawCandidate{u: u, b: m, tag: t})
							if classOf[x1.Dst-1] == classOf[x2.Dst-1] {
								mSwap := rational.IMat3FromCols(x2.Ofs, x1.Ofs, x3.Ofs)
								inClass = append(inClass, rawCandidate{u: u, b: mSwap, tag: t})
							}
						}
					}
				}
			}
		}
		best := minimalByTag(inClass)
		if len(best) > 0 {
			return best
		}
	}
	return nil
}

// orderCanonically sorts the three edges by (destination class, then
// offset) ascending, fixing a single deterministic column order per
// unordered triple.
func orderCanonically(e []netgraph.Edge, classOf []int) {
	sort.Slice(e, func(i, j int) bool {
		ci, cj := classOf[e[i].Dst-1], classOf[e[j].Dst-1]
		if ci != cj {
			return ci < cj
		}
		return e[i].Ofs.Cmp(e[j].Ofs) < 0
	})
}

func minimalByTag(all []rawCandidate) []rawCandidate {
	if len(all) == 0 {
		return nil
	}
	min := all[0].tag
	for _, c := range all[1:] {
		if lessTag(c.tag, min) {
			min = c.tag
		}
	}
	var out []rawCandidate
	for _, c := range all {
		if equalTag(c.tag, min) {
			out = append(out, c)
		}
	}
	return out
}

// dedupeBySymmetry replaces each raw candidate's matrix by the minimum
// of {R*M : R in stabilizer(u)} and keeps only the distinct minima.
func dedupeBySymmetry(raw []rawCandidate, syms symmetry.Result) []Candidate {
	seen := make(map[[10]int64]struct{})
	var out []Candidate
	for _, c := range raw {
		best := c.b
		for _, r := range syms.StabilizerOf(c.u) {
			rm := mulIMat3(r, c.b)
			if lessFlat(flatten(rm, c.u), flatten(best, c.u)) {
				best = rm
			}
		}
		key := flatten(best, c.u)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Candidate{U: c.u, B: best})
	}
	return out
}

func mulIMat3(r, m rational.IMat3) rational.IMat3 {
	var out rational.IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum int64
			for k := 0; k < 3; k++ {
				sum += r[i][k] * m[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func flatten(m rational.IMat3, u int) [10]int64 {
	var out [10]int64
	out[0] = int64(u)
	idx := 1
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[idx] = m[i][j]
			idx++
		}
	}
	return out
}

func lessFlat(a, b [10]int64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
