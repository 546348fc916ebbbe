package genome

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/topogenome/equilibrium"
	"github.com/katalvlaran/topogenome/genkey"
	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/rational"
)

// dimension3 is the fixed leading field of every edge record: "D s₁ d₁
// oₓ oᵧ o_z ..." with D=3.
const dimension3 = 3

// Serialize renders edges as the canonical genome string:
// whitespace-separated "D s d ox oy oz" records. CandidateKey's push
// order yields every undirected edge as a mirrored (s,d,o)/(d,s,-o) pair
// (netgraph's symmetric-closure invariant); Serialize keeps only one
// representative per pair, listing each bond once, by retaining (s,d,o)
// when s<d, and for a self-loop (s==d) the representative whose leading
// non-zero offset coordinate is positive, mirroring basis.canonicalSign's
// convention.
func Serialize(edges genkey.EdgeKey) string {
	fields := make([]string, 0, len(edges)*6)
	for _, e := range edges {
		if !isCanonicalDirection(e) {
			continue
		}
		fields = append(fields,
			strconv.Itoa(dimension3),
			strconv.Itoa(e.S),
			strconv.Itoa(e.D),
			strconv.FormatInt(e.Ofs[0], 10),
			strconv.FormatInt(e.Ofs[1], 10),
			strconv.FormatInt(e.Ofs[2], 10),
		)
	}
	return strings.Join(fields, " ")
}

func isCanonicalDirection(e genkey.KeyEdge) bool {
	if e.S != e.D {
		return e.S < e.D
	}
	for _, c := range e.Ofs {
		if c != 0 {
			return c > 0
		}
	}
	return true
}

// Parse reconstructs a CrystalNet from a genome string, the round-trip
// counterpart to Serialize. Vertex positions are recomputed by
// equilibrium.Solve and relabelled into CrystalNet.Validate's required
// lexicographic order; atom types are not recoverable from the
// topology-only string and are filled with a placeholder ("X").
func Parse(s string) (*netgraph.CrystalNet, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields)%6 != 0 {
		return nil, fmt.Errorf("genome: Parse: %w: field count %d not a multiple of 6", ErrParse, len(fields))
	}

	nv := 0
	type rec struct {
		s, d int
		ofs  rational.IVec3
	}
	recs := make([]rec, 0, len(fields)/6)
	for i := 0; i < len(fields); i += 6 {
		nums := make([]int64, 6)
		for j := 0; j < 6; j++ {
			n, err := strconv.ParseInt(fields[i+j], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("genome: Parse: %w: field %q: %v", ErrParse, fields[i+j], err)
			}
			nums[j] = n
		}
		if nums[0] != dimension3 {
			return nil, fmt.Errorf("genome: Parse: %w: dimension %d != 3", ErrParse, nums[0])
		}
		r := rec{s: int(nums[1]), d: int(nums[2]), ofs: rational.IVec3{nums[3], nums[4], nums[5]}}
		if r.s > nv {
			nv = r.s
		}
		if r.d > nv {
			nv = r.d
		}
		recs = append(recs, r)
	}

	g := netgraph.NewGraph(nv)
	for _, r := range recs {
		if err := g.AddEdge(r.s, r.d, r.ofs); err != nil {
			return nil, fmt.Errorf("genome: Parse: %w: edge (%d,%d,%v): %v", ErrParse, r.s, r.d, r.ofs, err)
		}
	}

	pos, err := equilibrium.Solve(g)
	if err != nil {
		return nil, fmt.Errorf("genome: Parse: %w", err)
	}

	order := make([]int, nv)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return pos[order[i]].Cmp(pos[order[j]]) < 0 })
	newLabel := make([]int, nv+1) // old (1-indexed) -> new (1-indexed)
	for newIdx, oldIdx := range order {
		newLabel[oldIdx+1] = newIdx + 1
	}

	newPos := make([]rational.Vec3, nv)
	newTypes := make([]string, nv)
	for oldIdx, p := range pos {
		newPos[newLabel[oldIdx+1]-1] = p
		newTypes[newLabel[oldIdx+1]-1] = "X"
	}

	ng := netgraph.NewGraph(nv)
	for v := 1; v <= nv; v++ {
		for _, e := range g.Neighbours(v) {
			sNew, dNew := newLabel[v], newLabel[e.Dst]
			if ng.HasEdge(sNew, dNew, e.Ofs) {
				continue
			}
			if err := ng.AddEdge(sNew, dNew, e.Ofs); err != nil {
				return nil, fmt.Errorf("genome: Parse: %w: relabel edge: %v", ErrParse, err)
			}
		}
	}

	net := &netgraph.CrystalNet{
		Cell:  rational.IdentityMat3(),
		Types: newTypes,
		Pos:   newPos,
		Graph: ng,
	}
	if err := net.Validate(); err != nil {
		return nil, fmt.Errorf("genome: Parse: %w: %v", ErrParse, err)
	}
	return net, nil
}
