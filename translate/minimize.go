package translate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/rational"
)

// ErrUnstableReduction indicates a basis-change reduction collapsed two
// distinct representatives onto the same position, or onto an edge that
// would become a zero-offset self-loop: two representatives colliding
// after reduction means that vertex is unstable.
var ErrUnstableReduction = errors.New("translate: unstable reduction")

// Minimize repeatedly finds a non-trivial valid translation and reduces
// net by the minimal-volume matrix it (and any found alongside it)
// generates, until no further reduction is possible. rotations are
// additionally composed with each candidate translation (may be nil for
// translation-only search); the identity is always tried.
//
// Termination: ReduceWithMatrix strictly shrinks NV() on every successful
// call, so this loop is guaranteed to halt.
func Minimize(net *netgraph.CrystalNet, rotations []rational.IMat3) (*netgraph.CrystalNet, error) {
	rots := append([]rational.IMat3{rational.IdentityIMat3()}, rotations...)

	for {
		var valid []rational.Vec3
		for _, t := range Possible(net) {
			for i := range rots {
				r := rots[i]
				if _, ok := CheckValid(net, t, &r); ok {
					valid = append(valid, t)
					break
				}
			}
		}
		if len(valid) == 0 {
			return net, nil
		}

		m, err := enlargingMatrix(valid)
		if err != nil {
			return nil, fmt.Errorf("translate: Minimize: %w", err)
		}
		reduced, err := ReduceWithMatrix(net, m)
		if err != nil {
			return nil, fmt.Errorf("translate: Minimize: %w", err)
		}
		if reduced.Graph.NV() >= net.Graph.NV() {
			return net, nil // safety: no progress, avoid infinite loop
		}
		net = reduced
	}
}

// enlargingMatrix builds the minimal-volume matrix M whose columns span
// the lattice generated by translations plus the standard axis fallbacks,
// by scaling translations to a common integer denominator, computing
// their Hermite basis alongside the scaled standard basis, and dividing
// back down.
func enlargingMatrix(translations []rational.Vec3) (rational.Mat3, error) {
	d := commonDenominator(translations)
	var ivecs []rational.IVec3
	for _, t := range translations {
		iv, ok := scaleToInt(t, d)
		if !ok {
			return rational.Mat3{}, fmt.Errorf("translate: enlargingMatrix: non-integral scaled translation")
		}
		ivecs = append(ivecs, iv)
	}
	ivecs = append(ivecs, rational.IVec3{d, 0, 0}, rational.IVec3{0, d, 0}, rational.IVec3{0, 0, d})

	h, err := rational.HermiteBasis(ivecs)
	if err != nil {
		return rational.Mat3{}, fmt.Errorf("translate: enlargingMatrix: %w", err)
	}

	invD, _ := rational.One().Div(rational.FromInt(d))
	var m rational.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = rational.FromInt(h[i][j]).Mul(invD)
		}
	}
	return m, nil
}

func commonDenominator(vecs []rational.Vec3) int64 {
	var d int64 = 1
	for _, v := range vecs {
		for _, c := range v {
			dd := c.Denom()
			d = lcm(d, dd)
		}
	}
	return d
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 1
	}
	return a / gcd(a, b) * b
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func scaleToInt(t rational.Vec3, d int64) (rational.IVec3, bool) {
	scaled := t.Scale(rational.FromInt(d))
	return toIVec3(scaled)
}

// ReduceWithMatrix returns a new CrystalNet whose vertex set is the
// quotient of net by m: the cell shrinks to net.Cell*m, vertices related
// by a lattice vector of the new (finer) basis collapse to one
// representative, and edges carry offsets rewritten in the new basis.
func ReduceWithMatrix(net *netgraph.CrystalNet, m rational.Mat3) (*netgraph.CrystalNet, error) {
	minv, err := m.Inverse()
	if err != nil {
		return nil, fmt.Errorf("translate: ReduceWithMatrix: %w", err)
	}

	n := net.Graph.NV()
	frac := make([]rational.Vec3, n)
	intOfs := make([]rational.IVec3, n)
	for v := 0; v < n; v++ {
		exact := minv.MulVec(net.Pos[v])
		fr := exact.Mod1()
		off := exact.Sub(fr)
		io, ok := toIVec3(off)
		if !ok {
			return nil, fmt.Errorf("translate: ReduceWithMatrix: %w", ErrUnstableReduction)
		}
		frac[v] = fr
		intOfs[v] = io
	}

	type rep struct {
		frac  rational.Vec3
		typ   string
		first int
	}
	var reps []rep
	repOf := make([]int, n) // index into reps, per old vertex
	for v := 0; v < n; v++ {
		found := -1
		for i, r := range reps {
			if r.frac.Equal(frac[v]) {
				if r.typ != net.Types[v] {
					return nil, fmt.Errorf("translate: ReduceWithMatrix: %w", ErrUnstableReduction)
				}
				found = i
				break
			}
		}
		if found < 0 {
			reps = append(reps, rep{frac: frac[v], typ: net.Types[v], first: v})
			found = len(reps) - 1
		}
		repOf[v] = found
	}

	order := make([]int, len(reps))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return reps[order[i]].frac.Cmp(reps[order[j]].frac) < 0 })
	newIndexOfRep := make([]int, len(reps)) // reps[i] -> new 1-based vertex
	for newIdx, oldRepIdx := range order {
		newIndexOfRep[oldRepIdx] = newIdx + 1
	}

	nv := len(reps)
	newPos := make([]rational.Vec3, nv)
	newTypes := make([]string, nv)
	for oldRepIdx, newVertex := range newIndexOfRep {
		newPos[newVertex-1] = reps[oldRepIdx].frac
		newTypes[newVertex-1] = reps[oldRepIdx].typ
	}

	g := netgraph.NewGraph(nv)
	for v := 1; v <= n; v++ {
		s := newIndexOfRep[repOf[v-1]]
		for _, e := range net.Graph.Neighbours(v) {
			d := newIndexOfRep[repOf[e.Dst-1]]
			transformedOfs := minv.MulVec(e.Ofs.ToQ())
			total := intOfs[v-1].ToQ().Neg().Add(intOfs[e.Dst-1].ToQ()).Add(transformedOfs)
			io, ok := toIVec3(total)
			if !ok {
				return nil, fmt.Errorf("translate: ReduceWithMatrix: non-integer new offset: %w", ErrUnstableReduction)
			}
			if s == d && io.IsZero() {
				return nil, fmt.Errorf("translate: ReduceWithMatrix: %w", ErrUnstableReduction)
			}
			if !g.HasEdge(s, d, io) {
				if err := g.AddEdge(s, d, io); err != nil {
					return nil, fmt.Errorf("translate: ReduceWithMatrix: %w", err)
				}
			}
		}
	}

	return &netgraph.CrystalNet{
		Cell:  net.Cell.Mul(m),
		Types: newTypes,
		Pos:   newPos,
		Graph: g,
	}, nil
}
