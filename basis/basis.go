package basis

import (
	"fmt"

	"github.com/katalvlaran/topogenome/genkey"
	"github.com/katalvlaran/topogenome/rational"
)

// Find computes the basis matrix spanning edges' offsets and rewrites
// each edge in that basis. The returned B has positive determinant and
// is invertible over ℤ; every rewritten offset is an exact integer
// vector in B's coordinates.
func Find(edges genkey.EdgeKey) (genkey.EdgeKey, rational.IMat3, error) {
	seen := make(map[rational.IVec3]struct{})
	var ivecs []rational.IVec3
	for _, e := range edges {
		if e.Ofs.IsZero() {
			continue
		}
		o := canonicalSign(e.Ofs)
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		ivecs = append(ivecs, o)
	}

	b, err := rational.HermiteBasis(ivecs)
	if err != nil {
		return nil, rational.IMat3{}, fmt.Errorf("basis: Find: %w", err)
	}
	binv, err := b.Inverse()
	if err != nil {
		return nil, rational.IMat3{}, fmt.Errorf("basis: Find: %w", err)
	}

	out := make(genkey.EdgeKey, len(edges))
	for i, e := range edges {
		out[i] = genkey.KeyEdge{S: e.S, D: e.D, Ofs: binv.MulVec(e.Ofs)}
	}
	return out, b, nil
}

// canonicalSign flips o so that its first nonzero coordinate is
// positive, fixing a single representative per {o, -o} pair ahead of
// basis computation.
func canonicalSign(o rational.IVec3) rational.IVec3 {
	i := o.LeadingNonzero()
	if i < 3 && o[i] < 0 {
		return o.Neg()
	}
	return o
}
