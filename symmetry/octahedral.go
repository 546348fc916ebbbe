package symmetry

import "github.com/katalvlaran/topogenome/rational"

// signedPermutations returns the 48 signed permutation matrices of the
// full octahedral group O_h: every way to permute the three axes,
// combined with every independent sign flip. Every candidate point
// symmetry of a 3-periodic lattice is searched for among these, since
// any lattice-preserving orthogonal integer transform is a signed
// permutation in *some* choice of primitive axes; restricting the search
// to this finite, easily-enumerated set keeps the search tractable and
// deterministic, at the cost of only finding symmetries expressible in
// the net's own (already reduced) basis.
func signedPermutations() []rational.IMat3 {
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	var out []rational.IMat3
	for _, p := range perms {
		for s0 := int64(-1); s0 <= 1; s0 += 2 {
			for s1 := int64(-1); s1 <= 1; s1 += 2 {
				for s2 := int64(-1); s2 <= 1; s2 += 2 {
					var m rational.IMat3
					signs := [3]int64{s0, s1, s2}
					for col, axis := range p {
						var v rational.IVec3
						v[axis] = signs[col]
						m[0][col], m[1][col], m[2][col] = v[0], v[1], v[2]
					}
					out = append(out, m)
				}
			}
		}
	}
	return out
}
