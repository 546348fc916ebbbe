package rational

import (
	"fmt"
	"math/big"
)

// DefaultMaxBits is the bit-length ceiling that CheckWidth applies to a
// numerator, denominator or integer coordinate. The arithmetic operations
// themselves do not check widths; only CheckWidth compares a value
// against the ceiling. Passed explicitly via Limits, never read from a
// global.
const DefaultMaxBits = 4096

// Limits configures the width ceiling enforced by CheckWidth. Zero value
// means "use DefaultMaxBits".
type Limits struct {
	MaxBits uint
}

// DefaultLimits returns the Limits used when none is supplied explicitly.
func DefaultLimits() Limits {
	return Limits{MaxBits: DefaultMaxBits}
}

func (l Limits) maxBits() uint {
	if l.MaxBits == 0 {
		return DefaultMaxBits
	}
	return l.MaxBits
}

// Q is an exact rational scalar backed by math/big.
type Q struct {
	r *big.Rat
}

// Zero is the additive identity.
func Zero() Q { return Q{r: new(big.Rat)} }

// One is the multiplicative identity.
func One() Q { return FromInt(1) }

// FromInt builds an exact integer rational.
func FromInt(n int64) Q {
	return Q{r: new(big.Rat).SetInt64(n)}
}

// FromFrac builds num/den; panics only on den==0, a programmer error.
func FromFrac(num, den int64) Q {
	if den == 0 {
		panic("rational: FromFrac: zero denominator")
	}
	return Q{r: big.NewRat(num, den)}
}

func (a Q) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

// Add returns a+b.
func (a Q) Add(b Q) Q { return Q{r: new(big.Rat).Add(a.rat(), b.rat())} }

// Sub returns a-b.
func (a Q) Sub(b Q) Q { return Q{r: new(big.Rat).Sub(a.rat(), b.rat())} }

// Mul returns a*b.
func (a Q) Mul(b Q) Q { return Q{r: new(big.Rat).Mul(a.rat(), b.rat())} }

// Neg returns -a.
func (a Q) Neg() Q { return Q{r: new(big.Rat).Neg(a.rat())} }

// Div returns a/b, or ErrSingular if b is zero.
func (a Q) Div(b Q) (Q, error) {
	if b.IsZero() {
		return Q{}, ErrSingular
	}
	return Q{r: new(big.Rat).Quo(a.rat(), b.rat())}, nil
}

// IsZero reports whether a == 0.
func (a Q) IsZero() bool { return a.rat().Sign() == 0 }

// Sign returns -1, 0 or +1.
func (a Q) Sign() int { return a.rat().Sign() }

// Cmp compares a to b.
func (a Q) Cmp(b Q) int { return a.rat().Cmp(b.rat()) }

// Equal reports a == b.
func (a Q) Equal(b Q) bool { return a.Cmp(b) == 0 }

// Floor returns the greatest integer <= a.
func (a Q) Floor() *big.Int {
	num := a.rat().Num()
	den := a.rat().Denom()
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(num, den, m) // Euclidean division: m in [0, den)
	return q
}

// FracPart returns a - floor(a), always in [0, 1).
func (a Q) FracPart() Q {
	f := a.Floor()
	return a.Sub(Q{r: new(big.Rat).SetInt(f)})
}

// IsInt reports whether a has denominator 1.
func (a Q) IsInt() bool { return a.rat().IsInt() }

// Int64 returns the integer value of a, valid only when IsInt() is true.
func (a Q) Int64() int64 {
	return a.rat().Num().Int64()
}

// CheckWidth verifies that both the numerator and denominator of a fit
// within the configured bit-width limit.
func (a Q) CheckWidth(lim Limits) error {
	max := lim.maxBits()
	if uint(a.rat().Num().BitLen()) > max || uint(a.rat().Denom().BitLen()) > max {
		return fmt.Errorf("rational: Q.CheckWidth: %w", ErrWidthExceeded)
	}
	return nil
}

// String renders a as "num/den" or "num" when integral.
func (a Q) String() string { return a.rat().RatString() }

// Denom returns the (always positive) denominator of a in lowest terms.
func (a Q) Denom() int64 { return a.rat().Denom().Int64() }

// Vec3 is an exact-rational 3-vector.
type Vec3 [3]Q

// ZeroVec3 returns the zero vector.
func ZeroVec3() Vec3 { return Vec3{Zero(), Zero(), Zero()} }

// IVec3ToVec3 lifts an integer lattice vector into Vec3.
func IVec3ToVec3(v IVec3) Vec3 {
	return Vec3{FromInt(v[0]), FromInt(v[1]), FromInt(v[2])}
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0].Add(w[0]), v[1].Add(w[1]), v[2].Add(w[2])}
}

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0].Sub(w[0]), v[1].Sub(w[1]), v[2].Sub(w[2])}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{v[0].Neg(), v[1].Neg(), v[2].Neg()}
}

// Scale returns v*s.
func (v Vec3) Scale(s Q) Vec3 {
	return Vec3{v[0].Mul(s), v[1].Mul(s), v[2].Mul(s)}
}

// Dot returns the scalar (inner) product of v and w.
func (v Vec3) Dot(w Vec3) Q {
	return v[0].Mul(w[0]).Add(v[1].Mul(w[1])).Add(v[2].Mul(w[2]))
}

// Cross returns the cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1].Mul(w[2]).Sub(v[2].Mul(w[1])),
		v[2].Mul(w[0]).Sub(v[0].Mul(w[2])),
		v[0].Mul(w[1]).Sub(v[1].Mul(w[0])),
	}
}

// Mod1 reduces each coordinate into [0, 1).
func (v Vec3) Mod1() Vec3 {
	return Vec3{v[0].FracPart(), v[1].FracPart(), v[2].FracPart()}
}

// Equal reports component-wise equality.
func (v Vec3) Equal(w Vec3) bool {
	return v[0].Equal(w[0]) && v[1].Equal(w[1]) && v[2].Equal(w[2])
}

// IsZero reports whether v is the zero vector.
func (v Vec3) IsZero() bool { return v[0].IsZero() && v[1].IsZero() && v[2].IsZero() }

// String renders v as "x,y,z" using each coordinate's exact rational form.
func (v Vec3) String() string {
	return v[0].String() + "," + v[1].String() + "," + v[2].String()
}

// Cmp gives a total (lexicographic) order over Vec3, used throughout the
// canonical-key computation for deterministic tie-breaking.
func (v Vec3) Cmp(w Vec3) int {
	for i := 0; i < 3; i++ {
		if c := v[i].Cmp(w[i]); c != 0 {
			return c
		}
	}
	return 0
}

// ToIVec3 returns v as an integer lattice vector, or ok==false if any
// coordinate has a non-trivial denominator.
func (v Vec3) ToIVec3() (out IVec3, ok bool) {
	for i := 0; i < 3; i++ {
		if !v[i].IsInt() {
			return IVec3{}, false
		}
		out[i] = v[i].Int64()
	}
	return out, true
}

// CheckWidth verifies every coordinate is within the configured width.
func (v Vec3) CheckWidth(lim Limits) error {
	for i := 0; i < 3; i++ {
		if err := v[i].CheckWidth(lim); err != nil {
			return err
		}
	}
	return nil
}

// Mat3 is a rational 3x3 matrix, indexed [row][col]. Its columns are the
// three basis vectors of a candidate lattice basis.
type Mat3 [3][3]Q

// Mat3FromCols builds a matrix whose columns are c0, c1, c2.
func Mat3FromCols(c0, c1, c2 Vec3) Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		m[i][0] = c0[i]
		m[i][1] = c1[i]
		m[i][2] = c2[i]
	}
	return m
}

// IdentityMat3 returns the 3x3 identity.
func IdentityMat3() Mat3 {
	return Mat3FromCols(
		Vec3{One(), Zero(), Zero()},
		Vec3{Zero(), One(), Zero()},
		Vec3{Zero(), Zero(), One()},
	)
}

// Col returns column j (0-indexed).
func (m Mat3) Col(j int) Vec3 {
	return Vec3{m[0][j], m[1][j], m[2][j]}
}

// Row returns row i (0-indexed).
func (m Mat3) Row(i int) Vec3 {
	return Vec3{m[i][0], m[i][1], m[i][2]}
}

// Det returns the determinant via cofactor expansion.
func (m Mat3) Det() Q {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	t1 := a.Mul(e.Mul(i).Sub(f.Mul(h)))
	t2 := b.Mul(d.Mul(i).Sub(f.Mul(g)))
	t3 := c.Mul(d.Mul(h).Sub(e.Mul(g)))
	return t1.Sub(t2).Add(t3)
}

// MulVec returns m*v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		out[i] = m[i][0].Mul(v[0]).Add(m[i][1].Mul(v[1])).Add(m[i][2].Mul(v[2]))
	}
	return out
}

// Mul returns m*n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum Q
			for k := 0; k < 3; k++ {
				sum = sum.Add(m[i][k].Mul(n[k][j]))
			}
			out[i][j] = sum
		}
	}
	return out
}

// Inverse returns m^-1 via the adjugate, or ErrSingular when det(m) == 0.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Det()
	if det.IsZero() {
		return Mat3{}, ErrSingular
	}
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	cof := Mat3{
		{e.Mul(i).Sub(f.Mul(h)), c.Mul(h).Sub(b.Mul(i)), b.Mul(f).Sub(c.Mul(e))},
		{f.Mul(g).Sub(d.Mul(i)), a.Mul(i).Sub(c.Mul(g)), c.Mul(d).Sub(a.Mul(f))},
		{d.Mul(h).Sub(e.Mul(g)), b.Mul(g).Sub(a.Mul(h)), a.Mul(e).Sub(b.Mul(d))},
	}
	invDet, err := One().Div(det)
	if err != nil {
		return Mat3{}, fmt.Errorf("rational: Mat3.Inverse: %w", err)
	}
	var out Mat3
	for r := 0; r < 3; r++ {
		for cidx := 0; cidx < 3; cidx++ {
			out[r][cidx] = cof[r][cidx].Mul(invDet)
		}
	}
	return out, nil
}

// Solve returns x such that m*x == rhs.
func (m Mat3) Solve(rhs Vec3) (Vec3, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Vec3{}, fmt.Errorf("rational: Mat3.Solve: %w", err)
	}
	return inv.MulVec(rhs), nil
}

// IVec3 is an integer lattice vector (an edge offset).
type IVec3 [3]int64

// Add returns v+w.
func (v IVec3) Add(w IVec3) IVec3 { return IVec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v-w.
func (v IVec3) Sub(w IVec3) IVec3 { return IVec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Neg returns -v.
func (v IVec3) Neg() IVec3 { return IVec3{-v[0], -v[1], -v[2]} }

// IsZero reports whether v is the zero offset.
func (v IVec3) IsZero() bool { return v[0] == 0 && v[1] == 0 && v[2] == 0 }

// Equal reports component-wise equality.
func (v IVec3) Equal(w IVec3) bool { return v == w }

// Cmp gives a total (lexicographic) order, used for edge-tuple comparison.
func (v IVec3) Cmp(w IVec3) int {
	for i := 0; i < 3; i++ {
		if v[i] != w[i] {
			if v[i] < w[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// ZeroCount returns the number of zero coordinates, used by translate's
// sort key.
func (v IVec3) ZeroCount() int {
	n := 0
	for _, c := range v {
		if c == 0 {
			n++
		}
	}
	return n
}

// LeadingNonzero returns the index (0..2) of the first nonzero coordinate,
// or 3 if v is the zero vector.
func (v IVec3) LeadingNonzero() int {
	for i, c := range v {
		if c != 0 {
			return i
		}
	}
	return 3
}

// ToQ lifts v into the rational domain.
func (v IVec3) ToQ() Vec3 { return IVec3ToVec3(v) }

// CheckWidth verifies every coordinate's absolute value fits the width.
func (v IVec3) CheckWidth(lim Limits) error {
	max := lim.maxBits()
	for _, c := range v {
		if uint(big.NewInt(c).BitLen()) > max {
			return fmt.Errorf("rational: IVec3.CheckWidth: %w", ErrWidthExceeded)
		}
	}
	return nil
}

// IMat3 is an integer 3x3 matrix (a candidate basis or a change-of-basis
// matrix), indexed [row][col].
type IMat3 [3][3]int64

// IdentityIMat3 returns the 3x3 integer identity.
func IdentityIMat3() IMat3 {
	return IMat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// IMat3FromCols builds a matrix whose columns are c0, c1, c2.
func IMat3FromCols(c0, c1, c2 IVec3) IMat3 {
	var m IMat3
	for i := 0; i < 3; i++ {
		m[i][0] = c0[i]
		m[i][1] = c1[i]
		m[i][2] = c2[i]
	}
	return m
}

// Col returns column j.
func (m IMat3) Col(j int) IVec3 {
	return IVec3{m[0][j], m[1][j], m[2][j]}
}

// Det returns the exact integer determinant (via big.Int to avoid
// silent int64 overflow before the width check runs).
func (m IMat3) Det() *big.Int {
	b := func(x int64) *big.Int { return big.NewInt(x) }
	mul := func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }
	sub := func(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) }
	add := func(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) }

	a, bb, c := b(m[0][0]), b(m[0][1]), b(m[0][2])
	d, e, f := b(m[1][0]), b(m[1][1]), b(m[1][2])
	g, h, i := b(m[2][0]), b(m[2][1]), b(m[2][2])

	t1 := mul(a, sub(mul(e, i), mul(f, h)))
	t2 := mul(bb, sub(mul(d, i), mul(f, g)))
	t3 := mul(c, sub(mul(d, h), mul(e, g)))
	return add(sub(t1, t2), t3)
}

// MulVec returns m*v.
func (m IMat3) MulVec(v IVec3) IVec3 {
	var out IVec3
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// Mul returns m*n.
func (m IMat3) Mul(n IMat3) IMat3 {
	var out IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum int64
			for k := 0; k < 3; k++ {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// ToQ lifts m into the rational domain.
func (m IMat3) ToQ() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = FromInt(m[i][j])
		}
	}
	return out
}

// Inverse returns m^-1 as an integer matrix, valid only when m is
// unimodular (det == +-1); otherwise ErrNotUnimodular.
func (m IMat3) Inverse() (IMat3, error) {
	det := m.Det()
	if new(big.Int).Abs(det).Cmp(big.NewInt(1)) != 0 {
		return IMat3{}, fmt.Errorf("rational: IMat3.Inverse: %w", ErrNotUnimodular)
	}
	sign := det.Int64() // +1 or -1
	qinv, err := m.ToQ().Inverse()
	if err != nil {
		return IMat3{}, fmt.Errorf("rational: IMat3.Inverse: %w", ErrSingular)
	}
	var out IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !qinv[i][j].IsInt() {
				return IMat3{}, fmt.Errorf("rational: IMat3.Inverse: non-integer entry: %w", ErrNotUnimodular)
			}
			out[i][j] = qinv[i][j].Int64()
		}
	}
	_ = sign
	return out, nil
}
