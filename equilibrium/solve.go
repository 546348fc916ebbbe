package equilibrium

import (
	"fmt"

	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/rational"
)

// Solve computes the equilibrium position of every vertex of g, fixing
// vertex 1 at the origin, and returns pos indexed 0-based by (vertex-1).
//
// Stage 1 (Prepare): build the reduced graph Laplacian over vertices
// 2..n and the three offset-sum right-hand sides (one per coordinate).
// Stage 2 (Execute): solve by exact-rational Gauss-Jordan elimination.
// Stage 3 (Finalize): reduce into [0,1)^3 and reject coincident results.
//
// Complexity: O(n^3) for the elimination, O(E) for assembly.
func Solve(g *netgraph.Graph) ([]rational.Vec3, error) {
	n := g.NV()
	pos := make([]rational.Vec3, n)
	pos[0] = rational.ZeroVec3()
	if n == 1 {
		return pos, nil
	}

	m := n - 1 // unknowns: vertices 2..n, row/col i <-> vertex i+2
	lap := make([][]rational.Q, m)
	rhs := make([][3]rational.Q, m)
	for i := range lap {
		lap[i] = make([]rational.Q, m)
		for j := range lap[i] {
			lap[i][j] = rational.Zero()
		}
		rhs[i] = [3]rational.Q{rational.Zero(), rational.Zero(), rational.Zero()}
	}

	for row := 0; row < m; row++ {
		v := row + 2
		edges := g.Neighbours(v)
		lap[row][row] = rational.FromInt(int64(len(edges)))
		for _, e := range edges {
			for c := 0; c < 3; c++ {
				rhs[row][c] = rhs[row][c].Add(rational.FromInt(e.Ofs[c]))
			}
			if e.Dst == 1 {
				continue // contributes 0 to RHS since pos[1] == 0
			}
			col := e.Dst - 2
			lap[row][col] = lap[row][col].Sub(rational.One())
		}
	}

	sol, err := gaussJordan(lap, rhs)
	if err != nil {
		return nil, fmt.Errorf("equilibrium: Solve: %w", err)
	}

	for row := 0; row < m; row++ {
		v := rational.Vec3{sol[row][0], sol[row][1], sol[row][2]}
		pos[row+1] = v.Mod1()
	}

	if hasDuplicate(pos) {
		return nil, fmt.Errorf("equilibrium: Solve: %w", ErrUnstableNet)
	}
	return pos, nil
}

func hasDuplicate(pos []rational.Vec3) bool {
	for i := range pos {
		for j := i + 1; j < len(pos); j++ {
			if pos[i].Equal(pos[j]) {
				return true
			}
		}
	}
	return false
}

// gaussJordan solves lap*x = rhs (one column per coordinate) via exact
// rational Gauss-Jordan elimination with partial pivoting on nonzero
// entries (exact arithmetic makes magnitude-based pivoting unnecessary;
// any nonzero pivot is exact).
func gaussJordan(lap [][]rational.Q, rhs [][3]rational.Q) ([][3]rational.Q, error) {
	n := len(lap)
	// Augment each row with its RHS for in-place elimination.
	aug := make([][]rational.Q, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]rational.Q, n+3)
		copy(aug[i], lap[i])
		aug[i][n], aug[i][n+1], aug[i][n+2] = rhs[i][0], rhs[i][1], rhs[i][2]
	}

	for col := 0; col < n; col++ {
		pivotRow := -1
		for r := col; r < n; r++ {
			if !aug[r][col].IsZero() {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			return nil, ErrDisconnected
		}
		aug[col], aug[pivotRow] = aug[pivotRow], aug[col]

		pivot := aug[col][col]
		for c := 0; c < n+3; c++ {
			v, _ := aug[col][c].Div(pivot)
			aug[col][c] = v
		}
		for r := 0; r < n; r++ {
			if r == col || aug[r][col].IsZero() {
				continue
			}
			factor := aug[r][col]
			for c := 0; c < n+3; c++ {
				aug[r][c] = aug[r][c].Sub(aug[col][c].Mul(factor))
			}
		}
	}

	out := make([][3]rational.Q, n)
	for i := 0; i < n; i++ {
		out[i] = [3]rational.Q{aug[i][n], aug[i][n+1], aug[i][n+2]}
	}
	return out, nil
}
