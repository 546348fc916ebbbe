package netgraph

import (
	"fmt"

	"github.com/katalvlaran/topogenome/rational"
)

// CrystalNet is the tuple (cell, types, pos, graph). Pos and Types are
// indexed 0-based by (vertex-1); Graph's vertices keep 1-based numbering.
type CrystalNet struct {
	Cell  rational.Mat3
	Types []string
	Pos   []rational.Vec3
	Graph *Graph
}

// Validate checks structural invariants: matching lengths, at least one
// vertex, and positions sorted lexicographically with pos[0] == 0. Equal
// neighbouring positions pass the sortedness check; distinctness is
// checked separately by AllUnique, whose failure the caller reports as
// an unstable net.
func (c *CrystalNet) Validate() error {
	n := c.Graph.NV()
	if len(c.Types) != n || len(c.Pos) != n {
		return fmt.Errorf("netgraph: CrystalNet.Validate: length mismatch (n=%d types=%d pos=%d): %w",
			n, len(c.Types), len(c.Pos), ErrInvalidCrystalNet)
	}
	if n == 0 {
		return fmt.Errorf("netgraph: CrystalNet.Validate: zero vertices: %w", ErrInvalidCrystalNet)
	}
	if !c.Pos[0].IsZero() {
		return fmt.Errorf("netgraph: CrystalNet.Validate: pos[0] != 0: %w", ErrInvalidCrystalNet)
	}
	for i := 1; i < n; i++ {
		if c.Pos[i-1].Cmp(c.Pos[i]) > 0 {
			return fmt.Errorf("netgraph: CrystalNet.Validate: positions not sorted at %d: %w", i, ErrInvalidCrystalNet)
		}
	}
	return nil
}

// AllUnique reports whether every position is distinct, the precondition
// required before any genome computation proceeds.
func (c *CrystalNet) AllUnique() bool {
	for i := 1; i < len(c.Pos); i++ {
		if c.Pos[i-1].Equal(c.Pos[i]) {
			return false
		}
	}
	return true
}

// CheckDimensionality reports whether the translation vectors carried by
// the graph's edges (pos[d] + o - pos[s], gathered over a spanning set of
// edges) span all of R^3. When they don't, ErrNotThreeDimensional is
// returned.
//
// Implementation: accumulate translation vectors into a rational matrix
// and rank it by Gaussian elimination; rank < 3 means the net is at most
// 2-periodic in its embedding.
func (c *CrystalNet) CheckDimensionality() error {
	var vecs []rational.Vec3
	for v := 1; v <= c.Graph.NV(); v++ {
		for _, e := range c.Graph.Neighbours(v) {
			t := c.Pos[e.Dst-1].Add(e.Ofs.ToQ()).Sub(c.Pos[v-1])
			vecs = append(vecs, t)
		}
	}
	if rank3(vecs) < 3 {
		return ErrNotThreeDimensional
	}
	return nil
}

// rank3 computes the rank (capped at 3) of the given vectors via exact
// rational Gaussian elimination.
func rank3(vecs []rational.Vec3) int {
	var rows [][3]rational.Q
	for _, v := range vecs {
		rows = append(rows, [3]rational.Q{v[0], v[1], v[2]})
	}
	rank := 0
	for col := 0; col < 3 && rank < len(rows); col++ {
		pivot := -1
		for r := rank; r < len(rows); r++ {
			if !rows[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		pv := rows[rank][col]
		for r := 0; r < len(rows); r++ {
			if r == rank || rows[r][col].IsZero() {
				continue
			}
			factor, _ := rows[r][col].Div(pv)
			for c := 0; c < 3; c++ {
				rows[r][c] = rows[r][c].Sub(rows[rank][c].Mul(factor))
			}
		}
		rank++
	}
	if rank > 3 {
		rank = 3
	}
	return rank
}
