// Package translate enumerates candidate lattice translations that are
// symmetries of a periodic embedding and reduces the graph by the
// minimal-volume sublattice they generate — the "primitive cell"
// reduction.
package translate
