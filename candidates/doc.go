// Package candidates enumerates candidate relabelling bases for a
// periodic graph's canonical-key search: for each class representative,
// triples of neighbour offsets that could serve as a lattice basis are
// collected, tagged by how their endpoints' classes compare, reduced to
// the lexicographically minimal tag, and deduplicated against each
// representative's known point-symmetry stabilizer.
package candidates
