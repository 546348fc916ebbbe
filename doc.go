// Package graph is the root of the topogenome module, which computes the
// topological genome of a 3-periodic net: a canonical edge-list string
// that does not depend on vertex numbering, origin or cell basis, and
// that can be looked up in an archive of named topologies.
//
// The root package holds no code; the work is done by its subpackages:
//
//	rational/    — exact rational scalars, 3-vectors and 3x3 matrices; integer lattice vectors
//	netgraph/    — periodic graph with per-edge lattice offsets, and the CrystalNet tuple
//	equilibrium/ — barycentric placement of the vertices
//	symmetry/    — point symmetries among the 48 signed permutation matrices
//	translate/   — translation search and primitive-cell reduction
//	partition/   — vertex classes by coordination sequence
//	candidates/  — candidate bases for the canonical relabelling
//	genkey/      — breadth-first relabelling into an edge list
//	basis/       — final lattice basis for the output offsets
//	genome/      — the driver, and serialisation and parsing of genome strings
//	archive/     — genome-to-name archive files
//	cmd/genome/  — command-line entry point
package graph
