package netgraph

import "errors"

// Sentinel errors for the netgraph package.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("netgraph: vertex not found")

	// ErrSelfLoopZeroOffset indicates an edge from v to v with a zero
	// offset was attempted; this is forbidden.
	ErrSelfLoopZeroOffset = errors.New("netgraph: self-loop with zero offset not allowed")

	// ErrDuplicateEdge indicates more than one edge was attempted for the
	// same directed (src, dst, ofs) triple.
	ErrDuplicateEdge = errors.New("netgraph: duplicate directed edge")

	// ErrEdgeNotFound indicates a requested edge does not exist.
	ErrEdgeNotFound = errors.New("netgraph: edge not found")

	// ErrNotThreeDimensional indicates the edge vectors do not span R^3.
	ErrNotThreeDimensional = errors.New("netgraph: edges do not span three dimensions")

	// ErrInvalidCrystalNet indicates a CrystalNet invariant violation
	// found by Validate (mismatched lengths, zero vertices, unsorted
	// positions, or pos[0] != 0).
	ErrInvalidCrystalNet = errors.New("netgraph: invalid crystal net")
)
