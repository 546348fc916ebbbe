package genkey

import "errors"

// ErrNonIntegerOffset reports that a candidate basis failed to rebind a
// vertex's position onto an exact integer lattice offset — the basis was
// not a genuine symmetry of the net's lattice (an internal invariant
// violation, since candidates.Enumerate should never surface such a B).
var ErrNonIntegerOffset = errors.New("genkey: non-integer offset under candidate basis")

// ErrDuplicateEdge reports that two pushed edges coincided, violating
// the generated key's strict edge-uniqueness invariant.
var ErrDuplicateEdge = errors.New("genkey: duplicate edge in generated key")
