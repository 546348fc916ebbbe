package partition

import "errors"

// ErrLowDegree reports a vertex of degree < 2 reaching
// ByCoordinationSequence; such vertices must be pruned by the caller
// beforehand.
var ErrLowDegree = errors.New("partition: vertex has degree < 2")
