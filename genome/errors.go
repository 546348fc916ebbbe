package genome

import "errors"

// Sentinel errors for the genome package, surfacing stable error kinds
// at the core's outer boundary.
var (
	// ErrInvalidInput indicates net fails its structural invariants.
	ErrInvalidInput = errors.New("genome: invalid input")

	// ErrUnstableNet indicates two vertices occupy the same position.
	ErrUnstableNet = errors.New("genome: unstable net (coincident positions)")

	// ErrInternal indicates an invariant violation inside the core that
	// no recoverable condition explains.
	ErrInternal = errors.New("genome: internal invariant violation")

	// ErrParse indicates a genome string could not be parsed back into
	// a periodic graph.
	ErrParse = errors.New("genome: malformed genome string")
)
