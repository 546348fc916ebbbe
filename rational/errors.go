package rational

import "errors"

// Sentinel errors for the rational package. Every algorithm in this
// package must return one of these (wrapped with context via fmt.Errorf
// and %w) rather than panicking on user-triggered conditions.
var (
	// ErrSingular indicates a matrix has zero determinant and cannot be inverted.
	ErrSingular = errors.New("rational: singular matrix")

	// ErrNotUnimodular indicates an integer matrix inverse was requested
	// but the determinant is not +-1.
	ErrNotUnimodular = errors.New("rational: matrix is not unimodular")

	// ErrWidthExceeded indicates a numerator or denominator grew past the
	// configured maximum bit width.
	ErrWidthExceeded = errors.New("rational: numeric width limit exceeded")

	// ErrDimensionMismatch indicates incompatible vector/matrix shapes.
	ErrDimensionMismatch = errors.New("rational: dimension mismatch")
)
