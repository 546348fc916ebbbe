package archive

import "errors"

// Sentinel errors for the archive package.
var (
	// ErrVersionMismatch indicates the archive's generator version line
	// differs from the current tool version. Recoverable with --force.
	ErrVersionMismatch = errors.New("archive: generator version mismatch")

	// ErrMalformed indicates the archive text does not follow the
	// "Made by <tool> vX.Y.Z" header plus key/id record format.
	ErrMalformed = errors.New("archive: malformed archive file")

	// ErrDanglingKey indicates a "key" record was not followed by exactly
	// one "id" record.
	ErrDanglingKey = errors.New("archive: key record without matching id")
)
