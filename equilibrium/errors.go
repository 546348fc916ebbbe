package equilibrium

import "errors"

// ErrUnstableNet indicates the equilibrium solution places two distinct
// vertices at the same position.
var ErrUnstableNet = errors.New("equilibrium: unstable net (coincident positions)")

// ErrDisconnected indicates the reduced Laplacian is singular for a
// reason other than the expected 3-dimensional translational null space
// (i.e. the graph is not connected).
var ErrDisconnected = errors.New("equilibrium: disconnected periodic graph")
