// Package genkey implements a breadth-oriented relabelling of a periodic
// graph anchored at one vertex under one candidate basis, producing a
// canonical edge list that is compared incrementally against the best
// one found so far, aborting as soon as it is proven no better.
package genkey
