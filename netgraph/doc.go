// Package netgraph provides PeriodicGraph3D: a directed half-edge
// adjacency representation of a 3-periodic graph, each edge carrying an
// integer lattice offset, plus the CrystalNet tuple that pairs a graph
// with a unit cell, vertex types and equilibrium positions.
//
// All mutating operations acquire a write lock; queries acquire a read
// lock. muVert guards the vertex count, muEdge guards the adjacency
// lists.
package netgraph
