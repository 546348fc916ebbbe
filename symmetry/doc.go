// Package symmetry detects the point symmetries of an embedded periodic
// graph: integer orthogonal transforms R and accompanying vertex
// permutations pi such that applying R to every edge offset and pi to
// every vertex leaves the edge set unchanged and R*pos[i] = pos[pi(i)]
// (mod 1) for every vertex i.
package symmetry
