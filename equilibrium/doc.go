// Package equilibrium computes the barycentric (equilibrium) placement of
// a periodic graph's vertices in the unit cell: the unique solution,
// modulo fixing one vertex at the origin, of "every vertex sits at the
// average of its neighbours" over the graph Laplacian.
//
// The Laplacian is solved by exact-rational Gauss-Jordan elimination over
// rational.Q.
package equilibrium
