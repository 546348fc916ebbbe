// Package basis computes the final output basis: given the final edge
// list produced by genkey, it collects the distinct non-zero offsets,
// canonicalises their sign, derives a Hermite-normal-form basis spanning
// them, and rewrites every edge's offset in that basis.
package basis
