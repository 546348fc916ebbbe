// Package genome orchestrates the full genome computation: minimize,
// find candidates, run CandidateKey over each, find the rewriting basis,
// and serialise the result as the canonical genome string. Parse
// reconstructs a CrystalNet from that string, the round-trip
// counterpart to Serialize.
package genome
