// Package probabilistic provides the acceptance-function family and the
// seeded RNG used by the probabilistic search driver (package search).
//
// An Accept function scores a candidate descent and returns a non-negative
// value: the step is accepted when the score is >= 1 or a uniform draw in
// [0,1) falls below it. Two built-in families are provided (BuiltinHeavyside,
// ParametrizedHeavyside); a caller may also supply any func matching the
// Accept signature.
//
// RNG seeding follows the same deterministic, avalanche-mixed derivation
// tsp.rngFromSeed/deriveSeed/deriveRNG use: a root *rand.Rand is seeded
// once (from a caller seed, or OS entropy when absent), and per-worker
// substreams are derived from it via a SplitMix64 mix so they decorrelate
// even when seeds collide.
package probabilistic
