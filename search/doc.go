// Package search implements the branch-and-bound SearchDriver (both its
// deterministic and probabilistic variants), the greedy time-optimal pass,
// and the Pareto filter shared by the single-threaded and parallel paths.
//
// Driver drives a scheduler.Sweep to exhaustion (or until a timer.Timer
// fires), pruning subtrees whose spatial peak cannot beat the best-known
// result at any length the subtree could still reach. When constructed
// with a probabilistic.Accept function and RNG source, every non-pruned
// descent is additionally subjected to a random accept/reject draw — the
// same sweep, the same pruning bound, one extra gate.
package search
