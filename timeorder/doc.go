// Package timeorder implements the partial order over measurements (the
// "time order"): for each node, a counter of unmet predecessors; a
// measurable set (counter reached zero, not yet measured); and a deferred
// set (measurable nodes postponed in the most recent focus step).
//
// TimeOrder is built from a layered partial-order graph — layer 0 has no
// predecessors, layer k+1's nodes list predecessors drawn only from layers
// 0..k — the same shape the upstream stabilizer tracker emits. Package
// partitioner logic (enumerating legal next-step subsets) lives alongside
// it in this package as Partitioner, since the two are never used apart.
package timeorder
