// Package scheduler composes timeorder.TimeOrder and spatial.Graph into a
// single search-tree node, and walks the resulting tree depth-first.
//
// Scheduler.Focus forwards a chosen subset to the TimeOrder first; only
// once the TimeOrder accepts it is the SpatialGraph advanced, via its
// unchecked fast path, since the TimeOrder's acceptance already proves the
// subset legal. Sweep is the explicit-stack tree walker built on top of
// it, modeled the way a deep enumeration tree must be modeled in Go: an
// explicit frame stack, not recursion, so a pathologically deep tree never
// blows the call stack.
package scheduler
