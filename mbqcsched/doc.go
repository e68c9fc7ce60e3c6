// Package mbqcsched is the top-level entry point: given a spatial graph and
// a measurement partial order, it returns the time-optimal schedule
// (do_search=false) or the full time/space Pareto frontier (do_search=true),
// optionally searched in parallel across a worker pool and/or accepted
// probabilistically. It wires together timer, spatial, timeorder, scheduler,
// probabilistic, search, and parallel into the single call external callers
// make, mirroring the upstream crate's interface.rs + lib.rs split.
package mbqcsched
