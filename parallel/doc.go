// Package parallel splits a search tree's top-level children across a
// worker pool, each running the single-threaded search.Driver against a
// shared, mutex-guarded Pareto frontier (search.BestMemoryPerTime) and
// result map (search.MappedPaths). Used whenever the caller asks for two
// or more worker threads; with fewer, package mbqcsched runs the driver
// directly on the calling goroutine instead, matching spec.md §5's
// "when the worker count is < 2, all work occurs on the calling thread".
package parallel
