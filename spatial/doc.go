// Package spatial implements the dense neighbor view of the entanglement
// graph: which qubits are live, which are measured, and the current/peak
// count of simultaneously live qubits.
//
// A Graph is built once from a read-only adjacency list and then advanced by
// Focus/FocusInPlace/FocusUnchecked calls that mark a subset of nodes
// Measured and extend the Live set to any newly-adjacent Uninitialized node.
// Focus returns a clone of the mutable state sharing the same immutable
// adjacency slice; this is the "cheap O(N) clone, shared backing array"
// scheme the scheduler relies on for backtracking (see package scheduler).
package spatial
