package probabilistic

// Inputs bundles the arguments an Accept function scores a candidate
// descent with. Field names mirror the accept() signature: bound_best_mem,
// minimal_mem, last_max_mem, last_cur_mem, cur_mem, num_remaining_nodes,
// num_total_nodes.
type Inputs struct {
	// BoundBestMem is best_memory[min_len] for the candidate's length class.
	BoundBestMem int
	// MinimalMem is the overall best peak found so far across all lengths.
	MinimalMem int
	// LastMaxMem is the parent SpatialGraph's peak, before this focus.
	LastMaxMem int
	// LastCurMem is the parent SpatialGraph's current live count, before
	// this focus.
	LastCurMem int
	// CurMem is the candidate child's current live count.
	CurMem int
	// NumRemainingNodes is the count of allowed nodes not yet measured,
	// after this focus.
	NumRemainingNodes int
	// NumTotalNodes is the total count of allowed nodes.
	NumTotalNodes int
}

// Accept scores a candidate descent, returning a non-negative score (the
// built-in family can return values above 1). The step is accepted iff the
// score is >= 1, or a uniform draw in [0,1) falls below it.
type Accept func(in Inputs) float64
