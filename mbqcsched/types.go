package mbqcsched

import (
	"time"

	"github.com/katalvlaran/mbqc-scheduler/probabilistic"
)

// DefaultTaskBound is the default cap on how many top-level children of
// the search tree are split into their own parallel task before the
// remainder folds into a single catch-all task.
const DefaultTaskBound = 10000

// Options configures a Run call. The zero value is not generally usable;
// start from DefaultOptions.
type Options struct {
	// DoSearch selects the branch-and-bound Pareto search (true) or the
	// single greedy time-optimal pass (false). Default: false.
	DoSearch bool

	// NThreads is the worker pool size for a search. Values < 2 run the
	// search on the calling goroutine with no synchronization. Ignored
	// when DoSearch is false. Default: 1.
	NThreads int

	// TaskBound caps the number of top-level parallel tasks. Ignored
	// when NThreads < 2. Default: DefaultTaskBound.
	TaskBound int

	// Timeout, if positive, arms a cooperative deadline: the search
	// returns its best partial frontier instead of blocking to
	// exhaustion. Zero means no deadline. Default: 0.
	Timeout time.Duration

	// Probabilistic selects the probabilistic acceptance driver over the
	// deterministic one. Ignored when DoSearch is false. Default: false.
	Probabilistic bool

	// Accept is the acceptance function used when Probabilistic is true.
	// Default: probabilistic.BuiltinHeavyside.
	Accept probabilistic.Accept

	// Seed, if non-nil, seeds the RNG deterministically; nil draws from
	// OS entropy. Only consulted when Probabilistic is true. Default: nil.
	Seed *uint64
}

// DefaultOptions returns the zero-value-safe defaults: a single-threaded,
// deterministic, unbounded time-optimal pass.
func DefaultOptions() Options {
	return Options{
		DoSearch:      false,
		NThreads:      1,
		TaskBound:     DefaultTaskBound,
		Timeout:       0,
		Probabilistic: false,
		Accept:        probabilistic.BuiltinHeavyside,
		Seed:          nil,
	}
}

// Path mirrors search.Path: one schedule, its time length, and its peak
// space cost.
type Path struct {
	Time  int
	Space int
	Steps [][]int32
}

// Result is Run's return value.
type Result struct {
	// Paths is the sorted-by-time, strictly Pareto-improving schedule
	// list. With DoSearch false it holds exactly one entry.
	Paths []Path
	// TimedOut reports whether the configured deadline fired before the
	// search exhausted the tree. Always false when DoSearch is false or
	// Timeout is zero. A supplemented signal (see DESIGN.md); the result
	// is still valid, just possibly not exhaustive.
	TimedOut bool
}
