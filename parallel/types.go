package parallel

import (
	"time"

	"github.com/katalvlaran/mbqc-scheduler/probabilistic"
)

// updateInterval is the fixed iteration cadence at which a worker
// reconciles its local frontier against the shared one, matching
// spec.md §4.8's UPDATE_INTERVAL constant.
const updateInterval = 1000

// Options configures a parallel search run.
type Options struct {
	// NThreads is the worker pool size. Callers should only reach
	// package parallel at all when this is >= 2 (see mbqcsched.Run).
	NThreads int
	// TaskBound caps how many top-level children of the root are split
	// into their own task, beyond which a single catch-all task explores
	// every remaining sibling.
	TaskBound int
	// Accept gates each descent probabilistically; nil means deterministic.
	Accept probabilistic.Accept
	// RNG seeds the per-worker derived streams. Required when Accept is
	// non-nil, ignored otherwise.
	RNG *probabilistic.Source
	// OnTaskDone, if non-nil, is called once per finished task (including
	// the catch-all) with its index, wall-clock duration, and the number
	// of its result entries merged into the shared result map. Debug
	// instrumentation only; nil by default.
	OnTaskDone func(taskIndex int, elapsed time.Duration, found int)
}
