package search

import (
	"math"

	"github.com/katalvlaran/mbqc-scheduler/probabilistic"
	"github.com/katalvlaran/mbqc-scheduler/timer"
)

// Infinity is the unreachable sentinel every BestMemoryPerTime entry
// starts at.
const Infinity = math.MaxInt

// Path is one entry of the final Pareto-optimal answer: time = len(Steps);
// Space is the peak live-qubit count observed executing Steps on a fresh
// scheduler; Steps[k] is the set of nodes measured in parallel at step k.
type Path struct {
	Time  int
	Space int
	Steps [][]int32
}

// pathEntry is the value type of MappedPaths: the best-known peak and
// step sequence recorded so far for a given time length.
type pathEntry struct {
	Space int
	Steps [][]int32
}

// MappedPaths is the sparse time -> (space, steps) map; BestMemoryPerTime's
// companion, populated only at leaves reached during the sweep.
type MappedPaths map[int]pathEntry

// Record sets the entry for time length t. Exported for package parallel,
// which must record a leaf event reaching root itself (the empty schedule)
// directly into the shared results map, bypassing Driver.recordLeaf.
func (mp MappedPaths) Record(t, space int, steps [][]int32) {
	mp[t] = pathEntry{Space: space, Steps: steps}
}

// BestMemoryPerTime is bm[t]: the smallest space found so far for any full
// schedule of length <= t. Monotonically non-increasing in t; every entry
// starts at Infinity.
type BestMemoryPerTime []int

// NewBestMemoryPerTime returns a length n+1 array with every entry set to
// Infinity.
func NewBestMemoryPerTime(n int) BestMemoryPerTime {
	bm := make(BestMemoryPerTime, n+1)
	for i := range bm {
		bm[i] = Infinity
	}

	return bm
}

// Clone returns an independent copy.
func (bm BestMemoryPerTime) Clone() BestMemoryPerTime {
	out := make(BestMemoryPerTime, len(bm))
	copy(out, bm)

	return out
}

// Driver is the deterministic or probabilistic branch-and-bound search
// state. The zero value is not usable; construct with NewDeterministic or
// NewProbabilistic.
type Driver struct {
	n             int
	results       MappedPaths
	currentPath   [][]int32
	bestMemory    BestMemoryPerTime
	tm            *timer.Timer
	accept        probabilistic.Accept
	rng           *probabilistic.Source
	timedOut    bool
	lastWasLeaf bool
}
