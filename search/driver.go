package search

import (
	"github.com/katalvlaran/mbqc-scheduler/probabilistic"
	"github.com/katalvlaran/mbqc-scheduler/scheduler"
	"github.com/katalvlaran/mbqc-scheduler/timer"
)

// NewDeterministic builds a driver with no acceptance gate: every
// non-pruned descent is taken.
func NewDeterministic(n int, tm *timer.Timer) *Driver {
	return &Driver{
		n:          n,
		results:    make(MappedPaths),
		bestMemory: NewBestMemoryPerTime(n),
		tm:         tm,
	}
}

// NewProbabilistic builds a driver that additionally gates every
// non-pruned descent through accept, drawing from rng.
func NewProbabilistic(n int, tm *timer.Timer, accept probabilistic.Accept, rng *probabilistic.Source) *Driver {
	d := NewDeterministic(n, tm)
	d.accept = accept
	d.rng = rng

	return d
}

// BestMemory returns the driver's current frontier array. Callers in
// package parallel use this to snapshot/reconcile against the shared one;
// the returned slice is not a copy.
func (d *Driver) BestMemory() BestMemoryPerTime { return d.bestMemory }

// SetBestMemory replaces the driver's frontier array with a copy of bm.
// Used by package parallel to seed a worker's local frontier from a
// snapshot of the shared one before running.
func (d *Driver) SetBestMemory(bm BestMemoryPerTime) { d.bestMemory = bm.Clone() }

// Results returns the paths recorded at leaves reached so far, keyed by
// time length.
func (d *Driver) Results() MappedPaths { return d.results }

// TimedOut reports whether the run ended because the timer fired, rather
// than by exhausting the tree.
func (d *Driver) TimedOut() bool { return d.timedOut }

// LastEventWasLeaf reports whether the most recently processed Sweep event
// was a Backward event closing a leaf. Used by package parallel to trigger
// a reconciliation pass immediately after any leaf, in addition to the
// fixed iteration cadence.
func (d *Driver) LastEventWasLeaf() bool { return d.lastWasLeaf }

// Run drives a Sweep rooted at root to exhaustion, or until the timer
// fires. onTick, if non-nil, is called after every processed event with a
// 1-based iteration counter; if it returns true, Run stops early (used by
// package parallel to reconcile against the shared frontier on a fixed
// cadence).
func (d *Driver) Run(root *scheduler.Scheduler, onTick func(iteration int) bool) error {
	return d.RunSweep(scheduler.NewSweep(root), nil, onTick)
}

// RunSweep drives an already-positioned Sweep to exhaustion, or until the
// timer fires, with current_path seeded from initialPath. Package parallel
// uses this directly: each worker task owns a Sweep rooted at a distinct
// child of the global root (or, for the catch-all task, the root itself
// with its partitioner already advanced past the enumerated children), and
// initialPath is the subset that produced that child, if any.
func (d *Driver) RunSweep(sw *scheduler.Sweep, initialPath [][]int32, onTick func(iteration int) bool) error {
	if len(initialPath) > 0 {
		d.currentPath = append(d.currentPath, initialPath...)
	}
	iteration := 0
	for {
		if d.tm != nil && d.tm.Finished() {
			d.timedOut = true

			return nil
		}

		parentBefore := sw.Current()
		ev, more, err := sw.Next()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		d.lastWasLeaf = false

		switch ev.Kind {
		case scheduler.Forward:
			child := sw.Current()
			if done := d.onForward(sw, parentBefore, child, ev.Subset); done {
				return nil
			}
		case scheduler.Backward:
			d.onBackward(ev)
		}

		iteration++
		if onTick != nil && onTick(iteration) {
			return nil
		}
	}
}

// onForward decides whether to descend into child: prune if its peak
// cannot beat the frontier at any length it could still reach, or — in
// probabilistic mode — if the accept draw rejects it. On pruning, the
// sweep unwinds past the child; it reports done=true if that unwind
// consumed the root, meaning the whole sweep is over.
func (d *Driver) onForward(sw *scheduler.Sweep, parent, child *scheduler.Scheduler, subset []int32) (done bool) {
	minLen := d.minLen(len(d.currentPath), child)
	pruned := child.Spatial().Peak() >= d.bestMemory[minLen]

	if !pruned && d.accept != nil {
		in := probabilistic.Inputs{
			BoundBestMem:      d.bestMemory[minLen],
			MinimalMem:        d.bestMemory[d.n],
			LastMaxMem:        parent.Spatial().Peak(),
			LastCurMem:        parent.Spatial().Current(),
			CurMem:            child.Spatial().Current(),
			NumRemainingNodes: child.TimeOrder().NumRemainingNodes(),
			NumTotalNodes:     child.TimeOrder().NumTotalNodes(),
		}
		score := d.accept(in)
		if !(score >= 1 || d.rng.Float64() < score) {
			pruned = true
		}
	}

	if pruned {
		return !sw.SkipCurrent()
	}

	d.currentPath = append(d.currentPath, subset)

	return false
}

func (d *Driver) onBackward(ev scheduler.Event) {
	if ev.IsLeaf {
		d.lastWasLeaf = true
		t := len(d.currentPath)
		d.recordLeaf(t, ev.LeafPeak)
	}
	if len(d.currentPath) > 0 {
		d.currentPath = d.currentPath[:len(d.currentPath)-1]
	}
}

// minLen computes len(current_path) + extra, clamped to n: extra is 1 if
// child is a leaf, 3 if child still has unmet predecessors anywhere, else
// 2.
func (d *Driver) minLen(curLen int, child *scheduler.Scheduler) int {
	var extra int
	if _, isLeaf := child.AtLeaf(); isLeaf {
		extra = 1
	} else if child.HasUnmeasureable() {
		extra = 3
	} else {
		extra = 2
	}

	ml := curLen + extra
	if ml > d.n {
		ml = d.n
	}

	return ml
}

// recordLeaf commits the path currently on the stack as the best-known
// pattern for length t, and tightens every longer length's bound by the
// new peak. The direct assignment at t is sound (not merely a minimum)
// because reaching this leaf already proved peak < the old bestMemory[t]:
// the very last Forward step computed minLen = t and only descended
// because child.Peak() (this same peak) was strictly below it.
func (d *Driver) recordLeaf(t, peak int) {
	d.bestMemory[t] = peak
	for tt := t + 1; tt <= d.n; tt++ {
		if peak < d.bestMemory[tt] {
			d.bestMemory[tt] = peak
		}
	}

	steps := make([][]int32, len(d.currentPath))
	copy(steps, d.currentPath)
	d.results[t] = pathEntry{Space: peak, Steps: steps}
}
