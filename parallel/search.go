package parallel

import (
	"sync"
	"time"

	"github.com/katalvlaran/mbqc-scheduler/probabilistic"
	"github.com/katalvlaran/mbqc-scheduler/scheduler"
	"github.com/katalvlaran/mbqc-scheduler/search"
	"github.com/katalvlaran/mbqc-scheduler/timer"
	"golang.org/x/sync/errgroup"
)

// task is one unit of parallel work: a Sweep already positioned at its
// starting node, and the path segment (zero or one subset) that got it
// there, to seed the worker's current_path.
type task struct {
	sweep       *scheduler.Sweep
	initialPath [][]int32
}

// splitTasks peels off up to taskBound top-level children of root into
// their own tasks, then folds whatever remains of root's own partitioner
// into a final catch-all task — mirrors spec.md §4.8's "one task per
// top-level child... a final catch-all task takes the root scheduler
// itself (its iterator already advanced past the enumerated children)".
//
// If root is itself a leaf — N=0, or an allowed subset resolving to zero
// eligible nodes — the very first Next() call yields that leaf's Backward
// event directly, before any Forward ever occurs, and no task can carry it
// (there is nothing left to split off). splitTasks returns that event
// separately so Search can record it itself, rather than silently dropping
// the only event the whole sweep was ever going to produce.
func splitTasks(root *scheduler.Scheduler, taskBound int) ([]task, *scheduler.Event, error) {
	sw := scheduler.NewSweep(root)
	var tasks []task

	for i := 0; i < taskBound; i++ {
		ev, more, err := sw.Next()
		if err != nil {
			return nil, nil, err
		}
		if !more {
			return tasks, nil, nil
		}
		if ev.Kind == scheduler.Backward {
			if len(tasks) == 0 {
				// Root unwound before splitting off a single child: either
				// root itself is a leaf, or it is a genuine dead end with no
				// legal subset at all. Either way nothing remains to split.
				return tasks, &ev, nil
			}

			return tasks, nil, nil
		}

		child := sw.Current()
		tasks = append(tasks, task{
			sweep:       scheduler.NewSweep(child),
			initialPath: [][]int32{ev.Subset},
		})

		if !sw.SkipCurrent() {
			return tasks, nil, nil
		}
	}

	if sw.Current() != nil {
		tasks = append(tasks, task{sweep: sw})
	}

	return tasks, nil, nil
}

// recordRootLeaf commits the root-is-immediately-a-leaf event directly into
// the shared frontier/results, matching what Driver.recordLeaf would have
// done for a length-0 path had this event reached a worker.
func recordRootLeaf(n int, ev *scheduler.Event, sharedBest search.BestMemoryPerTime, sharedResults search.MappedPaths) {
	if !ev.IsLeaf {
		return
	}

	peak := ev.LeafPeak
	for t := 0; t <= n; t++ {
		if peak < sharedBest[t] {
			sharedBest[t] = peak
		}
	}
	sharedResults.Record(0, peak, nil)
}

// Search runs a branch-and-bound search over root across opts.NThreads
// workers, sharing one Pareto frontier and one result map across all of
// them. Callers should only reach this entry point when opts.NThreads >= 2
// (package mbqcsched runs search.Driver directly otherwise).
func Search(root *scheduler.Scheduler, n int, tm *timer.Timer, opts Options) (search.MappedPaths, error) {
	tasks, rootLeaf, err := splitTasks(root, opts.TaskBound)
	if err != nil {
		return nil, err
	}

	var workerSources []*probabilistic.Source
	if opts.Accept != nil {
		workerSources = make([]*probabilistic.Source, len(tasks))
		for i := range tasks {
			workerSources[i] = opts.RNG.Derive(uint64(i))
		}
	}

	sharedBest := search.NewBestMemoryPerTime(n)
	sharedResults := make(search.MappedPaths)
	var bestMu, resultsMu sync.Mutex

	if rootLeaf != nil {
		recordRootLeaf(n, rootLeaf, sharedBest, sharedResults)
	}

	var group errgroup.Group
	if opts.NThreads > 0 {
		group.SetLimit(opts.NThreads)
	}
	for i, t := range tasks {
		i, t := i, t
		group.Go(func() error {
			return runTask(i, t, n, tm, opts, workerSources, sharedBest, sharedResults, &bestMu, &resultsMu)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return sharedResults, nil
}

func runTask(
	idx int,
	t task,
	n int,
	tm *timer.Timer,
	opts Options,
	workerSources []*probabilistic.Source,
	sharedBest search.BestMemoryPerTime,
	sharedResults search.MappedPaths,
	bestMu, resultsMu *sync.Mutex,
) error {
	start := time.Now()

	var d *search.Driver
	if opts.Accept != nil {
		d = search.NewProbabilistic(n, tm, opts.Accept, workerSources[idx])
	} else {
		d = search.NewDeterministic(n, tm)
	}

	bestMu.Lock()
	d.SetBestMemory(sharedBest)
	bestMu.Unlock()

	sinceSync := 0
	err := d.RunSweep(t.sweep, t.initialPath, func(int) bool {
		sinceSync++
		if sinceSync >= updateInterval || d.LastEventWasLeaf() {
			sinceSync = 0
			reconcile(bestMu, sharedBest, d)
		}

		return tm != nil && tm.Finished()
	})
	if err != nil {
		return err
	}

	found := mergeIntoShared(n, d, sharedBest, sharedResults, bestMu, resultsMu)
	if opts.OnTaskDone != nil {
		opts.OnTaskDone(idx, time.Since(start), found)
	}

	return nil
}

// reconcile takes the pointwise minimum of the worker's local frontier and
// the shared one back into shared, under lock, then copies the updated
// shared array back into the worker's local driver state.
func reconcile(mu *sync.Mutex, shared search.BestMemoryPerTime, d *search.Driver) {
	mu.Lock()
	defer mu.Unlock()

	local := d.BestMemory()
	for t := range shared {
		if local[t] < shared[t] {
			shared[t] = local[t]
		}
	}
	d.SetBestMemory(shared)
}

// mergeIntoShared performs the end-of-task merge: for every time index
// where the worker's final local bound is at least as good as the shared
// one, the shared bound and the corresponding result entry are overwritten.
// Locks are taken in a fixed order (frontier, then results) to match
// spec.md §4.8's documented lock ordering.
func mergeIntoShared(
	n int,
	d *search.Driver,
	sharedBest search.BestMemoryPerTime,
	sharedResults search.MappedPaths,
	bestMu, resultsMu *sync.Mutex,
) (found int) {
	bestMu.Lock()
	defer bestMu.Unlock()
	resultsMu.Lock()
	defer resultsMu.Unlock()

	local := d.BestMemory()
	localResults := d.Results()
	for t := 0; t <= n; t++ {
		if local[t] <= sharedBest[t] {
			sharedBest[t] = local[t]
			if entry, ok := localResults[t]; ok {
				sharedResults[t] = entry
				found++
			}
		}
	}

	return found
}
