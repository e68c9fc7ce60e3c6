package mbqcsched

import (
	"github.com/katalvlaran/mbqc-scheduler/parallel"
	"github.com/katalvlaran/mbqc-scheduler/probabilistic"
	"github.com/katalvlaran/mbqc-scheduler/scheduler"
	"github.com/katalvlaran/mbqc-scheduler/search"
	"github.com/katalvlaran/mbqc-scheduler/spatial"
	"github.com/katalvlaran/mbqc-scheduler/timeorder"
	"github.com/katalvlaran/mbqc-scheduler/timer"
)

// Run builds a Scheduler over n nodes from edges and layers (with an
// optional allowed subset restricting which nodes may ever be measured,
// nil meaning all), then either produces the single time-optimal path
// (opts.DoSearch == false) or the full Pareto frontier (true), honoring
// opts.NThreads, opts.Timeout, and opts.Probabilistic.
func Run(n int, edges [][2]int, layers timeorder.Layers, allowed []int, opts Options) (Result, error) {
	if opts.Probabilistic && opts.Accept == nil {
		return Result{}, ErrProbabilisticNeedsAccept
	}

	sg, err := spatial.New(n, edges)
	if err != nil {
		return Result{}, err
	}
	to, err := timeorder.New(n, layers, allowed)
	if err != nil {
		return Result{}, err
	}
	root := scheduler.New(to, sg)

	if !opts.DoSearch {
		path, err := search.TimeOptimal(root)
		if err != nil {
			return Result{}, err
		}

		return Result{Paths: []Path{toPath(path)}}, nil
	}

	var tm *timer.Timer
	if opts.Timeout > 0 {
		tm = timer.New()
		tm.Start(opts.Timeout)
		defer tm.Close()
	}

	var accept probabilistic.Accept
	var rng *probabilistic.Source
	if opts.Probabilistic {
		accept = opts.Accept
		rng = probabilistic.NewSource(opts.Seed)
	}

	var results search.MappedPaths
	var timedOut bool

	if opts.NThreads >= 2 {
		taskBound := opts.TaskBound
		if taskBound <= 0 {
			taskBound = DefaultTaskBound
		}
		results, err = parallel.Search(root, n, tm, parallel.Options{
			NThreads:  opts.NThreads,
			TaskBound: taskBound,
			Accept:    accept,
			RNG:       rng,
		})
		if err != nil {
			return Result{}, err
		}
		timedOut = tm != nil && tm.Finished()
	} else {
		var d *search.Driver
		if opts.Probabilistic {
			d = search.NewProbabilistic(n, tm, accept, rng)
		} else {
			d = search.NewDeterministic(n, tm)
		}
		if err := d.Run(root, nil); err != nil {
			return Result{}, err
		}
		results = d.Results()
		timedOut = d.TimedOut()
	}

	pareto := search.FilterPareto(results, n)
	paths := make([]Path, len(pareto))
	for i, p := range pareto {
		paths[i] = toPath(p)
	}

	return Result{Paths: paths, TimedOut: timedOut}, nil
}

func toPath(p search.Path) Path {
	return Path{Time: p.Time, Space: p.Space, Steps: p.Steps}
}
