package search

import "github.com/katalvlaran/mbqc-scheduler/scheduler"

// TimeOptimal performs the non-branching greedy pass: at every step it
// focuses the entire current measurable set, saturating the partial order
// one layer at a time. Its time cost equals the number of layers in the
// partial order (property 5); it shares scheduler.Scheduler.Focus with the
// branch-and-bound pass rather than walking the spatial graph on its own.
func TimeOptimal(root *scheduler.Scheduler) (Path, error) {
	current := root
	var steps [][]int32

	for {
		if peak, ok := current.AtLeaf(); ok {
			return Path{Time: len(steps), Space: peak, Steps: steps}, nil
		}

		measurable := current.TimeOrder().Measurable()
		set := make([]int32, len(measurable))
		copy(set, measurable)

		next, err := current.Focus(set)
		if err != nil {
			return Path{}, err
		}
		steps = append(steps, set)
		current = next
	}
}
