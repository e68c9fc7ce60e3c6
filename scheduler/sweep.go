package scheduler

// NewSweep starts a depth-first walk rooted at root.
func NewSweep(root *Scheduler) *Sweep {
	return &Sweep{stack: []frame{newFrame(root)}}
}

func newFrame(s *Scheduler) frame {
	return frame{scheduler: s, partitioner: s.Partitioner()}
}

// Current returns the Scheduler at the top of the walk stack, or nil if
// the walk has ended (the root has been fully unwound).
func (sw *Sweep) Current() *Scheduler {
	if len(sw.stack) == 0 {
		return nil
	}

	return sw.stack[len(sw.stack)-1].scheduler
}

// Next advances the walk by one event. The returned bool is false once the
// walk is exhausted (root unwound), in which case Event is the zero value.
// err is non-nil only if focusing a partitioner-produced subset failed,
// which indicates a TimeOrder/SpatialGraph desynchronization bug rather
// than a normal search outcome.
func (sw *Sweep) Next() (Event, bool, error) {
	if len(sw.stack) == 0 {
		return Event{}, false, nil
	}

	top := &sw.stack[len(sw.stack)-1]
	subset, ok := top.partitioner.Next()
	if ok {
		child, err := top.scheduler.Focus(subset)
		if err != nil {
			return Event{}, false, err
		}
		sw.stack = append(sw.stack, newFrame(child))

		return Event{Kind: Forward, Subset: subset}, true, nil
	}

	popped := top.scheduler
	sw.stack = sw.stack[:len(sw.stack)-1]
	if peak, isLeaf := popped.AtLeaf(); isLeaf {
		return Event{Kind: Backward, IsLeaf: true, LeafPeak: peak}, true, nil
	}

	return Event{Kind: Backward}, true, nil
}

// SkipCurrent prunes the current frontier: the top-of-stack frame is
// discarded without being explored further. It reports whether the stack
// still has frames afterward; false means the root itself was unwound and
// the sweep must terminate.
func (sw *Sweep) SkipCurrent() bool {
	if len(sw.stack) == 0 {
		return false
	}
	sw.stack = sw.stack[:len(sw.stack)-1]

	return len(sw.stack) > 0
}
