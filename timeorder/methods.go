package timeorder

// New builds a TimeOrder from a layered partial order over n nodes.
// allowed, if non-nil, restricts which nodes may ever be measured; nodes
// outside it are auto-resolved the instant their predecessor counter
// reaches zero — they satisfy their successors' predecessor counts but
// never appear in Measurable, Deferred, or NumRemainingNodes. A nil
// allowed means every node is eligible, the default described by the
// partial-order front.
func New(n int, layers Layers, allowed []int) (*TimeOrder, error) {
	remaining := make([]int32, n)
	successors := make([][]int32, n)

	for _, layer := range layers {
		for _, pr := range layer {
			if pr.Node < 0 || pr.Node >= n {
				return nil, ErrMissingInput
			}
			for _, p := range pr.Predecessors {
				if p < 0 || p >= n {
					return nil, ErrMissingInput
				}
				remaining[pr.Node]++
				successors[p] = append(successors[p], int32(pr.Node))
			}
		}
	}

	allowedMask := make([]bool, n)
	if allowed == nil {
		for i := range allowedMask {
			allowedMask[i] = true
		}
	} else {
		for _, a := range allowed {
			if a < 0 || a >= n {
				return nil, ErrMissingInput
			}
			allowedMask[a] = true
		}
	}

	numAllowed := 0
	for _, a := range allowedMask {
		if a {
			numAllowed++
		}
	}

	t := &TimeOrder{
		successors: successors,
		allowed:    allowedMask,
		remaining:  remaining,
		status:     make([]nodeStatus, n),
		numAllowed: numAllowed,
	}
	for i := 0; i < n; i++ {
		if remaining[i] == 0 {
			t.resolveZero(int32(i))
		}
	}

	return t, nil
}

// resolveZero is called exactly once per node, the moment its predecessor
// counter reaches zero. An allowed node becomes Measurable; an excluded
// node is marked resolved without ever entering Measurable/Deferred, and
// its own successors are cascaded through the same logic.
func (t *TimeOrder) resolveZero(node int32) {
	if t.status[node] != statusWaiting {
		return
	}
	if !t.allowed[node] {
		t.status[node] = statusExcluded
		for _, succ := range t.successors[node] {
			t.remaining[succ]--
			if t.remaining[succ] == 0 {
				t.resolveZero(succ)
			}
		}

		return
	}
	t.status[node] = statusMeasurable
	t.measurable = append(t.measurable, node)
}

// Measurable returns the current measurable set. The caller must not
// mutate the returned slice.
func (t *TimeOrder) Measurable() []int32 { return t.measurable }

// Deferred returns the current deferred set. The caller must not mutate
// the returned slice.
func (t *TimeOrder) Deferred() []int32 { return t.deferred }

// HasUnmeasureable reports whether some allowed node still has unmet
// predecessors.
func (t *TimeOrder) HasUnmeasureable() bool {
	accountedFor := t.numAllowedDone + len(t.measurable) + len(t.deferred)

	return accountedFor < t.numAllowed
}

// NumRemainingNodes returns the count of allowed nodes not yet measured.
func (t *TimeOrder) NumRemainingNodes() int {
	return t.numAllowed - t.numAllowedDone
}

// NumTotalNodes returns the total count of allowed nodes.
func (t *TimeOrder) NumTotalNodes() int { return t.numAllowed }

// AtLeaf reports whether every allowed node has been measured.
func (t *TimeOrder) AtLeaf() bool { return t.numAllowedDone == t.numAllowed }

// Clone returns a deep copy of the mutable state (remaining counters,
// status, measurable, deferred) sharing the immutable successors/allowed
// slices. O(N).
func (t *TimeOrder) Clone() *TimeOrder {
	remaining := make([]int32, len(t.remaining))
	copy(remaining, t.remaining)
	status := make([]nodeStatus, len(t.status))
	copy(status, t.status)
	measurable := make([]int32, len(t.measurable))
	copy(measurable, t.measurable)
	deferred := make([]int32, len(t.deferred))
	copy(deferred, t.deferred)

	return &TimeOrder{
		successors:     t.successors,
		allowed:        t.allowed,
		remaining:      remaining,
		status:         status,
		measurable:     measurable,
		deferred:       deferred,
		numAllowed:     t.numAllowed,
		numAllowedDone: t.numAllowedDone,
	}
}

// FocusInPlace commits S: every s must currently be Measurable or
// Deferred. s is marked measured; predecessor counters of its successors
// are decremented, newly-zero allowed successors become the new
// Measurable set; every node that was Measurable or Deferred but not
// chosen becomes the new Deferred set.
func (t *TimeOrder) FocusInPlace(s []int32) error {
	chosen := make(map[int32]struct{}, len(s))
	for _, node := range s {
		switch t.status[node] {
		case statusMeasurable, statusDeferred:
			chosen[node] = struct{}{}
		case statusMeasured:
			return ErrAlreadyMeasured
		default:
			return ErrNotMeasurable
		}
	}

	newDeferred := make([]int32, 0, len(t.measurable)+len(t.deferred))
	for _, node := range t.measurable {
		if _, ok := chosen[node]; !ok {
			t.status[node] = statusDeferred
			newDeferred = append(newDeferred, node)
		}
	}
	for _, node := range t.deferred {
		if _, ok := chosen[node]; !ok {
			newDeferred = append(newDeferred, node)
		}
	}

	for _, node := range s {
		t.status[node] = statusMeasured
		t.numAllowedDone++
	}

	t.measurable = t.measurable[:0]
	t.deferred = newDeferred

	for _, node := range s {
		for _, succ := range t.successors[node] {
			t.remaining[succ]--
			if t.remaining[succ] == 0 {
				t.resolveZero(succ)
			}
		}
	}

	return nil
}
