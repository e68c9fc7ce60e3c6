package scheduler_test

import (
	"testing"

	"github.com/katalvlaran/mbqc-scheduler/scheduler"
	"github.com/katalvlaran/mbqc-scheduler/spatial"
	"github.com/katalvlaran/mbqc-scheduler/timeorder"
	"github.com/stretchr/testify/require"
)

func newChainOfThree(t *testing.T) *scheduler.Scheduler {
	t.Helper()
	sg, err := spatial.New(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	to, err := timeorder.New(3, timeorder.Layers{
		{{Node: 0, Predecessors: nil}},
		{{Node: 1, Predecessors: []int{0}}},
		{{Node: 2, Predecessors: []int{1}}},
	}, nil)
	require.NoError(t, err)

	return scheduler.New(to, sg)
}

func TestSweep_EmptyOrderYieldsImmediateLeaf(t *testing.T) {
	sg, err := spatial.New(0, nil)
	require.NoError(t, err)
	to, err := timeorder.New(0, nil, nil)
	require.NoError(t, err)

	sw := scheduler.NewSweep(scheduler.New(to, sg))

	ev, more, err := sw.Next()
	require.NoError(t, err)
	require.True(t, more)
	require.Equal(t, scheduler.Backward, ev.Kind)
	require.True(t, ev.IsLeaf)
	require.Equal(t, 0, ev.LeafPeak)

	_, more, err = sw.Next()
	require.NoError(t, err)
	require.False(t, more)
}

func TestSweep_ChainOfThreeSinglePath(t *testing.T) {
	sw := scheduler.NewSweep(newChainOfThree(t))

	var events []scheduler.Event
	for {
		ev, more, err := sw.Next()
		require.NoError(t, err)
		if !more {
			break
		}
		events = append(events, ev)
	}

	// three Forward descents, then four Backward: the leaf at the deepest,
	// then each ancestor frame up to and including the root.
	require.Len(t, events, 7)
	for i := 0; i < 3; i++ {
		require.Equal(t, scheduler.Forward, events[i].Kind)
	}
	require.Equal(t, scheduler.Backward, events[3].Kind)
	require.True(t, events[3].IsLeaf)
	require.Equal(t, 2, events[3].LeafPeak)
	require.Equal(t, scheduler.Backward, events[4].Kind)
	require.False(t, events[4].IsLeaf)
	require.Equal(t, scheduler.Backward, events[5].Kind)
	require.False(t, events[5].IsLeaf)
	require.Equal(t, scheduler.Backward, events[6].Kind)
	require.False(t, events[6].IsLeaf)
}

func TestSweep_SkipCurrentPrunesWithoutExploring(t *testing.T) {
	sw := scheduler.NewSweep(newChainOfThree(t))

	ev, more, err := sw.Next()
	require.NoError(t, err)
	require.True(t, more)
	require.Equal(t, scheduler.Forward, ev.Kind)

	stillHasFrames := sw.SkipCurrent()
	require.True(t, stillHasFrames) // the root frame remains, even though exhausted

	// the root's partitioner is already exhausted (chain-of-3 has a single
	// child per level), so the next Next() call pops it with Backward(None).
	ev, more, err = sw.Next()
	require.NoError(t, err)
	require.True(t, more)
	require.Equal(t, scheduler.Backward, ev.Kind)
	require.False(t, ev.IsLeaf)

	_, more, err = sw.Next()
	require.NoError(t, err)
	require.False(t, more)
}
