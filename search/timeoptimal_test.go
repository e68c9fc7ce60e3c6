package search_test

import (
	"testing"

	"github.com/katalvlaran/mbqc-scheduler/scheduler"
	"github.com/katalvlaran/mbqc-scheduler/search"
	"github.com/katalvlaran/mbqc-scheduler/spatial"
	"github.com/katalvlaran/mbqc-scheduler/timeorder"
	"github.com/stretchr/testify/require"
)

func buildScheduler(t *testing.T, n int, edges [][2]int, layers timeorder.Layers) *scheduler.Scheduler {
	t.Helper()
	sg, err := spatial.New(n, edges)
	require.NoError(t, err)
	to, err := timeorder.New(n, layers, nil)
	require.NoError(t, err)

	return scheduler.New(to, sg)
}

func TestTimeOptimal_EmptyOrder(t *testing.T) {
	root := buildScheduler(t, 0, nil, nil)
	path, err := search.TimeOptimal(root)
	require.NoError(t, err)
	require.Equal(t, 0, path.Time)
	require.Equal(t, 0, path.Space)
	require.Empty(t, path.Steps)
}

func TestTimeOptimal_ChainOfThree(t *testing.T) {
	root := buildScheduler(t, 3, [][2]int{{0, 1}, {1, 2}}, timeorder.Layers{
		{{Node: 0}},
		{{Node: 1, Predecessors: []int{0}}},
		{{Node: 2, Predecessors: []int{1}}},
	})
	path, err := search.TimeOptimal(root)
	require.NoError(t, err)
	require.Equal(t, 3, path.Time)
	require.Equal(t, 2, path.Space)
	require.Equal(t, [][]int32{{0}, {1}, {2}}, path.Steps)
}

func TestTimeOptimal_ParallelizableTriangle(t *testing.T) {
	root := buildScheduler(t, 3, [][2]int{{0, 1}, {0, 2}, {1, 2}}, timeorder.Layers{
		{{Node: 0}, {Node: 1}, {Node: 2}},
	})
	path, err := search.TimeOptimal(root)
	require.NoError(t, err)
	require.Equal(t, 1, path.Time)
	require.Equal(t, 3, path.Space)
	require.Equal(t, [][]int32{{0, 1, 2}}, path.Steps)
}
