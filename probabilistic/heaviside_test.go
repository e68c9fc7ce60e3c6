package probabilistic_test

import (
	"testing"

	"github.com/katalvlaran/mbqc-scheduler/probabilistic"
	"github.com/stretchr/testify/require"
)

func TestBuiltinHeavyside_ZeroBelowCutoff(t *testing.T) {
	in := probabilistic.Inputs{
		MinimalMem:        2,
		LastMaxMem:        5, // diff = 2 - 5 < 0 = cutoff
		NumTotalNodes:     10,
		NumRemainingNodes: 4,
	}
	require.Equal(t, 0.0, probabilistic.BuiltinHeavyside(in))
}

func TestBuiltinHeavyside_PositiveAboveCutoff(t *testing.T) {
	in := probabilistic.Inputs{
		MinimalMem:        10,
		LastMaxMem:        2,
		CurMem:            3,
		NumTotalNodes:     8,
		NumRemainingNodes: 2,
	}
	score := probabilistic.BuiltinHeavyside(in)
	require.Greater(t, score, 0.0)
	require.LessOrEqual(t, score, 64.0) // N^a with a=2, N=8 -> 64 is the max attainable
}

func TestParametrizedHeavyside_CustomCutoff(t *testing.T) {
	accept := probabilistic.NewParametrizedHeavyside(5, 1, 1, 1, 1, 1)
	in := probabilistic.Inputs{
		MinimalMem:        10,
		LastMaxMem:        8, // diff = 2 < cutoff(5)
		NumTotalNodes:     4,
		NumRemainingNodes: 1,
	}
	require.Equal(t, 0.0, accept(in))
}
