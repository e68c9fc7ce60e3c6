package probabilistic_test

import (
	"testing"

	"github.com/katalvlaran/mbqc-scheduler/probabilistic"
	"github.com/stretchr/testify/require"
)

func TestSource_SameSeedReproducible(t *testing.T) {
	seed := uint64(42)
	s1 := probabilistic.NewSource(&seed)
	s2 := probabilistic.NewSource(&seed)

	for i := 0; i < 5; i++ {
		require.Equal(t, s1.Float64(), s2.Float64())
	}
}

func TestSource_DifferentSeedsDiverge(t *testing.T) {
	seedA, seedB := uint64(1), uint64(2)
	a := probabilistic.NewSource(&seedA)
	b := probabilistic.NewSource(&seedB)

	require.NotEqual(t, a.Float64(), b.Float64())
}

func TestSource_DeriveIsDeterministicPerStream(t *testing.T) {
	seed := uint64(7)
	root1 := probabilistic.NewSource(&seed)
	root2 := probabilistic.NewSource(&seed)

	c1 := root1.Derive(3)
	c2 := root2.Derive(3)
	require.Equal(t, c1.Float64(), c2.Float64())
}

func TestSource_NilSeedDoesNotPanic(t *testing.T) {
	s := probabilistic.NewSource(nil)
	require.NotPanics(t, func() { s.Float64() })
}
