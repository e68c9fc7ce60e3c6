package probabilistic

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// defaultRNGSeed replaces a root seed of zero in NewSource, mirroring tsp's
// rngFromSeed seed==0 policy. Derive uses its mixed seeds as they are.
const defaultRNGSeed int64 = 1

// Source is a per-worker deterministic RNG stream. math/rand.Rand is not
// goroutine-safe, so each worker in package parallel holds its own Source
// derived from the root one; never share a Source across goroutines.
type Source struct {
	rng *rand.Rand
}

// NewSource seeds a root Source. A nil seed draws 8 bytes from the OS
// entropy source (crypto/rand) instead of a caller-supplied value.
func NewSource(seed *uint64) *Source {
	var s int64
	if seed != nil {
		s = int64(*seed)
	} else {
		var buf [8]byte
		_, _ = crand.Read(buf[:])
		s = int64(binary.LittleEndian.Uint64(buf[:]))
	}

	return &Source{rng: rngFromSeed(s)}
}

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed via a SplitMix64-style avalanche finalizer, eliminating
// correlation between sibling substreams.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive returns an independent child Source for the given stream id.
// s.rng is advanced by one draw first, so deriving the same stream id
// twice from the same parent never yields identical children by mistake.
func (s *Source) Derive(stream uint64) *Source {
	parent := s.rng.Int63()

	return &Source{rng: rand.New(rand.NewSource(deriveSeed(parent, stream)))}
}

// Float64 draws a uniform value in [0,1).
func (s *Source) Float64() float64 { return s.rng.Float64() }
