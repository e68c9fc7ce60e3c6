package probabilistic

import "math"

// BuiltinHeavyside is the built-in acceptance family: cutoff = 0 and
// exponents (a,b,c,d,e) = (2,1,1,3,1).
func BuiltinHeavyside(in Inputs) float64 {
	return heavyside(in, 0, 2, 1, 1, 3, 1)
}

// NewParametrizedHeavyside returns an Accept function of the same shape as
// BuiltinHeavyside with a caller-chosen cutoff and exponents.
func NewParametrizedHeavyside(cutoff, a, b, c, d, e int) Accept {
	return func(in Inputs) float64 {
		return heavyside(in, cutoff, a, b, c, d, e)
	}
}

// heavyside computes diff = minimal_mem - max(cur_mem, last_max_mem);
// returns 0 if diff < cutoff, else N^a * exp(-(N^b * R^c) / (diff^d * M^e))
// with R = num_remaining_nodes, M = num_total_nodes - num_remaining_nodes,
// N = num_total_nodes.
func heavyside(in Inputs, cutoff, a, b, c, d, e int) float64 {
	maxMem := in.LastMaxMem
	if in.CurMem > maxMem {
		maxMem = in.CurMem
	}
	diff := in.MinimalMem - maxMem
	if diff < cutoff {
		return 0
	}

	n := float64(in.NumTotalNodes)
	r := float64(in.NumRemainingNodes)
	m := float64(in.NumTotalNodes - in.NumRemainingNodes)
	dd := float64(diff)

	numerator := math.Pow(n, float64(b)) * math.Pow(r, float64(c))
	denominator := math.Pow(dd, float64(d)) * math.Pow(m, float64(e))

	return math.Pow(n, float64(a)) * math.Exp(-numerator/denominator)
}
