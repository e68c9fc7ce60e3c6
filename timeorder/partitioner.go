package timeorder

// Partitioner enumerates the nonempty subsets of measurable ∪ deferred
// that include every element of deferred: equivalently, every subset of
// measurable (including the empty one, unless deferred is itself empty)
// combined with the full deferred set. Enumeration order is deterministic:
// larger subsets first, biasing the initial descent toward the
// time-optimal schedule; ties are broken by ascending bitmask value.
//
// A Partitioner is a lazy, restartable iterator: Next is called
// repeatedly until it reports done, and the sequence can be recreated
// identically from the same TimeOrder snapshot.
type Partitioner struct {
	measurable []int32
	deferred   []int32
	order      []uint32 // subset-of-measurable bitmasks, descending popcount then ascending value
	pos        int
}

// NewPartitioner snapshots the current measurable/deferred sets of t and
// prepares the subset enumeration. The snapshot is immune to later
// mutation of t (the slices are copied).
func NewPartitioner(t *TimeOrder) *Partitioner {
	measurable := make([]int32, len(t.measurable))
	copy(measurable, t.measurable)
	deferred := make([]int32, len(t.deferred))
	copy(deferred, t.deferred)

	m := len(measurable)
	total := 1 << uint(m)
	order := make([]uint32, 0, total)
	for mask := 0; mask < total; mask++ {
		order = append(order, uint32(mask))
	}
	sortByPopcountDescThenValueAsc(order)

	return &Partitioner{
		measurable: measurable,
		deferred:   deferred,
		order:      order,
	}
}

// Len returns the number of bitmasks not yet consumed. When deferred is
// empty this includes the empty mask, which Next skips, so Len can exceed
// the number of subsets still to come by one. Bounded by 2^|measurable|.
func (p *Partitioner) Len() int { return len(p.order) - p.pos }

// Next returns the next subset (measurable-subset ∪ deferred) and true, or
// (nil, false) once the enumeration is exhausted.
func (p *Partitioner) Next() ([]int32, bool) {
	for p.pos < len(p.order) {
		mask := p.order[p.pos]
		p.pos++
		if mask == 0 && len(p.deferred) == 0 {
			// an empty measurable-subset with no deferred nodes would
			// produce an empty step; not a legal partition.
			continue
		}

		subset := make([]int32, 0, bitsOnesCount(mask)+len(p.deferred))
		for i, node := range p.measurable {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, node)
			}
		}
		subset = append(subset, p.deferred...)

		return subset, true
	}

	return nil, false
}

// Reset rewinds the iterator to the beginning of the enumeration.
func (p *Partitioner) Reset() { p.pos = 0 }

func bitsOnesCount(x uint32) int {
	count := 0
	for x != 0 {
		x &= x - 1
		count++
	}

	return count
}

// sortByPopcountDescThenValueAsc sorts masks so that larger subsets (more
// set bits) come first, with ties broken by ascending integer value. A
// plain insertion sort is sufficient: the measurable set is small enough
// in practice (bounded by the branching factor of a single search-tree
// layer) that a dependency on the sort package buys nothing here.
func sortByPopcountDescThenValueAsc(a []uint32) {
	less := func(i, j uint32) bool {
		ci, cj := bitsOnesCount(i), bitsOnesCount(j)
		if ci != cj {
			return ci > cj
		}

		return i < j
	}
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && less(a[j], a[j-1]); j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}
