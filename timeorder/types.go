package timeorder

// NodePreds pairs a node with the list of predecessors it must wait on.
// Predecessors of a node in layer k+1 must all belong to layers 0..k.
type NodePreds struct {
	Node         int
	Predecessors []int
}

// Layers is the layered partial-order input: Layers[0] has no
// predecessors; every node in Layers[k+1] lists predecessors drawn only
// from Layers[0]..Layers[k].
type Layers [][]NodePreds

// nodeStatus tracks, per node, whether it still has unmet predecessors
// (remaining > 0), is measurable, deferred, measured, or excluded from the
// allowed subset and auto-resolved.
type nodeStatus uint8

const (
	statusWaiting nodeStatus = iota
	statusMeasurable
	statusDeferred
	statusMeasured
	// statusExcluded marks a node outside the caller-supplied allowed
	// subset; it is auto-resolved (treated as measured) once its
	// predecessor counter reaches zero, but never appears in measurable,
	// deferred, or the remaining-node count.
	statusExcluded
)

// TimeOrder is the partial-order front: per-node predecessor counters, the
// measurable set, and the deferred set. The layered structure and the
// successor lists derived from it are immutable once built and shared
// across every clone; only the mutable per-node counters/status/sets are
// copied on branch.
type TimeOrder struct {
	successors []([]int32) // immutable, shared across clones
	allowed    []bool      // immutable, shared across clones

	remaining []int32
	status    []nodeStatus

	measurable []int32
	deferred   []int32

	numAllowed      int // total count of allowed nodes (N if allowed was nil)
	numAllowedDone  int // count of allowed nodes that reached statusMeasured
}
