package scheduler

import (
	"github.com/katalvlaran/mbqc-scheduler/spatial"
	"github.com/katalvlaran/mbqc-scheduler/timeorder"
)

// Scheduler is a single node of the search tree: the pair (TimeOrder,
// SpatialGraph) at a given point of partial execution.
type Scheduler struct {
	timeOrder *timeorder.TimeOrder
	spatial   *spatial.Graph
}

// EventKind distinguishes the two events Sweep emits.
type EventKind uint8

const (
	// Forward reports a descent into a child via Subset.
	Forward EventKind = iota
	// Backward reports a return from a subtree.
	Backward
)

// Event is one step of a Sweep. For Forward, Subset is the chosen
// measurement set. For Backward, IsLeaf/LeafPeak report whether the
// subtree just closed ended at a leaf (every node measured) and, if so,
// its peak space cost.
type Event struct {
	Kind     EventKind
	Subset   []int32
	IsLeaf   bool
	LeafPeak int
}

type frame struct {
	scheduler   *Scheduler
	partitioner *timeorder.Partitioner
}

// Sweep is a depth-first walker over a Scheduler tree, implemented as an
// explicit stack of (Scheduler, child-iterator) frames.
type Sweep struct {
	stack []frame
}
