package scheduler

import (
	"github.com/katalvlaran/mbqc-scheduler/spatial"
	"github.com/katalvlaran/mbqc-scheduler/timeorder"
)

// New pairs an already-built TimeOrder and SpatialGraph into a root
// Scheduler node.
func New(to *timeorder.TimeOrder, sg *spatial.Graph) *Scheduler {
	return &Scheduler{timeOrder: to, spatial: sg}
}

// TimeOrder returns the partial-order state of this node.
func (s *Scheduler) TimeOrder() *timeorder.TimeOrder { return s.timeOrder }

// Spatial returns the spatial-graph state of this node.
func (s *Scheduler) Spatial() *spatial.Graph { return s.spatial }

// AtLeaf reports whether every node has been measured, and if so the peak
// space cost observed along the path that reached this node.
func (s *Scheduler) AtLeaf() (peak int, ok bool) {
	if !s.timeOrder.AtLeaf() {
		return 0, false
	}

	return s.spatial.Peak(), true
}

// HasUnmeasureable reports whether some node still has unmet predecessors.
func (s *Scheduler) HasUnmeasureable() bool { return s.timeOrder.HasUnmeasureable() }

// Clone returns an independent copy of both sub-components.
func (s *Scheduler) Clone() *Scheduler {
	return &Scheduler{
		timeOrder: s.timeOrder.Clone(),
		spatial:   s.spatial.Clone(),
	}
}

// Focus commits S on a cloned TimeOrder first; the SpatialGraph is only
// advanced, via its unchecked fast path, once the TimeOrder has accepted
// S, so spatial state is never mutated on a rejected subset.
func (s *Scheduler) Focus(set []int32) (*Scheduler, error) {
	to := s.timeOrder.Clone()
	if err := to.FocusInPlace(set); err != nil {
		return nil, err
	}
	sg := s.spatial.FocusUnchecked(set)

	return &Scheduler{timeOrder: to, spatial: sg}, nil
}

// Partitioner returns a fresh enumerator over this node's legal next
// measurement subsets.
func (s *Scheduler) Partitioner() *timeorder.Partitioner {
	return timeorder.NewPartitioner(s.timeOrder)
}
