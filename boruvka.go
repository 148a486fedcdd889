package emst

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// boruvkaState holds the shared, per-call scratch state for the Borůvka
// MST driver (spec §4.1). All arrays are sized from n once at
// construction and reused across rounds; nothing here is process-global
// (spec §5's "no process-wide state").
type boruvkaState struct {
	bvh    BVH
	metric Metric
	n      int

	workers int
	mode    StackMode

	parents  []int32
	labels   []int32
	arrivals []int32
	radii    []atomic.Uint32
	edges    []atomic.Pointer[WeightedEdge]

	mstEdges []WeightedEdge
	numEdges atomic.Int32

	progress func(round, numComponents int)
	logger   *log.Logger
	runID    string
}

func newBoruvkaState(bvh BVH, metric Metric, cfg Config) *boruvkaState {
	n := bvh.Size()
	return &boruvkaState{
		bvh:      bvh,
		metric:   metric,
		n:        n,
		workers:  cfg.Workers,
		mode:     cfg.StackMode,
		parents:  buildParents(bvh),
		labels:   initLabels(n),
		arrivals: make([]int32, 2*n-1),
		radii:    make([]atomic.Uint32, n),
		edges:    make([]atomic.Pointer[WeightedEdge], n),
		mstEdges: make([]WeightedEdge, n-1),
		progress: cfg.ProgressFunc,
		logger:   cfg.Logger,
		runID:    uuid.NewString(),
	}
}

// resetRound clears the per-round scratch state: arrivals (label
// reduction's per-parent counters), component_out_edges, and radii, per
// spec §4.1 step 2.
func (s *boruvkaState) resetRound() {
	for i := range s.arrivals {
		s.arrivals[i] = 0
	}
	inf := float32(math.Inf(1))
	for i := range s.radii {
		storeFloat32Bits(&s.radii[i], inf)
	}
	for i := range s.edges {
		s.edges[i].Store(nil)
	}
}

// run drives Borůvka rounds until one component remains, then de-permutes
// edge endpoints back to original primitive indices (spec §4.1).
func (s *boruvkaState) run() ([]WeightedEdge, error) {
	n := s.n
	numComponents := n
	round := 0

	for numComponents > 1 {
		round++

		// Arrivals must be zero before label reduction runs; the rest of
		// the round's scratch state resets after (label reduction is a
		// separate phase, not fused with the reset).
		for i := range s.arrivals {
			s.arrivals[i] = 0
		}
		reduceLabels(s.bvh, s.parents, s.labels, s.arrivals, s.workers)

		s.resetRound()

		resetSharedRadii(s.bvh, s.labels, s.metric, s.radii, s.workers)
		findComponentNearestNeighbors(s.bvh, s.labels, s.edges, s.metric, s.radii, s.workers, s.mode)
		updateComponentsAndEdges(s.labels, s.edges, s.mstEdges, &s.numEdges, n, s.workers)

		newNumComponents := n - int(s.numEdges.Load())
		if newNumComponents == numComponents {
			return nil, fmt.Errorf("emst: round %d failed to reduce component count from %d (metric may not dominate Euclidean distance)", round, numComponents)
		}
		numComponents = newNumComponents

		if s.progress != nil {
			s.progress(round, numComponents)
		}
		s.logger.Debug("boruvka round complete", "run", s.runID, "round", round, "components", numComponents)
	}

	finalizeEdges(s.bvh, s.mstEdges, s.workers)
	return s.mstEdges, nil
}

// finalizeEdges reverses the leaf permutation on every committed edge's
// endpoints, replacing BVH-leaf indices with original primitive indices
// (spec §4.1's final de-permutation pass).
func finalizeEdges(bvh BVH, edges []WeightedEdge, workers int) {
	parallelFor(0, len(edges), workers, func(i int) {
		edges[i].Source = bvh.LeafPermutation(edges[i].Source)
		edges[i].Target = bvh.LeafPermutation(edges[i].Target)
	})
}
