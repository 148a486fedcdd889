package emst

import "sync/atomic"

// StackMode selects which manual-stack traversal variant
// findComponentNearestNeighbors uses (spec §4.4's "two stack variants").
// Both are correct; they only differ in how they avoid recomputing a
// popped node's distance-to-query.
type StackMode int

const (
	// StackModeCached pushes each stack frame's distance alongside its node
	// index, trading a little per-worker memory for avoiding a
	// recomputation on pop. Cheap on architectures where thread-local
	// memory per work item is cheap (CPU).
	StackModeCached StackMode = iota
	// StackModeCompact pushes only node indices and recomputes
	// distance-to-query on pop. Preferred on architectures where
	// thread-local memory is precious (GPU-like); ported here as a plain
	// CPU parallel-for kernel, which has no such memory pressure, but
	// kept as a genuine second code path since spec §4.4 requires both to
	// exist and be correct.
	StackModeCompact
)

// stackCapacity bounds the manual traversal stack. spec §9 sizes this as
// ceil(log2(n)) + 8 for a balanced BVH; 64 comfortably covers n up to 2^56,
// matching the reference implementation's fixed bound.
const stackCapacity = 64

// findComponentNearestNeighbors is the critical kernel of spec §4.4. For
// every leaf i, in parallel, it finds i's shortest outgoing edge to a
// leaf outside i's component within the component's shared radius, and
// atomically relaxes both the component's radius and its candidate edge.
func findComponentNearestNeighbors(bvh BVH, labels []int32, edges []atomic.Pointer[WeightedEdge], metric Metric, radii []atomic.Uint32, workers int, mode StackMode) {
	n := bvh.Size()
	if n <= 1 {
		return
	}
	parallelFor(n-1, 2*n-1, workers, func(i int) {
		leaf := int32(i)
		var best WeightedEdge
		switch mode {
		case StackModeCompact:
			best = traverseCompactStack(bvh, labels, metric, radii, leaf)
		default:
			best = traverseCPUStack(bvh, labels, metric, radii, leaf)
		}
		mergeComponentBest(edges, radii, n, labels[leaf], best)
	})
}

// mergeComponentBest conditionally merges a leaf's best candidate into its
// component's shared out-edge slot. The pre-check against the current
// value (rather than unconditionally attempting the CAS loop) reduces
// atomic contention for large components, per spec §4.4's closing note.
func mergeComponentBest(edges []atomic.Pointer[WeightedEdge], radii []atomic.Uint32, n int, component int32, best WeightedEdge) {
	if best.Target == -1 {
		return
	}
	slot := compSlot(component, n)
	current := loadEdge(&edges[slot])
	if best.Weight <= current.Weight {
		atomicMinEdge(&edges[slot], best)
	}
}
