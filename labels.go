package emst

import "sync/atomic"

// labelSentinel marks an internal node whose subtree is not monochromatic:
// §4.3 requires the nearest-neighbor traversal's pruning predicate to treat
// any such node as "must traverse, cannot trust the cached label".
const labelSentinel int32 = -1

// initLabels returns a length-(2n-1) label array with leaves [n-1, 2n-2]
// initialized to their own node index (each point starts as its own
// component) and internal nodes seeded to the sentinel.
func initLabels(n int) []int32 {
	total := 2*n - 1
	labels := make([]int32, total)
	for i := 0; i < n-1; i++ {
		labels[i] = labelSentinel
	}
	for i := n - 1; i < total; i++ {
		labels[i] = int32(i)
	}
	return labels
}

// reduceLabels propagates leaf labels upward: an internal node's label
// becomes the common leaf label of its subtree if monochromatic, else the
// sentinel value. Every leaf climbs toward the root through the parent
// table; an atomic per-parent arrival counter ensures the internal node's
// label is posted exactly once, by whichever of its two children arrives
// second (the Go memory model guarantees the atomic increment happens
// after both children's label stores, so the second arrival always
// observes a fully published sibling label).
//
// arrivals must be a zeroed slice of length 2n-1 reused across rounds by
// the caller (see boruvka.go), sized once and reset between rounds instead
// of reallocated.
func reduceLabels(bvh BVH, parents []int32, labels []int32, arrivals []int32, workers int) {
	n := bvh.Size()
	if n <= 1 {
		return
	}
	parallelFor(n-1, 2*n-1, workers, func(i int) {
		climbAndReduce(bvh, parents, labels, arrivals, int32(i))
	})
}

func climbAndReduce(bvh BVH, parents []int32, labels []int32, arrivals []int32, node int32) {
	for {
		parent := parents[node]
		if parent < 0 {
			return
		}
		if atomic.AddInt32(&arrivals[parent], 1) != 2 {
			return
		}
		left, right := bvh.Left(parent), bvh.Right(parent)
		leftLabel := atomic.LoadInt32(&labels[left])
		rightLabel := atomic.LoadInt32(&labels[right])
		if leftLabel == rightLabel && leftLabel != labelSentinel {
			atomic.StoreInt32(&labels[parent], leftLabel)
		} else {
			atomic.StoreInt32(&labels[parent], labelSentinel)
		}
		node = parent
	}
}
