package emst

import (
	"math"
	"sync/atomic"
)

// traverseCompactStack is the StackModeCompact traversal variant: the
// manual stack carries only node indices; a pop recomputes
// distance-to-query from the bounding volumes. Costs one extra box
// distance per pop in exchange for half the stack memory, the trade spec
// §4.4 describes as preferable on architectures where thread-local memory
// per work item is precious.
func traverseCompactStack(bvh BVH, labels []int32, metric Metric, radii []atomic.Uint32, leaf int32) WeightedEdge {
	n := bvh.Size()
	component := labels[leaf]
	slot := compSlot(component, n)
	leafPerm := bvh.LeafPermutation(leaf)
	boxI := bvh.BoundingVolume(leaf)

	best := WeightedEdge{Source: leaf, Target: -1, Weight: float32(math.Inf(1))}

	var nodeStack [stackCapacity]int32
	sp := 0

	node := bvh.Root()
	var distanceNode float32 = 0

	for {
		radius := loadFloat32Bits(&radii[slot])
		var traverseLeft, traverseRight bool
		var left, right int32
		var distLeft, distRight float32

		if distanceNode <= radius {
			left, right = bvh.Left(node), bvh.Right(node)
			distLeft = boxDistance(boxI, bvh.BoundingVolume(left))
			distRight = boxDistance(boxI, bvh.BoundingVolume(right))

			if labels[left] != component && distLeft <= radius {
				if bvh.IsLeaf(left) {
					candDist := metric.Evaluate(leafPerm, bvh.LeafPermutation(left), distLeft)
					candidate := WeightedEdge{Source: leaf, Target: left, Weight: candDist}
					if candidate.less(best) {
						best = candidate
						atomicMinFloat32Bits(&radii[slot], candDist)
						radius = loadFloat32Bits(&radii[slot])
					}
				} else {
					traverseLeft = true
				}
			}

			if labels[right] != component && distRight <= radius {
				if bvh.IsLeaf(right) {
					candDist := metric.Evaluate(leafPerm, bvh.LeafPermutation(right), distRight)
					candidate := WeightedEdge{Source: leaf, Target: right, Weight: candDist}
					if candidate.less(best) {
						best = candidate
						atomicMinFloat32Bits(&radii[slot], candDist)
					}
				} else {
					traverseRight = true
				}
			}
		}

		switch {
		case !traverseLeft && !traverseRight:
			if sp == 0 {
				return best
			}
			sp--
			node = nodeStack[sp]
			distanceNode = boxDistance(boxI, bvh.BoundingVolume(node))
		case traverseLeft && traverseRight:
			assertf(sp < stackCapacity, "traversal stack overflow: depth exceeds %d", stackCapacity)
			if distLeft <= distRight {
				node, distanceNode = left, distLeft
				nodeStack[sp] = right
			} else {
				node, distanceNode = right, distRight
				nodeStack[sp] = left
			}
			sp++
		case traverseLeft:
			node, distanceNode = left, distLeft
		default:
			node, distanceNode = right, distRight
		}
	}
}
