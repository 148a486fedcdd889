package emst

import "container/heap"

// knnItem is one candidate neighbor in a bounded k-NN search.
type knnItem struct {
	index int32
	dist  float32
}

// knnMaxHeap is a bounded max-heap (largest distance on top), so the
// current worst-of-the-k-best neighbor is always O(1) to inspect and
// evict, mirroring the teacher's kdtree.go knnHeap.
type knnMaxHeap []knnItem

func (h knnMaxHeap) Len() int            { return len(h) }
func (h knnMaxHeap) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h knnMaxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *knnMaxHeap) Push(x interface{}) { *h = append(*h, x.(knnItem)) }
func (h *knnMaxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// queryKNN returns the k nearest neighbors (as original primitive indices)
// of a query point, using a manual stack over the BVH rather than
// recursion, consistent with the rest of the package's traversal style.
// This is the "generic tree-query callback" spec §1 lists as an external
// collaborator; it is implemented here because core-distance computation
// (coredistance.go) needs a concrete instance to call.
func queryKNN(bvh BVH, p Primitives, query []float64, k int) []knnItem {
	if k <= 0 {
		return nil
	}
	h := &knnMaxHeap{}
	heap.Init(h)

	type frame struct {
		node int32
		dist float32
	}
	stack := make([]frame, 0, 64)
	stack = append(stack, frame{bvh.Root(), 0})

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if h.Len() == k && top.dist > (*h)[0].dist {
			continue
		}

		if bvh.IsLeaf(top.node) {
			orig := bvh.LeafPermutation(top.node)
			d := pointDistance(query, p.At(int(orig)))
			if h.Len() < k {
				heap.Push(h, knnItem{index: orig, dist: d})
			} else if d < (*h)[0].dist {
				(*h)[0] = knnItem{index: orig, dist: d}
				heap.Fix(h, 0)
			}
			continue
		}

		left, right := bvh.Left(top.node), bvh.Right(top.node)
		leftDist := pointBoxDistance(query, bvh.BoundingVolume(left))
		rightDist := pointBoxDistance(query, bvh.BoundingVolume(right))
		// Push the farther child first so the nearer one is processed next
		// (stack is LIFO), tightening the heap bound sooner.
		if leftDist < rightDist {
			stack = append(stack, frame{right, rightDist}, frame{left, leftDist})
		} else {
			stack = append(stack, frame{left, leftDist}, frame{right, rightDist})
		}
	}

	result := make([]knnItem, h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(h).(knnItem)
	}
	return result
}
