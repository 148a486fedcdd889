package emst

import "sync/atomic"

// resetSharedRadii seeds radii[c] with a low, safe upper bound on
// component c's shortest outgoing edge (spec §4.2). For every pair of
// adjacent leaves in leaf-permutation order, if their components differ,
// the metric distance between them is atomically minimized into both
// components' radii.
//
// This relies on the LinearBVH's leaf permutation being approximately
// Morton/space-filling-curve ordered (lbvh.go's median-split builder):
// adjacent leaves are usually close in space, so this gives a tight
// initial bound that drastically prunes the traversal in
// nearestneighbor.go. Correctness only requires that metric dominates the
// Euclidean distance between bounding volumes (metric.go's contract).
func resetSharedRadii(bvh BVH, labels []int32, metric Metric, radii []atomic.Uint32, workers int) {
	n := bvh.Size()
	if n <= 1 {
		return
	}
	parallelFor(n-1, 2*n-2, workers, func(i int) {
		j := i + 1
		labelI := labels[i]
		labelJ := labels[j]
		if labelI == labelJ {
			return
		}
		leafI := bvh.LeafPermutation(int32(i))
		leafJ := bvh.LeafPermutation(int32(j))
		d := boxDistance(bvh.BoundingVolume(int32(i)), bvh.BoundingVolume(int32(j)))
		r := metric.Evaluate(leafI, leafJ, d)
		atomicMinFloat32Bits(&radii[compSlot(labelI, n)], r)
		atomicMinFloat32Bits(&radii[compSlot(labelJ, n)], r)
	})
}
