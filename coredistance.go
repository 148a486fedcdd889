package emst

import "gonum.org/v1/gonum/floats"

// computeCoreDistances computes core_k(i) for every point: the Euclidean
// distance from i to its k-th nearest neighbor (excluding itself),
// via k-NN queries against the BVH. Parallelized over points the same way
// the teacher parallelizes ComputeCoreDistancesParallel, one goroutine
// range per worker with no shared state between ranges.
//
// k == 1 never needs this: MST treats k <= 1 as plain Euclidean and skips
// core-distance computation entirely (see mst.go).
func computeCoreDistances(bvh BVH, p Primitives, k, workers int) []float32 {
	n := p.Size()
	core := make([]float32, n)
	if n == 0 {
		return core
	}
	// Query k+1 neighbors since the point itself is always its own nearest
	// neighbor at distance 0 and must be skipped.
	query := k + 1
	if query > n {
		query = n
	}

	parallelFor(0, n, workers, func(i int) {
		neighbors := queryKNN(bvh, p, p.At(i), query)
		core[i] = kthNonSelfDistance(neighbors, int32(i), k)
	})
	return core
}

// kthNonSelfDistance returns the distance to the k-th nearest neighbor
// other than self from a sorted-ascending neighbor list.
func kthNonSelfDistance(neighbors []knnItem, self int32, k int) float32 {
	seen := 0
	for _, nb := range neighbors {
		if nb.index == self {
			continue
		}
		seen++
		if seen == k {
			return nb.dist
		}
	}
	if len(neighbors) == 0 {
		return 0
	}
	return neighbors[len(neighbors)-1].dist
}

// meanCoreDistance summarizes core distances for diagnostic logging
// (MST in mst.go logs it once per MutualReachability run). Uses gonum/floats
// the way the teacher pack's numeric-heavy repos do for simple reductions.
func meanCoreDistance(core []float32) float64 {
	if len(core) == 0 {
		return 0
	}
	f64 := make([]float64, len(core))
	for i, v := range core {
		f64[i] = float64(v)
	}
	return floats.Sum(f64) / float64(len(f64))
}
