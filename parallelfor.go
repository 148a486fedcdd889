package emst

import (
	"runtime"
	"sync"
)

// parallelFor runs fn(i) for every i in [start, end) across up to workers
// goroutines, partitioned into contiguous ranges the way the teacher's
// row-partitioned kernels do (ComputePairwiseDistancesParallel and
// friends): each worker owns a disjoint range, so no synchronization is
// needed to hand out work. It blocks until every goroutine finishes,
// forming the BSP-style barrier the driver relies on between phases
// (spec §5).
//
// workers <= 1 (or a range smaller than 2) runs fn inline with no
// goroutines, matching the teacher's numWorkers <= 1 fallback.
func parallelFor(start, end, workers int, fn func(i int)) {
	count := end - start
	if count <= 0 {
		return
	}
	if workers <= 1 || count == 1 {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}

	chunk := (count + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := start + w*chunk
		hi := lo + chunk
		if hi > end {
			hi = end
		}
		if lo >= end {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// defaultWorkers returns runtime.NumCPU(), the same "0 means auto" default
// the teacher's Config.Workers uses.
func defaultWorkers() int {
	return runtime.NumCPU()
}
