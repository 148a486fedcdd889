package emst

import "sync/atomic"

// parallelUnionFind is a lock-free union-find over int32 identifiers,
// backed by atomic.Int32 parent pointers (spec §4.7's `stat[i]`). Union
// races are resolved by repeated CAS on the loser's root, never by
// locking, matching the "no critical sections, no locks" rule of spec §5.
type parallelUnionFind struct {
	parent []atomic.Int32
}

func newParallelUnionFind(n int) *parallelUnionFind {
	uf := &parallelUnionFind{parent: make([]atomic.Int32, n)}
	for i := range uf.parent {
		uf.parent[i].Store(int32(i))
	}
	return uf
}

// find returns i's current root without path compression, safe to call
// concurrently with unions.
func (uf *parallelUnionFind) find(i int32) int32 {
	for {
		p := uf.parent[i].Load()
		if p == i {
			return i
		}
		i = p
	}
}

// union merges the components of a and b. Concurrent unions on
// overlapping components are resolved by CAS retry: a thread that loses
// the race re-reads the roots and tries again.
func (uf *parallelUnionFind) union(a, b int32) {
	for {
		ra, rb := uf.find(a), uf.find(b)
		if ra == rb {
			return
		}
		lo, hi := minMaxInt32(ra, rb)
		// Always attach the larger root under the smaller one, so
		// concurrent unions converge instead of oscillating.
		if uf.parent[hi].CompareAndSwap(hi, lo) {
			return
		}
	}
}

// flatten makes every stat[i] point directly at its component's fixed
// point, per spec §4.7's "path flattening" pass. Safe to parallelize since
// each i only ever reads/writes its own slot after find has stabilized.
func (uf *parallelUnionFind) flatten(workers int) {
	n := len(uf.parent)
	parallelFor(0, n, workers, func(i int) {
		root := uf.find(int32(i))
		uf.parent[i].Store(root)
	})
}
