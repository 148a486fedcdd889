package emst

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ClusterResult is the CSR-form output of DBSCAN (spec §4.7's "Primary
// entry point (DBSCAN)"): ClusterIndices holds point indices grouped by
// cluster, and ClusterOffsets[c]..ClusterOffsets[c+1] bounds cluster c's
// slice within ClusterIndices.
type ClusterResult struct {
	ClusterIndices []int32
	ClusterOffsets []int32
}

// NumClusters returns the number of clusters in the result.
func (r *ClusterResult) NumClusters() int {
	if r == nil || len(r.ClusterOffsets) == 0 {
		return 0
	}
	return len(r.ClusterOffsets) - 1
}

// Cluster returns the point indices belonging to cluster c.
func (r *ClusterResult) Cluster(c int) []int32 {
	return r.ClusterIndices[r.ClusterOffsets[c]:r.ClusterOffsets[c+1]]
}

// DBSCAN computes a density-based clustering of primitives, reusing the
// BVH range-query machinery and a parallel union-find rather than the
// Borůvka driver (spec §4.7's "thin rider on the same machinery").
func DBSCAN(primitives Primitives, eps float64, coreMinSize, clusterMinSize int, cfg Config) (*ClusterResult, error) {
	n := primitives.Size()
	if n < 2 {
		return nil, fmt.Errorf("emst: DBSCAN: n must be >= 2, got %d", n)
	}
	if eps <= 0 {
		return nil, fmt.Errorf("emst: DBSCAN: eps must be > 0, got %v", eps)
	}
	if coreMinSize < 1 {
		return nil, fmt.Errorf("emst: DBSCAN: coreMinSize must be >= 1, got %d", coreMinSize)
	}
	if clusterMinSize < 2 {
		return nil, fmt.Errorf("emst: DBSCAN: clusterMinSize must be >= 2, got %d", clusterMinSize)
	}
	applyDefaults(&cfg)
	runID := uuid.NewString()
	cfg.Logger.Debug("dbscan started", "run", runID, "n", n, "eps", eps, "core_min_size", coreMinSize)

	bvh := BuildLinearBVH(primitives)
	epsF := float32(eps)
	uf := newParallelUnionFind(n)

	if coreMinSize == 1 {
		parallelFor(0, n, cfg.Workers, func(i int) {
			rangeQuery(bvh, primitives, primitives.At(i), epsF, func(j int32) {
				if int(j) != i {
					uf.union(int32(i), j)
				}
			})
		})
	} else {
		neighborCount := make([]int32, n)
		parallelFor(0, n, cfg.Workers, func(i int) {
			count := int32(0)
			rangeQuery(bvh, primitives, primitives.At(i), epsF, func(j int32) {
				count++
			})
			neighborCount[i] = count
		})

		isCore := make([]bool, n)
		for i := 0; i < n; i++ {
			isCore[i] = int(neighborCount[i]) >= coreMinSize
		}

		parallelFor(0, n, cfg.Workers, func(i int) {
			rangeQuery(bvh, primitives, primitives.At(i), epsF, func(j int32) {
				if int(j) == i {
					return
				}
				if isCore[i] && isCore[j] {
					uf.union(int32(i), j)
				} else if isCore[i] && !isCore[j] {
					uf.union(int32(i), j)
				}
			})
		})
	}

	uf.flatten(cfg.Workers)

	result := buildClusterResult(uf, n, clusterMinSize)
	cfg.Logger.Debug("dbscan finished", "run", runID, "clusters", result.NumClusters())
	return result, nil
}

// buildClusterResult sorts points by representative and emits the CSR
// output, filtering clusters below clusterMinSize (spec §4.7).
func buildClusterResult(uf *parallelUnionFind, n, clusterMinSize int) *ClusterResult {
	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	rep := func(i int32) int32 { return uf.parent[i].Load() }
	sort.Slice(order, func(a, b int) bool {
		ra, rb := rep(order[a]), rep(order[b])
		if ra != rb {
			return ra < rb
		}
		return order[a] < order[b]
	})

	result := &ClusterResult{ClusterOffsets: []int32{0}}
	start := 0
	for start < n {
		end := start + 1
		for end < n && rep(order[end]) == rep(order[start]) {
			end++
		}
		if end-start >= clusterMinSize {
			result.ClusterIndices = append(result.ClusterIndices, order[start:end]...)
			result.ClusterOffsets = append(result.ClusterOffsets, int32(len(result.ClusterIndices)))
		}
		start = end
	}
	return result
}
