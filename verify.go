package emst

// VerifyClustering is the debug-only verification helper of spec §4.7: it
// checks (a) every pair the neighbor graph connects (within eps) shares a
// cluster representative, and (b) the number of distinct representatives
// equals the number of connected components a host-side DFS finds over
// the neighbor graph restricted to points the clustering actually
// reports (mirroring ArborX's verifyCC, which only walks points with
// ccs_host(i) >= 0), so points dropped by cluster_min_size filtering
// don't skew the component count. It is not called from DBSCAN itself;
// it exists for tests and callers that want an independent cross-check.
func VerifyClustering(primitives Primitives, eps float64, result *ClusterResult) bool {
	n := primitives.Size()
	bvh := BuildLinearBVH(primitives)
	epsF := float32(eps)

	pointCluster := make([]int32, n)
	for i := range pointCluster {
		pointCluster[i] = -1
	}
	for c := 0; c < result.NumClusters(); c++ {
		for _, idx := range result.Cluster(c) {
			pointCluster[idx] = int32(c)
		}
	}

	adjacency := buildNeighborGraph(bvh, primitives, epsF)

	for i := 0; i < n; i++ {
		for _, j := range adjacency[i] {
			if pointCluster[i] != -1 && pointCluster[j] != -1 && pointCluster[i] != pointCluster[j] {
				return false
			}
		}
	}

	dfsComponents := countConnectedComponents(adjacency, pointCluster)
	distinctClusters := result.NumClusters()
	return dfsComponents == distinctClusters
}

func buildNeighborGraph(bvh BVH, p Primitives, eps float32) [][]int32 {
	n := p.Size()
	adjacency := make([][]int32, n)
	for i := 0; i < n; i++ {
		rangeQuery(bvh, p, p.At(i), eps, func(j int32) {
			if int(j) != i {
				adjacency[i] = append(adjacency[i], j)
			}
		})
	}
	return adjacency
}

// countConnectedComponents runs an iterative (explicit-stack) DFS over the
// neighbor graph, restricted to points the clustering reports
// (pointCluster[i] != -1), avoiding recursion depth limits on large
// point clouds.
func countConnectedComponents(adjacency [][]int32, pointCluster []int32) int {
	n := len(pointCluster)
	visited := make([]bool, n)
	components := 0
	stack := make([]int32, 0, n)

	for i := 0; i < n; i++ {
		if pointCluster[i] == -1 || visited[i] {
			continue
		}
		components++
		stack = append(stack, int32(i))
		visited[i] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, next := range adjacency[cur] {
				if pointCluster[next] != -1 && !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}
	}
	return components
}
