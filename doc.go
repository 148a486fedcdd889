// Package emst implements the core graph-construction engine of a
// spatial-analytics library: a parallel Borůvka algorithm that computes the
// Euclidean Minimum Spanning Tree (EMST) of a point cloud, optionally in a
// mutual-reachability metric for density-based clustering, using a
// bounding-volume hierarchy (BVH) to accelerate nearest-neighbor search
// between growing connected components.
//
// The package also exposes a DBSCAN-style clustering primitive that reuses
// the same BVH traversal machinery and a parallel union-find.
//
// Basic usage:
//
//	pts := emst.NewPrimitives(flatData, dims)
//	edges, err := emst.MST(pts, emst.DefaultConfig())
//	// edges[i] is a WeightedEdge with endpoints as original point indices.
//
// For density-based clustering:
//
//	result, err := emst.DBSCAN(pts, eps, coreMinSize, clusterMinSize, emst.DefaultConfig())
//	// result.ClusterOffsets/result.ClusterIndices hold clusters in CSR form.
//
// # Algorithm shape
//
// MST construction proceeds in Borůvka rounds: every connected component
// simultaneously finds its cheapest outgoing edge via a component-aware BVH
// traversal, and components merge across those edges until one remains. Set
// K > 1 in Config to cluster in HDBSCAN*'s mutual-reachability metric instead
// of raw Euclidean distance.
package emst
