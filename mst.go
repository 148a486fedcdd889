package emst

import "fmt"

// MST computes the Euclidean minimum spanning tree of primitives using
// parallel Borůvka over a BVH (spec §1-§4). When cfg.K > 1 the tree is
// built in the mutual-reachability metric instead (spec §4.6), which is
// what HDBSCAN*-style density clustering needs upstream of this package.
//
// The returned edges number exactly n-1. n must be >= 2; edge endpoints
// are original primitive indices, not BVH node or leaf indices.
func MST(primitives Primitives, cfg Config) ([]WeightedEdge, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := primitives.Size()
	if n < 2 {
		return nil, fmt.Errorf("emst: MST: n must be >= 2, got %d", n)
	}
	applyDefaults(&cfg)

	bvh := BuildLinearBVH(primitives)

	var metric Metric
	if cfg.K > 1 {
		core := computeCoreDistances(bvh, primitives, cfg.K, cfg.Workers)
		cfg.Logger.Debug("computed core distances", "k", cfg.K, "mean", meanCoreDistance(core))
		metric = MutualReachability{Core: core}
	} else {
		metric = Euclidean{}
	}

	state := newBoruvkaState(bvh, metric, cfg)
	edges, err := state.run()
	if err != nil {
		return nil, fmt.Errorf("emst: MST: %w", err)
	}
	return edges, nil
}
