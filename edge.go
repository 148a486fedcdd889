package emst

import "math"

// WeightedEdge is a candidate or committed MST/component edge. Source and
// Target are BVH-node indices while an edge is in flight (they may refer to
// leaves during Borůvka rounds); MST performs a final pass that rewrites
// them to original primitive indices via the BVH's leaf permutation.
//
// The total order below is a hard invariant relied on by both atomic edge
// selection (nearestneighbor.go) and cycle-breaking between components
// (merge.go): lesser weight first, then lesser min(source,target), then
// lesser max(source,target).
type WeightedEdge struct {
	Source int32
	Target int32
	Weight float32
}

// undeterminedEdge is the sentinel used to seed component_out_edges and
// per-leaf best-candidate accumulators each Borůvka round.
var undeterminedEdge = WeightedEdge{Source: -1, Target: -1, Weight: float32(math.Inf(1))}

// less implements the strict total order of the WeightedEdge doc comment above.
// It must remain strict and total over edges with finite weight; NaN
// weights are a metric-contract violation (see assert.go) and are not
// ordered meaningfully.
func (e WeightedEdge) less(o WeightedEdge) bool {
	if e.Weight != o.Weight {
		return e.Weight < o.Weight
	}
	eMin, eMax := minMaxInt32(e.Source, e.Target)
	oMin, oMax := minMaxInt32(o.Source, o.Target)
	if eMin != oMin {
		return eMin < oMin
	}
	return eMax < oMax
}

func minMaxInt32(a, b int32) (lo, hi int32) {
	if a < b {
		return a, b
	}
	return b, a
}
