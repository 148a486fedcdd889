package emst

import "gonum.org/v1/gonum/stat"

// EdgeWeightStats summarizes an MST's edge weight distribution, backing
// cmd/emstbench's --stats flag.
type EdgeWeightStats struct {
	Mean     float64
	Variance float64
	Min      float32
	Max      float32
}

// SummarizeEdgeWeights computes mean/variance (gonum/stat) plus min/max
// over an edge set. Returns the zero value for an empty edge set.
func SummarizeEdgeWeights(edges []WeightedEdge) EdgeWeightStats {
	if len(edges) == 0 {
		return EdgeWeightStats{}
	}
	weights := make([]float64, len(edges))
	min, max := edges[0].Weight, edges[0].Weight
	for i, e := range edges {
		weights[i] = float64(e.Weight)
		if e.Weight < min {
			min = e.Weight
		}
		if e.Weight > max {
			max = e.Weight
		}
	}
	mean, variance := stat.MeanVariance(weights, nil)
	return EdgeWeightStats{Mean: mean, Variance: variance, Min: min, Max: max}
}
