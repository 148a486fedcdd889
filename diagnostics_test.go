package emst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEdgeWeights(t *testing.T) {
	edges := []WeightedEdge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 3},
		{Source: 2, Target: 3, Weight: 5},
	}
	stats := SummarizeEdgeWeights(edges)
	assert.InDelta(t, 3.0, stats.Mean, 1e-9)
	assert.Equal(t, float32(1), stats.Min)
	assert.Equal(t, float32(5), stats.Max)
	assert.InDelta(t, 4.0, stats.Variance, 1e-9)
}

func TestSummarizeEdgeWeightsEmpty(t *testing.T) {
	stats := SummarizeEdgeWeights(nil)
	assert.Equal(t, EdgeWeightStats{}, stats)
}
