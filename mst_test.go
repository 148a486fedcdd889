package emst

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// primReferenceMST computes a brute-force MST via Prim's algorithm on the
// complete Euclidean graph, used only as a correctness oracle for the
// minimality property. Grounded on the teacher's PrimMST (mst.go, deleted
// from the production tree once superseded by boruvka.go, but preserved
// here as the reference implementation the minimality test needs).
func primReferenceMST(p Primitives) []WeightedEdge {
	n := p.Size()
	if n <= 1 {
		return nil
	}
	inTree := make([]bool, n)
	dist := make([]float32, n)
	nearest := make([]int32, n)
	for i := range dist {
		dist[i] = float32(math.Inf(1))
	}
	inTree[0] = true
	for j := 1; j < n; j++ {
		dist[j] = pointDistance(p.At(0), p.At(j))
		nearest[j] = 0
	}

	edges := make([]WeightedEdge, 0, n-1)
	for i := 0; i < n-1; i++ {
		best := int32(-1)
		bestDist := float32(math.Inf(1))
		for j := 0; j < n; j++ {
			if !inTree[j] && dist[j] < bestDist {
				bestDist = dist[j]
				best = int32(j)
			}
		}
		inTree[best] = true
		edges = append(edges, WeightedEdge{Source: nearest[best], Target: best, Weight: bestDist})
		for j := 0; j < n; j++ {
			if !inTree[j] {
				d := pointDistance(p.At(int(best)), p.At(j))
				if d < dist[j] {
					dist[j] = d
					nearest[j] = best
				}
			}
		}
	}
	return edges
}

func sumWeights(edges []WeightedEdge) float64 {
	var total float64
	for _, e := range edges {
		total += float64(e.Weight)
	}
	return total
}

func TestMSTFourCollinearPoints(t *testing.T) {
	p := NewPrimitives([]float64{0, 1, 3, 6}, 1)
	edges, err := MST(p, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.InDelta(t, 6.0, sumWeights(edges), 1e-5)
}

func TestMSTUnitSquareTieBreak(t *testing.T) {
	p := squarePrimitives()
	edges, err := MST(p, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.InDelta(t, 3.0, sumWeights(edges), 1e-4)
	for _, e := range edges {
		assert.InDelta(t, 1.0, e.Weight, 1e-4)
	}
}

func TestMSTThreeClusterWithOutlier(t *testing.T) {
	p := NewPrimitives([]float64{
		0, 0,
		1, 0,
		0, 1,
		10, 10,
	}, 2)
	edges, err := MST(p, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, edges, 3)

	reference := primReferenceMST(p)
	assert.InDelta(t, sumWeights(reference), sumWeights(edges), 1e-3)
}

func TestMSTMatchesPrimReferenceOnRandomCube(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 200
	data := make([]float64, n*3)
	for i := range data {
		data[i] = rng.Float64()
	}
	p := NewPrimitives(data, 3)

	edges, err := MST(p, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, edges, n-1)

	reference := primReferenceMST(p)
	assert.InDelta(t, sumWeights(reference), sumWeights(edges), 1e-2)
}

func TestMSTSpansAllPointsExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 64
	data := make([]float64, n*2)
	for i := range data {
		data[i] = rng.Float64() * 100
	}
	p := NewPrimitives(data, 2)

	edges, err := MST(p, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, edges, n-1)

	assert.True(t, isSpanningTree(edges, n))
}

func isSpanningTree(edges []WeightedEdge, n int) bool {
	parent := make([]int32, n)
	for i := range parent {
		parent[i] = int32(i)
	}
	var find func(int32) int32
	find = func(x int32) int32 {
		for parent[x] != x {
			x = parent[x]
		}
		return x
	}
	for _, e := range edges {
		ra, rb := find(e.Source), find(e.Target)
		if ra == rb {
			return false // cycle
		}
		parent[ra] = rb
	}
	root := find(0)
	for i := int32(1); i < int32(n); i++ {
		if find(i) != root {
			return false // disconnected
		}
	}
	return true
}

func TestMSTTwoPointBoundary(t *testing.T) {
	p := NewPrimitives([]float64{0, 0, 3, 4}, 2)
	edges, err := MST(p, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.InDelta(t, 5.0, edges[0].Weight, 1e-6)
}

func TestMSTSinglePointIsConfigurationError(t *testing.T) {
	p := NewPrimitives([]float64{0, 0}, 2)
	edges, err := MST(p, DefaultConfig())
	assert.Error(t, err)
	assert.Nil(t, edges)
}

func TestMSTAllCoincidentPoints(t *testing.T) {
	p := NewPrimitives([]float64{1, 1, 1, 1, 1, 1}, 2)
	edges, err := MST(p, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, edges, 2)
	for _, e := range edges {
		assert.InDelta(t, 0.0, e.Weight, 1e-9)
	}
	assert.True(t, isSpanningTree(edges, 3))
}

func TestMSTDuplicatePointsWithMutualReachability(t *testing.T) {
	p := NewPrimitives([]float64{
		0, 0,
		0, 0,
		5, 5,
		5, 5,
		10, 0,
	}, 2)
	cfg := DefaultConfig()
	cfg.K = 2
	edges, err := MST(p, cfg)
	require.NoError(t, err)
	require.Len(t, edges, 4)
	assert.True(t, isSpanningTree(edges, 5))
}

func TestMSTIsDeterministicAcrossRuns(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 100
	data := make([]float64, n*2)
	for i := range data {
		data[i] = rng.Float64()
	}
	p := NewPrimitives(data, 2)

	first, err := MST(p, DefaultConfig())
	require.NoError(t, err)
	second, err := MST(p, DefaultConfig())
	require.NoError(t, err)

	assert.InDelta(t, sumWeights(first), sumWeights(second), 1e-9)
	require.Len(t, first, len(second))
}

func TestMSTRejectsInvalidK(t *testing.T) {
	p := squarePrimitives()
	cfg := DefaultConfig()
	cfg.K = 0
	_, err := MST(p, cfg)
	assert.Error(t, err)
}

func TestMSTMutualReachabilityDominatesEuclidean(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const n = 50
	data := make([]float64, n*2)
	for i := range data {
		data[i] = rng.Float64()
	}
	p := NewPrimitives(data, 2)

	cfg := DefaultConfig()
	cfg.K = 5
	mrEdges, err := MST(p, cfg)
	require.NoError(t, err)

	euclideanEdges, err := MST(p, DefaultConfig())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, sumWeights(mrEdges), sumWeights(euclideanEdges)-1e-6)
}
