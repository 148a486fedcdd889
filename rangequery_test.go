package emst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeQueryFindsAllPointsWithinRadius(t *testing.T) {
	p := NewPrimitives([]float64{
		0, 0,
		0.5, 0,
		1.0, 0,
		5.0, 0,
	}, 2)
	bvh := BuildLinearBVH(p)

	var found []int32
	rangeQuery(bvh, p, []float64{0, 0}, 1.0, func(j int32) {
		found = append(found, j)
	})
	assert.ElementsMatch(t, []int32{0, 1, 2}, found)
}

func TestRangeQueryOnlySelfWhenNothingElseInRadius(t *testing.T) {
	p := NewPrimitives([]float64{0, 0, 100, 100}, 2)
	bvh := BuildLinearBVH(p)

	var found []int32
	rangeQuery(bvh, p, []float64{0, 0}, 0.1, func(j int32) {
		found = append(found, j)
	})
	assert.ElementsMatch(t, []int32{0}, found)
}
