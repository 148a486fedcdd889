package emst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLabelsSeedsLeavesAndSentinels(t *testing.T) {
	n := 4
	labels := initLabels(n)
	assert.Len(t, labels, 2*n-1)
	for i := 0; i < n-1; i++ {
		assert.Equal(t, labelSentinel, labels[i])
	}
	for i := n - 1; i < 2*n-1; i++ {
		assert.Equal(t, int32(i), labels[i])
	}
}

func TestReduceLabelsAllSameComponentPropagatesToRoot(t *testing.T) {
	p := squarePrimitives()
	bvh := BuildLinearBVH(p)
	n := bvh.Size()
	parents := buildParents(bvh)
	labels := initLabels(n)

	// Force every leaf into the same component before reducing, simulating
	// a round where all points have already merged into one component.
	for i := n - 1; i < 2*n-1; i++ {
		labels[i] = int32(n - 1)
	}

	arrivals := make([]int32, 2*n-1)
	reduceLabels(bvh, parents, labels, arrivals, 1)

	assert.Equal(t, int32(n-1), labels[bvh.Root()], "monochromatic subtree must propagate its label to the root")
}

func TestReduceLabelsDistinctComponentsYieldSentinelAtRoot(t *testing.T) {
	p := squarePrimitives()
	bvh := BuildLinearBVH(p)
	n := bvh.Size()
	parents := buildParents(bvh)
	labels := initLabels(n)

	arrivals := make([]int32, 2*n-1)
	reduceLabels(bvh, parents, labels, arrivals, 2)

	assert.Equal(t, labelSentinel, labels[bvh.Root()], "root spans multiple components, must stay sentinel")
}
