package emst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePrimitives() Primitives {
	return NewPrimitives([]float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	}, 2)
}

func TestBuildLinearBVHNodeLayout(t *testing.T) {
	p := squarePrimitives()
	bvh := BuildLinearBVH(p)
	n := p.Size()

	require.Equal(t, n, bvh.Size())

	seenLeaves := make(map[int32]bool)
	for i := int32(n - 1); i < int32(2*n-1); i++ {
		assert.True(t, bvh.IsLeaf(i), "node %d should be a leaf", i)
		perm := bvh.LeafPermutation(i)
		assert.False(t, seenLeaves[perm], "leaf permutation must be a bijection")
		seenLeaves[perm] = true
		assert.GreaterOrEqual(t, perm, int32(0))
		assert.Less(t, perm, int32(n))
	}
	assert.Len(t, seenLeaves, n)

	for i := int32(0); i < int32(n-1); i++ {
		assert.False(t, bvh.IsLeaf(i), "node %d should be internal", i)
	}

	assert.GreaterOrEqual(t, bvh.Root(), int32(0))
	assert.Less(t, bvh.Root(), int32(2*n-1))
}

func TestBuildLinearBVHSinglePoint(t *testing.T) {
	p := NewPrimitives([]float64{1, 2, 3}, 3)
	bvh := BuildLinearBVH(p)
	assert.Equal(t, 1, bvh.Size())
	assert.True(t, bvh.IsLeaf(bvh.Root()))
	assert.Equal(t, int32(0), bvh.LeafPermutation(bvh.Root()))
}

func TestBuildLinearBVHBoundingVolumesContainAllPoints(t *testing.T) {
	p := squarePrimitives()
	bvh := BuildLinearBVH(p)
	root := bvh.BoundingVolume(bvh.Root())

	for i := 0; i < p.Size(); i++ {
		pt := p.At(i)
		for d := 0; d < p.Dims; d++ {
			assert.LessOrEqual(t, root.Min[d], float32(pt[d]))
			assert.GreaterOrEqual(t, root.Max[d], float32(pt[d]))
		}
	}
}

func TestBuildParentsRootHasNoParent(t *testing.T) {
	p := squarePrimitives()
	bvh := BuildLinearBVH(p)
	parents := buildParents(bvh)
	assert.Equal(t, int32(-1), parents[bvh.Root()])

	for i := int32(0); i < int32(len(parents)); i++ {
		if i == bvh.Root() {
			continue
		}
		assert.NotEqual(t, int32(-1), parents[i], "every non-root node must have a parent")
	}
}
