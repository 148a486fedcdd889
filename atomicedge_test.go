package emst

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomicMinEdgeKeepsSmallest(t *testing.T) {
	var slot atomic.Pointer[WeightedEdge]
	atomicMinEdge(&slot, WeightedEdge{Source: 0, Target: 1, Weight: 5})
	atomicMinEdge(&slot, WeightedEdge{Source: 0, Target: 2, Weight: 3})
	atomicMinEdge(&slot, WeightedEdge{Source: 0, Target: 3, Weight: 4})

	got := loadEdge(&slot)
	assert.Equal(t, float32(3), got.Weight)
}

func TestLoadEdgeReturnsUndeterminedWhenEmpty(t *testing.T) {
	var slot atomic.Pointer[WeightedEdge]
	assert.Equal(t, undeterminedEdge, loadEdge(&slot))
}

func TestAtomicMinFloat32BitsUnderConcurrency(t *testing.T) {
	var addr atomic.Uint32
	storeFloat32Bits(&addr, 1000)

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(v float32) {
			defer wg.Done()
			atomicMinFloat32Bits(&addr, v)
		}(float32(i))
	}
	wg.Wait()

	assert.Equal(t, float32(1), loadFloat32Bits(&addr))
}
