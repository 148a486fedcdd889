package emst

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelForVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 97
	var seen [n]atomic.Int32
	parallelFor(0, n, 4, func(i int) {
		seen[i].Add(1)
	})
	for i := 0; i < n; i++ {
		assert.Equal(t, int32(1), seen[i].Load())
	}
}

func TestParallelForSingleWorkerRunsInline(t *testing.T) {
	var count int
	parallelFor(0, 10, 1, func(i int) {
		count++
	})
	assert.Equal(t, 10, count)
}

func TestParallelForEmptyRangeNoOp(t *testing.T) {
	called := false
	parallelFor(5, 5, 4, func(i int) { called = true })
	assert.False(t, called)
}
