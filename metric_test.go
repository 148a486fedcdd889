package emst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclideanMetricReturnsInputUnchanged(t *testing.T) {
	m := Euclidean{}
	assert.Equal(t, float32(3.5), m.Evaluate(0, 1, 3.5))
}

func TestMutualReachabilityDominatesEuclideanAndCore(t *testing.T) {
	core := []float32{2.0, 5.0, 0.5}
	m := MutualReachability{Core: core}

	for _, tc := range []struct {
		a, b    int32
		dEuclid float32
	}{
		{0, 1, 1.0}, // core[0]=2 dominates
		{1, 2, 1.0}, // core[1]=5 dominates
		{0, 2, 10.0}, // dEuclid dominates
	} {
		got := m.Evaluate(tc.a, tc.b, tc.dEuclid)
		assert.GreaterOrEqual(t, got, tc.dEuclid)
		assert.GreaterOrEqual(t, got, core[tc.a])
		assert.GreaterOrEqual(t, got, core[tc.b])
	}
}
