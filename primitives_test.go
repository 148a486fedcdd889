package emst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsFromRows(t *testing.T) {
	p, err := PointsFromRows([][]float64{{0, 0}, {1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Size())
	assert.Equal(t, []float64{1, 2}, p.At(1))
}

func TestPointsFromRowsRejectsRaggedInput(t *testing.T) {
	_, err := PointsFromRows([][]float64{{0, 0}, {1}})
	assert.Error(t, err)
}

func TestPointsFromRowsEmpty(t *testing.T) {
	p, err := PointsFromRows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Size())
}
