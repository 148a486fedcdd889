package emst

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilStoreSaveIsNoOp(t *testing.T) {
	var store *Store
	err := store.Save(context.Background(), Result{RunID: "run-1"})
	assert.NoError(t, err)
}

func TestNilStoreLoadNeverFinds(t *testing.T) {
	var store *Store
	result, found, err := store.Load(context.Background(), "run-1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Result{}, result)
}

func TestStoreWithNilCollectionIsNoOp(t *testing.T) {
	store := NewStore(nil)
	err := store.Save(context.Background(), Result{RunID: "run-1"})
	assert.NoError(t, err)

	_, found, err := store.Load(context.Background(), "run-1")
	require.NoError(t, err)
	assert.False(t, found)
}
