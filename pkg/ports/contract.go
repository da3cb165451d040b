package ports

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCheckpointStoreContract runs a suite of tests to verify that a
// CheckpointStore implementation adheres to the defined interface contract.
func RunCheckpointStoreContract(t *testing.T, store CheckpointStore) {
	ctx := context.Background()
	id := "contract-test-checkpoint-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		cp := &Checkpoint{
			Machine:  "vending",
			State:    "checkingMoney",
			Extended: json.RawMessage(`{"coins":3}`),
			SavedAt:  time.Now().UTC().Truncate(time.Second),
		}

		err := store.Save(ctx, id, cp)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, cp.Machine, loaded.Machine)
		assert.Equal(t, cp.State, loaded.State)
		assert.JSONEq(t, string(cp.Extended), string(loaded.Extended))
		assert.True(t, cp.SavedAt.Equal(loaded.SavedAt), "SavedAt should round-trip")
	})

	t.Run("Overwrite", func(t *testing.T) {
		first := &Checkpoint{Machine: "vending", State: "closedWaitForMoney", SavedAt: time.Now().UTC()}
		second := &Checkpoint{Machine: "vending", State: "openWaitForTimeout", SavedAt: time.Now().UTC()}

		require.NoError(t, store.Save(ctx, id, first))
		require.NoError(t, store.Save(ctx, id, second))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "openWaitForTimeout", loaded.State)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, ErrCheckpointNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, id, &Checkpoint{Machine: "vending", State: "closedWaitForMoney", SavedAt: time.Now().UTC()})
		require.NoError(t, err)

		err = store.Delete(ctx, id)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, id)
		assert.ErrorIs(t, err, ErrCheckpointNotFound, "Load after Delete should return ErrCheckpointNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := id + "-1"
		id2 := id + "-2"
		require.NoError(t, store.Save(ctx, id1, &Checkpoint{Machine: "vending", State: "a", SavedAt: time.Now().UTC()}))
		require.NoError(t, store.Save(ctx, id2, &Checkpoint{Machine: "vending", State: "b", SavedAt: time.Now().UTC()}))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
