package memory_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/machina/pkg/adapters/memory"
	"github.com/aretw0/machina/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunCheckpointStoreContract(t, store)
}

func TestMemoryStore_Isolation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	cp := &ports.Checkpoint{Machine: "m", State: "a", Extended: json.RawMessage(`{"n":1}`)}
	require.NoError(t, store.Save(ctx, "iso", cp))

	// Mutating the saved value must not affect the stored copy.
	cp.State = "b"
	cp.Extended[5] = '2'

	loaded, err := store.Load(ctx, "iso")
	require.NoError(t, err)
	assert.Equal(t, "a", loaded.State)
	assert.JSONEq(t, `{"n":1}`, string(loaded.Extended))
}
