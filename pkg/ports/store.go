// Package ports defines the driven-side interfaces machina adapters
// implement. The engine itself never calls them: persistence across process
// restarts is the owning application's responsibility, taken between Process
// calls when the queue is drained.
package ports

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrCheckpointNotFound is returned when a checkpoint ID cannot be found in
// the store.
var ErrCheckpointNotFound = errors.New("checkpoint not found")

// Checkpoint is a portable snapshot of one machine's position and extended
// state, serialized by the owning application. State is the application's
// stable label for the current state value; Extended is an opaque
// JSON-encoded rendition of the extended state.
type Checkpoint struct {
	Machine  string          `json:"machine"`
	State    string          `json:"state"`
	Extended json.RawMessage `json:"extended,omitempty"`
	SavedAt  time.Time       `json:"saved_at"`
}

// CheckpointStore persists machine checkpoints keyed by caller-chosen IDs.
type CheckpointStore interface {
	// Save persists the checkpoint under the given ID, overwriting any
	// previous checkpoint with that ID.
	Save(ctx context.Context, id string, cp *Checkpoint) error

	// Load retrieves the checkpoint for the given ID.
	// Returns ErrCheckpointNotFound if it does not exist.
	Load(ctx context.Context, id string) (*Checkpoint, error)

	// Delete removes the checkpoint for the given ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of stored checkpoints.
	List(ctx context.Context) ([]string, error)
}
