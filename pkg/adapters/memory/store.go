// Package memory provides an in-memory checkpoint store, useful for tests
// and single-process deployments.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aretw0/machina/pkg/ports"
)

// Store implements ports.CheckpointStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*ports.Checkpoint
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*ports.Checkpoint),
	}
}

// Save persists the checkpoint in memory.
func (s *Store) Save(ctx context.Context, id string, cp *ports.Checkpoint) error {
	// Deep copy to ensure isolation, similar to serialization.
	copied := *cp
	copied.Extended = append(json.RawMessage(nil), cp.Extended...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = &copied
	return nil
}

// Load retrieves the checkpoint from memory.
func (s *Store) Load(ctx context.Context, id string) (*ports.Checkpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp, ok := s.data[id]
	if !ok {
		return nil, ports.ErrCheckpointNotFound
	}

	// Copy on read so the caller can't mutate store state through the pointer.
	ret := *cp
	ret.Extended = append(json.RawMessage(nil), cp.Extended...)
	return &ret, nil
}

// Delete removes the checkpoint.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored checkpoint IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
