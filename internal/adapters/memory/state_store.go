// Package memory contains in-memory implementations of the secondary
// persistence ports, used by tests and ephemeral (no-database) runs.
package memory

import (
	"context"
	"sync"

	"github.com/example/htscan/internal/ports/secondary"
)

// StateStore implements secondary.StateStore with a mutex-guarded map.
// Access from the interactive CLI is single-threaded, but the mutex keeps
// the store safe if a background sync worker is ever attached.
type StateStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewStateStore creates an empty in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{data: make(map[string][]byte)}
}

// Get returns the value for key, with ok=false for an absent key.
func (s *StateStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *StateStore) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *StateStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Ensure StateStore implements the interface
var _ secondary.StateStore = (*StateStore)(nil)
