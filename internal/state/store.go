// internal/state/store.go
package state

import (
	"context"
	"sync"
)

// Store remembers the last reported state per instance so a check can
// tell when a transition happened. Invocations per instance are
// serialized by the runner; implementations only need to survive
// concurrent use across instances.
type Store interface {
	Get(ctx context.Context, key string) (State, bool, error)
	Set(ctx context.Context, key string, s State) error
}

// MemoryStore keeps last states in process memory. The default store.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]State)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (State, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.states[key]
	return s, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, s State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[key] = s
	return nil
}
