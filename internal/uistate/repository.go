package uistate

import (
	"context"
	"sync"
)

// Repository persists per-client UI state. Get returns (nil, nil) when the
// client has no stored state yet.
type Repository interface {
	Get(ctx context.Context, clientID string) (*State, error)
	Put(ctx context.Context, clientID string, st *State) error
	Delete(ctx context.Context, clientID string) error
}

// MemoryRepository is the single-instance default; state evaporates on
// restart, which matches the original dashboard's behavior.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]State
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]State)}
}

func (m *MemoryRepository) Get(_ context.Context, clientID string) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.store[clientID]
	if !ok {
		return nil, nil
	}
	cp := st
	return &cp, nil
}

func (m *MemoryRepository) Put(_ context.Context, clientID string, st *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[clientID] = *st
	return nil
}

func (m *MemoryRepository) Delete(_ context.Context, clientID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, clientID)
	return nil
}
