package results

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

func NewMemoryStore() Store {
	return &memoryStore{entries: map[string][]Entry{}}
}

func (m *memoryStore) Append(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.LearnerID] = append(m.entries[e.LearnerID], e)
	return nil
}

func (m *memoryStore) History(_ context.Context, learnerID string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Entry(nil), m.entries[learnerID]...), nil
}
