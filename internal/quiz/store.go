package quiz

import "sync"

// Store keeps the live session of each learner. Sessions are ephemeral:
// only submitted results are persisted.
type Store interface {
	Get(learnerID string) (*Session, bool)
	Put(learnerID string, s *Session)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() Store {
	return &memoryStore{sessions: map[string]*Session{}}
}

func (m *memoryStore) Get(learnerID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[learnerID]
	return s, ok
}

func (m *memoryStore) Put(learnerID string, s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[learnerID] = s
}
