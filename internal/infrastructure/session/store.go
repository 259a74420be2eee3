package session

import (
	"context"
	"sync"
	"time"

	"github.com/menucraft/backend/internal/domain"
)

// entry wraps a stored session with its expiration time
type entry struct {
	Session    *domain.Session
	Expiration time.Time
}

// MemoryStore is a thread-safe in-memory session store with TTL
// support. Editing sessions are browser-session-local and never
// persisted, so an abandoned one just ages out.
type MemoryStore struct {
	data  map[string]entry
	ttl   time.Duration
	mutex sync.RWMutex
}

// NewMemoryStore creates an in-memory session store. Sessions expire
// after ttl measured from their last save.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	store := &MemoryStore{
		data: make(map[string]entry),
		ttl:  ttl,
	}

	// Cleanup goroutine removes expired sessions every 10 minutes
	go store.cleanupExpired()

	return store
}

// Get retrieves a session by ID
func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	e, exists := s.data[id]
	if !exists {
		return nil, domain.ErrSessionNotFound
	}

	if time.Now().After(e.Expiration) {
		return nil, domain.ErrSessionNotFound
	}

	return e.Session, nil
}

// Save stores a session and refreshes its TTL
func (s *MemoryStore) Save(ctx context.Context, session *domain.Session) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[session.ID] = entry{
		Session:    session,
		Expiration: time.Now().Add(s.ttl),
	}
	return nil
}

// Delete removes a session
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, id)
	return nil
}

// cleanupExpired removes expired sessions periodically
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for id, e := range s.data {
			if now.After(e.Expiration) {
				delete(s.data, id)
			}
		}
		s.mutex.Unlock()
	}
}

// Size returns the current number of live sessions (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}
