package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jackzhaolt/plane-ticket-query/core/types"
)

// MemoryStore is an in-process store used in tests and when the cache
// directory is not writable
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached flight list when present and within TTL.
// Stale entries are evicted on read.
func (s *MemoryStore) Get(_ context.Context, key string, ttl time.Duration) ([]types.Flight, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if e.expired(ttl, s.now()) {
		s.mu.Lock()
		// Re-check under the write lock; another writer may have
		// refreshed the key.
		if cur, ok := s.entries[key]; ok && cur.ID == e.ID {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.Flights, true
}

// Put stores a flight list, replacing any previous entry for the key
func (s *MemoryStore) Put(_ context.Context, key string, flights []types.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{
		ID:        uuid.NewString(),
		Flights:   flights,
		CreatedAt: s.now(),
	}
	return nil
}

// Close implements Store
func (s *MemoryStore) Close() error {
	return nil
}
