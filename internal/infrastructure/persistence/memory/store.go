package memory

import (
	"context"
	"sync"

	"github.com/mealforge/v1/internal/ports/outbound"
)

// Store implements outbound.KeyValueStore in process memory. Used for tests
// and demo mode; nothing survives a restart.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory key-value store
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns the blob stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, outbound.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Put replaces the blob stored under key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

// Delete removes the blob stored under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error { return nil }
