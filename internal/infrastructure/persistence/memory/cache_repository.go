// Package memory provides in-memory persistence and cache adapters.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mealforge/v1/internal/ports/outbound"
)

// cacheItem is one cached value with its expiry.
type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

// CacheRepository implements the cache port in process memory. It is the
// default cache in front of the recipe source when Redis is not configured.
type CacheRepository struct {
	data map[string]cacheItem
	mu   sync.RWMutex
}

// NewCacheRepository creates a new in-memory cache repository
func NewCacheRepository() *CacheRepository {
	repo := &CacheRepository{data: make(map[string]cacheItem)}
	go repo.cleanup()
	return repo
}

// Get retrieves a value from cache
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	item, exists := r.data[key]
	r.mu.RUnlock()

	if !exists || time.Now().After(item.expiresAt) {
		return nil, outbound.ErrKeyNotFound
	}
	return item.value, nil
}

// Set stores a value in cache with TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Hour
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = cacheItem{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Delete removes a key from cache
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

// cleanup periodically drops expired entries.
func (r *CacheRepository) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		r.mu.Lock()
		for key, item := range r.data {
			if now.After(item.expiresAt) {
				delete(r.data, key)
			}
		}
		r.mu.Unlock()
	}
}
