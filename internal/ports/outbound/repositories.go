// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces the application uses to reach storage and the
// external recipe and AI collaborators.
package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/mealforge/v1/internal/domain/recipe"
)

// ErrKeyNotFound is returned by KeyValueStore.Get for an absent key.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the durable persistence capability the stores are built
// on: key-scoped blobs with atomic writes. A failed Put must leave the
// previously stored value intact for the next Get.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CacheRepository is the read-through cache used in front of the recipe
// source.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// SearchFilters are the query parameters accepted by the recipe source.
type SearchFilters struct {
	Query        string
	Diet         string
	Intolerances string
	Cuisine      string
	DishType     string
	MaxReadyTime int
	Sort         string
	Limit        int
}

// RecipeSource supplies recipe snapshots from an external database. The
// engine treats results as opaque read-only input and never retries on the
// source's behalf.
type RecipeSource interface {
	Search(ctx context.Context, filters SearchFilters) ([]recipe.Recipe, error)
	GetByID(ctx context.Context, id int64) (recipe.Recipe, error)
}

// AIService is the opaque prompt-in/text-out language model proxy. Its
// output never feeds the meal plan store directly; callers normalize it into
// recipe snapshots first.
type AIService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// HealthReporter is implemented by adapters that can answer a liveness
// probe.
type HealthReporter interface {
	Ping(ctx context.Context) error
}
