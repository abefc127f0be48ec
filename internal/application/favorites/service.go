// Package favorites provides the application layer for the favorite recipe
// set: a deduplicated collection of recipe snapshots keyed by recipe id.
package favorites

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/inbound"
	"github.com/mealforge/v1/internal/ports/outbound"
	"github.com/mealforge/v1/pkg/errors"
)

const storageKey = "mealforge:favorites"

// Service implements the favorites use cases with the same fail-soft
// persistence policy as the meal plan store.
type Service struct {
	kv     outbound.KeyValueStore
	logger *zap.Logger
}

// NewService creates a new favorites service
func NewService(kv outbound.KeyValueStore, logger *zap.Logger) inbound.FavoritesService {
	return &Service{
		kv:     kv,
		logger: logger.Named("favorites-service"),
	}
}

// Add stores a recipe snapshot. Adding an already favorited recipe is a
// no-op.
func (s *Service) Add(ctx context.Context, rec recipe.Recipe) error {
	favorites := s.load(ctx)
	for _, f := range favorites {
		if f.ID == rec.ID {
			return nil
		}
	}
	return s.save(ctx, append(favorites, rec))
}

// Remove drops a recipe from the set. Unknown ids are a no-op.
func (s *Service) Remove(ctx context.Context, recipeID int64) error {
	favorites := s.load(ctx)
	kept := favorites[:0:0]
	for _, f := range favorites {
		if f.ID != recipeID {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(favorites) {
		return nil
	}
	return s.save(ctx, kept)
}

// IsFavorite reports membership.
func (s *Service) IsFavorite(ctx context.Context, recipeID int64) bool {
	for _, f := range s.load(ctx) {
		if f.ID == recipeID {
			return true
		}
	}
	return false
}

// List returns every favorited recipe in insertion order.
func (s *Service) List(ctx context.Context) []recipe.Recipe {
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) []recipe.Recipe {
	raw, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		if err != outbound.ErrKeyNotFound {
			s.logger.Error("Failed to load favorites, continuing with empty set", zap.Error(err))
		}
		return nil
	}

	var favorites []recipe.Recipe
	if err := json.Unmarshal(raw, &favorites); err != nil {
		s.logger.Error("Malformed stored favorites, continuing with empty set", zap.Error(err))
		return nil
	}
	return favorites
}

func (s *Service) save(ctx context.Context, favorites []recipe.Recipe) error {
	raw, err := json.Marshal(favorites)
	if err != nil {
		return errors.NewStorageError("encode favorites", err)
	}
	if err := s.kv.Put(ctx, storageKey, raw); err != nil {
		s.logger.Error("Failed to save favorites", zap.Error(err))
		return errors.NewStorageError("save favorites", err)
	}
	return nil
}
