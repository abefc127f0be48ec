// Package recipes assembles the recipe source the application sees: the
// primary client with an optional fallback, behind a read-through cache.
package recipes

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/outbound"
)

// FallbackSource tries the primary source and falls back to the secondary
// on any error, mirroring the application's historical Spoonacular-then-
// MealDB behavior. A nil secondary disables the fallback.
type FallbackSource struct {
	primary   outbound.RecipeSource
	secondary outbound.RecipeSource
	logger    *zap.Logger
}

// NewFallbackSource creates a new fallback source
func NewFallbackSource(primary, secondary outbound.RecipeSource, logger *zap.Logger) *FallbackSource {
	return &FallbackSource{
		primary:   primary,
		secondary: secondary,
		logger:    logger.Named("recipe-source"),
	}
}

// Search queries the primary source, then the secondary.
func (s *FallbackSource) Search(ctx context.Context, filters outbound.SearchFilters) ([]recipe.Recipe, error) {
	results, err := s.primary.Search(ctx, filters)
	if err == nil {
		return results, nil
	}
	if s.secondary == nil {
		return nil, err
	}

	s.logger.Warn("Primary recipe source failed, falling back", zap.Error(err))
	return s.secondary.Search(ctx, filters)
}

// GetByID fetches from the primary source, then the secondary.
func (s *FallbackSource) GetByID(ctx context.Context, id int64) (recipe.Recipe, error) {
	rec, err := s.primary.GetByID(ctx, id)
	if err == nil {
		return rec, nil
	}
	if s.secondary == nil {
		return recipe.Recipe{}, err
	}

	s.logger.Warn("Primary recipe source failed, falling back", zap.Error(err))
	return s.secondary.GetByID(ctx, id)
}

// CachedSource is a read-through cache decorator over a recipe source.
// Cache failures are invisible to callers; the source is always the
// authority.
type CachedSource struct {
	source outbound.RecipeSource
	cache  outbound.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedSource creates a new cached source
func NewCachedSource(source outbound.RecipeSource, cache outbound.CacheRepository, ttl time.Duration, logger *zap.Logger) *CachedSource {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &CachedSource{
		source: source,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("recipe-cache"),
	}
}

// Search serves cached results when the same filters were queried recently.
func (s *CachedSource) Search(ctx context.Context, filters outbound.SearchFilters) ([]recipe.Recipe, error) {
	key := searchKey(filters)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var cached []recipe.Recipe
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	results, err := s.source.Search(ctx, filters)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(results); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.logger.Debug("Failed to cache search results", zap.Error(err))
		}
	}
	return results, nil
}

// GetByID serves a cached recipe when available.
func (s *CachedSource) GetByID(ctx context.Context, id int64) (recipe.Recipe, error) {
	key := fmt.Sprintf("recipes:detail:%d", id)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var cached recipe.Recipe
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	rec, err := s.source.GetByID(ctx, id)
	if err != nil {
		return recipe.Recipe{}, err
	}

	if raw, err := json.Marshal(rec); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.logger.Debug("Failed to cache recipe", zap.Error(err))
		}
	}
	return rec, nil
}

// searchKey hashes the filter set into a stable cache key.
func searchKey(filters outbound.SearchFilters) string {
	raw, _ := json.Marshal(filters)
	sum := sha256.Sum256(raw)
	return "recipes:search:" + hex.EncodeToString(sum[:8])
}
