package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/infrastructure/persistence/memory"
	"github.com/mealforge/v1/internal/ports/inbound"
	"github.com/mealforge/v1/test/testutils"
)

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	newService := func() inbound.FavoritesService {
		return NewService(memory.NewStore(), zap.NewNop())
	}

	first := testutils.NewRecipeBuilder(1).WithID(100).WithTitle("Pad Thai").Build()
	second := testutils.NewRecipeBuilder(2).WithID(200).WithTitle("Ramen").Build()

	t.Run("add and list preserve insertion order", func(t *testing.T) {
		service := newService()

		require.NoError(t, service.Add(ctx, first))
		require.NoError(t, service.Add(ctx, second))

		favorites := service.List(ctx)
		require.Len(t, favorites, 2)
		assert.Equal(t, "Pad Thai", favorites[0].Title)
		assert.Equal(t, "Ramen", favorites[1].Title)
	})

	t.Run("add is idempotent per recipe id", func(t *testing.T) {
		service := newService()

		require.NoError(t, service.Add(ctx, first))
		require.NoError(t, service.Add(ctx, first))

		assert.Len(t, service.List(ctx), 1)
	})

	t.Run("membership reporting", func(t *testing.T) {
		service := newService()
		require.NoError(t, service.Add(ctx, first))

		assert.True(t, service.IsFavorite(ctx, 100))
		assert.False(t, service.IsFavorite(ctx, 200))
	})

	t.Run("remove drops only the matching recipe", func(t *testing.T) {
		service := newService()
		require.NoError(t, service.Add(ctx, first))
		require.NoError(t, service.Add(ctx, second))

		require.NoError(t, service.Remove(ctx, 100))

		favorites := service.List(ctx)
		require.Len(t, favorites, 1)
		assert.Equal(t, int64(200), favorites[0].ID)

		// Unknown ids are a no-op.
		require.NoError(t, service.Remove(ctx, 999))
		assert.Len(t, service.List(ctx), 1)
	})
}
