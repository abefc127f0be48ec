package nutrition

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mealplanapp "github.com/mealforge/v1/internal/application/mealplan"
	"github.com/mealforge/v1/internal/infrastructure/persistence/memory"
	"github.com/mealforge/v1/internal/ports/inbound"
	"github.com/mealforge/v1/test/testutils"
)

func newFixture(t *testing.T) (inbound.PlanService, inbound.NutritionService) {
	t.Helper()
	plans := mealplanapp.NewService(memory.NewStore(), zap.NewNop())
	return plans, NewService(plans, 1800, zap.NewNop())
}

func plan(t *testing.T, plans inbound.PlanService, date string, servings int) {
	t.Helper()
	rec := testutils.NewRecipeBuilder(1).
		WithNutrient("Calories", 500, "kcal").
		WithNutrient("Protein", 30, "g").
		WithNutrient("Carbohydrates", 50, "g").
		WithNutrient("Fat", 20, "g").
		Build()
	_, err := plans.Create(context.Background(), inbound.CreateAssignmentCommand{
		Recipe:   rec,
		Date:     date,
		Slot:     "dinner",
		Servings: servings,
	})
	require.NoError(t, err)
}

func TestSummaryOverPlan(t *testing.T) {
	plans, service := newFixture(t)
	plan(t, plans, "2026-03-02", 1)
	plan(t, plans, "2026-03-03", 2)

	s := service.Summary(context.Background())

	assert.Equal(t, 1500.0, s.Calories)
	assert.Equal(t, 2, s.Days)
	assert.Equal(t, 750.0, s.DailyCalories)
}

func TestBreakdownOverEmptyPlan(t *testing.T) {
	_, service := newFixture(t)

	b := service.Breakdown(context.Background())

	assert.Equal(t, 33, b.Protein)
	assert.Equal(t, 34, b.Carbs)
	assert.Equal(t, 33, b.Fat)
}

func TestWeeklyUsesConfiguredTarget(t *testing.T) {
	plans, service := newFixture(t)
	plan(t, plans, "2026-03-02", 1)
	plan(t, plans, "2026-03-20", 1)

	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	series := service.Weekly(context.Background(), now)

	require.Len(t, series, 7)
	assert.Equal(t, 1800.0, series[0].Target)
	assert.Equal(t, 500.0, series[0].Calories)
	// The assignment outside the current week is not in the series even
	// though the summary counts it.
	total := 0.0
	for _, d := range series {
		total += d.Calories
	}
	assert.Equal(t, 500.0, total)
}
