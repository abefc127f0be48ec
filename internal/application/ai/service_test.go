package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/ports/inbound"
	apperrors "github.com/mealforge/v1/pkg/errors"
	"github.com/mealforge/v1/test/testutils"
)

// capturingLLM records the prompt and returns a canned completion
type capturingLLM struct {
	prompt string
	reply  string
	err    error
}

func (c *capturingLLM) Complete(ctx context.Context, prompt string) (string, error) {
	c.prompt = prompt
	return c.reply, c.err
}

func TestSuggestRecipes(t *testing.T) {
	llm := &capturingLLM{reply: "[]"}
	service := NewService(llm, zap.NewNop())

	prefs := inbound.SuggestionPreferences{
		FavoriteIngredients: []string{"garlic", "basil"},
		DietaryRestrictions: []string{"vegetarian"},
		RecentMeals:         []string{"Pasta"},
	}

	text, err := service.SuggestRecipes(context.Background(), prefs, 5)

	require.NoError(t, err)
	assert.Equal(t, "[]", text)
	assert.Contains(t, llm.prompt, "suggest 5 personalized recipes")
	assert.Contains(t, llm.prompt, "garlic, basil")
	assert.Contains(t, llm.prompt, "vegetarian")
	assert.Contains(t, llm.prompt, "Pasta")
	// Unset preference lists fall back to placeholders.
	assert.Contains(t, llm.prompt, "Disliked ingredients: None")
	assert.Contains(t, llm.prompt, "Preferred cuisines: Any")
}

func TestSuggestRecipesDefaultCount(t *testing.T) {
	llm := &capturingLLM{}
	service := NewService(llm, zap.NewNop())

	_, err := service.SuggestRecipes(context.Background(), inbound.SuggestionPreferences{}, 0)

	require.NoError(t, err)
	assert.Contains(t, llm.prompt, "suggest 3 personalized recipes")
}

func TestGenerateMealPlan(t *testing.T) {
	llm := &capturingLLM{reply: "Day 1:\nBreakfast: Oats"}
	service := NewService(llm, zap.NewNop())

	text, err := service.GenerateMealPlan(context.Background(), inbound.MealPlanRequest{
		Days: 3,
		Preferences: inbound.SuggestionPreferences{
			PreferredCuisines: []string{"Thai"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Day 1:\nBreakfast: Oats", text)
	assert.Contains(t, llm.prompt, "Create a 3-day meal plan")
	assert.Contains(t, llm.prompt, "Thai")
}

func TestGenerateMealPlanDefaultsToWeek(t *testing.T) {
	llm := &capturingLLM{}
	service := NewService(llm, zap.NewNop())

	_, err := service.GenerateMealPlan(context.Background(), inbound.MealPlanRequest{})

	require.NoError(t, err)
	assert.Contains(t, llm.prompt, "Create a 7-day meal plan")
}

func TestModifyRecipe(t *testing.T) {
	llm := &capturingLLM{}
	service := NewService(llm, zap.NewNop())

	rec := testutils.NewRecipeBuilder(1).
		WithTitle("Pad Thai").
		WithServings(4).
		WithReadyInMinutes(25).
		WithIngredient("rice noodles", "rice noodles", 200, "g", "").
		Build()

	_, err := service.ModifyRecipe(context.Background(), rec, []string{"vegan", "gluten-free"})

	require.NoError(t, err)
	assert.Contains(t, llm.prompt, "vegan, gluten-free")
	assert.Contains(t, llm.prompt, "Title: Pad Thai")
	assert.Contains(t, llm.prompt, "rice noodles")
	assert.Contains(t, llm.prompt, "Cooking Time: 25 minutes")
}

func TestOptimizeShoppingList(t *testing.T) {
	llm := &capturingLLM{}
	service := NewService(llm, zap.NewNop())

	_, err := service.OptimizeShoppingList(context.Background(), []string{"milk", "eggs"}, "")

	require.NoError(t, err)
	assert.Contains(t, llm.prompt, "milk, eggs")
	assert.Contains(t, llm.prompt, "medium budget")
}

func TestCompletionFailureIsWrapped(t *testing.T) {
	llm := &capturingLLM{err: errors.New("rate limited")}
	service := NewService(llm, zap.NewNop())

	_, err := service.OptimizeShoppingList(context.Background(), []string{"milk"}, "low")

	assert.True(t, apperrors.Is(err, apperrors.CodeExternalServiceError))
}
