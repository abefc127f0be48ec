// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use cases the HTTP layer drives.
package inbound

import (
	"context"
	"time"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/nutrition"
	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/domain/shopping"
)

// CreateAssignmentCommand carries the input for placing a recipe on the
// calendar.
type CreateAssignmentCommand struct {
	Recipe   recipe.Recipe
	Date     string
	Slot     string
	Servings int
	Notes    string
}

// PlanService is the authoritative meal assignment collection.
type PlanService interface {
	Create(ctx context.Context, cmd CreateAssignmentCommand) (string, error)
	Update(ctx context.Context, id string, patch mealplan.Patch) error
	Remove(ctx context.Context, id string) error
	Move(ctx context.Context, id string, date, slot string) error
	ListAll(ctx context.Context) []mealplan.Assignment
	ListRange(ctx context.Context, start, end string) ([]mealplan.Assignment, error)
	ExportText(ctx context.Context) string
}

// FavoritesService is the deduplicated favorite recipe set.
type FavoritesService interface {
	Add(ctx context.Context, rec recipe.Recipe) error
	Remove(ctx context.Context, recipeID int64) error
	IsFavorite(ctx context.Context, recipeID int64) bool
	List(ctx context.Context) []recipe.Recipe
}

// GenerateListCommand names a shopping list and scopes the assignments it is
// generated from; empty bounds mean the whole plan.
type GenerateListCommand struct {
	Name  string
	Start string
	End   string
}

// ShoppingService owns the persisted copies of generated shopping lists.
type ShoppingService interface {
	Generate(ctx context.Context, cmd GenerateListCommand) (shopping.List, error)
	List(ctx context.Context) []shopping.List
	Get(ctx context.Context, id string) (shopping.List, bool)
	Delete(ctx context.Context, id string) error
	ToggleItem(ctx context.Context, listID, itemID string) error
	Export(ctx context.Context, listID string, groupBy shopping.GroupBy, filter shopping.Filter, share bool) (string, error)
}

// NutritionService derives estimates from the current plan.
type NutritionService interface {
	Summary(ctx context.Context) nutrition.Summary
	Breakdown(ctx context.Context) nutrition.Breakdown
	Weekly(ctx context.Context, now time.Time) []nutrition.DayCalories
}

// SuggestionPreferences feed the AI prompt builders.
type SuggestionPreferences struct {
	FavoriteIngredients []string
	DietaryRestrictions []string
	DislikedIngredients []string
	PreferredCuisines   []string
	RecentMeals         []string
}

// MealPlanRequest asks the AI collaborator for an N-day plan.
type MealPlanRequest struct {
	Preferences SuggestionPreferences
	Days        int
}

// AIPlannerService wraps the language-model proxy with the prompts the
// application uses. All results are free text for the caller to present or
// normalize; nothing here writes to the plan.
type AIPlannerService interface {
	SuggestRecipes(ctx context.Context, prefs SuggestionPreferences, count int) (string, error)
	GenerateMealPlan(ctx context.Context, req MealPlanRequest) (string, error)
	ModifyRecipe(ctx context.Context, rec recipe.Recipe, modifications []string) (string, error)
	OptimizeShoppingList(ctx context.Context, ingredients []string, budget string) (string, error)
}
