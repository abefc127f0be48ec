// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/recipe"
)

// RecipeBuilder provides a fluent interface for building recipe snapshots
type RecipeBuilder struct {
	faker *gofakeit.Faker
	rec   recipe.Recipe
}

// NewRecipeBuilder creates a recipe builder with seeded defaults
func NewRecipeBuilder(seed int64) *RecipeBuilder {
	faker := gofakeit.New(seed)
	return &RecipeBuilder{
		faker: faker,
		rec: recipe.Recipe{
			ID:             faker.Int64(),
			Title:          faker.Dinner(),
			ImageURL:       faker.URL(),
			ReadyInMinutes: faker.Number(10, 90),
			Servings:       faker.Number(1, 6),
		},
	}
}

// WithID sets the recipe ID
func (rb *RecipeBuilder) WithID(id int64) *RecipeBuilder {
	rb.rec.ID = id
	return rb
}

// WithTitle sets the recipe title
func (rb *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	rb.rec.Title = title
	return rb
}

// WithReadyInMinutes sets the preparation time
func (rb *RecipeBuilder) WithReadyInMinutes(minutes int) *RecipeBuilder {
	rb.rec.ReadyInMinutes = minutes
	return rb
}

// WithServings sets the base servings
func (rb *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	rb.rec.Servings = servings
	return rb
}

// WithIngredient appends an ingredient line
func (rb *RecipeBuilder) WithIngredient(name, cleanName string, amount float64, unit, aisle string) *RecipeBuilder {
	rb.rec.Ingredients = append(rb.rec.Ingredients, recipe.Ingredient{
		Name:      name,
		CleanName: cleanName,
		Original:  name,
		Amount:    amount,
		Unit:      unit,
		Aisle:     aisle,
	})
	return rb
}

// WithRandomIngredients appends n faker-generated ingredient lines
func (rb *RecipeBuilder) WithRandomIngredients(n int) *RecipeBuilder {
	for i := 0; i < n; i++ {
		name := rb.faker.Vegetable()
		rb.rec.Ingredients = append(rb.rec.Ingredients, recipe.Ingredient{
			Name:      name,
			CleanName: name,
			Original:  name,
			Amount:    float64(rb.faker.Number(1, 4)),
			Unit:      "cup",
			Aisle:     "Produce",
		})
	}
	return rb
}

// WithNutrient appends an authoritative nutrient figure
func (rb *RecipeBuilder) WithNutrient(name string, amount float64, unit string) *RecipeBuilder {
	rb.rec.Nutrients = append(rb.rec.Nutrients, recipe.Nutrient{
		Name:   name,
		Amount: amount,
		Unit:   unit,
	})
	return rb
}

// Build returns the assembled recipe snapshot
func (rb *RecipeBuilder) Build() recipe.Recipe {
	return rb.rec
}

// AssignmentBuilder builds meal assignments around a recipe snapshot
type AssignmentBuilder struct {
	assignment mealplan.Assignment
}

// NewAssignmentBuilder creates an assignment builder with sane defaults
func NewAssignmentBuilder(rec recipe.Recipe) *AssignmentBuilder {
	return &AssignmentBuilder{
		assignment: mealplan.Assignment{
			ID:       uuid.NewString(),
			Date:     mealplan.Date("2026-03-02"),
			Slot:     mealplan.SlotDinner,
			Recipe:   rec,
			Servings: 2,
		},
	}
}

// On sets the calendar date
func (ab *AssignmentBuilder) On(date string) *AssignmentBuilder {
	ab.assignment.Date = mealplan.Date(date)
	return ab
}

// At sets the meal slot
func (ab *AssignmentBuilder) At(slot mealplan.Slot) *AssignmentBuilder {
	ab.assignment.Slot = slot
	return ab
}

// ForServings sets the planned servings
func (ab *AssignmentBuilder) ForServings(servings int) *AssignmentBuilder {
	ab.assignment.Servings = servings
	return ab
}

// WithNotes sets the free-text note
func (ab *AssignmentBuilder) WithNotes(notes string) *AssignmentBuilder {
	ab.assignment.Notes = notes
	return ab
}

// Build returns the assembled assignment
func (ab *AssignmentBuilder) Build() mealplan.Assignment {
	return ab.assignment
}
