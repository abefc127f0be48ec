package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/test/testutils"
)

// BuildListTestSuite covers the aggregation semantics of list generation
type BuildListTestSuite struct {
	suite.Suite
}

func (suite *BuildListTestSuite) TestScaling() {
	suite.Run("AmountScalesByPlannedServings", func() {
		// Arrange: 1.5 cups per line, planned for 3 servings.
		rec := testutils.NewRecipeBuilder(1).
			WithServings(4).
			WithIngredient("roma tomatoes", "tomato", 1.5, "cup", "Produce").
			Build()
		a := testutils.NewAssignmentBuilder(rec).ForServings(3).Build()

		// Act
		list := BuildList("week", []mealplan.Assignment{a})

		// Assert: the recipe's own base servings play no part.
		require.Len(suite.T(), list.Items, 1)
		assert.Equal(suite.T(), 4.5, list.Items[0].Amount)
	})

	suite.Run("AmountsRoundedToTwoDecimals", func() {
		rec := testutils.NewRecipeBuilder(2).
			WithIngredient("feta", "feta", 0.333, "cup", "Dairy").
			Build()
		a := testutils.NewAssignmentBuilder(rec).ForServings(1).Build()

		list := BuildList("week", []mealplan.Assignment{a})

		require.Len(suite.T(), list.Items, 1)
		assert.Equal(suite.T(), 0.33, list.Items[0].Amount)
	})
}

func (suite *BuildListTestSuite) TestDeduplication() {
	suite.Run("SameCleanName_ShouldMerge", func() {
		// Arrange: two recipes contributing the same clean name in
		// different units.
		pasta := testutils.NewRecipeBuilder(3).
			WithTitle("Pasta").
			WithIngredient("garlic cloves", "garlic", 2, "cloves", "Produce").
			Build()
		soup := testutils.NewRecipeBuilder(4).
			WithTitle("Soup").
			WithIngredient("minced garlic", "garlic", 1, "tbsp", "Spices").
			Build()

		assignments := []mealplan.Assignment{
			testutils.NewAssignmentBuilder(pasta).ForServings(1).Build(),
			testutils.NewAssignmentBuilder(soup).ForServings(2).Build(),
		}

		// Act
		list := BuildList("week", assignments)

		// Assert: amounts sum, unit and aisle stick with the first
		// occurrence, recipe titles union.
		require.Len(suite.T(), list.Items, 1)
		item := list.Items[0]
		assert.Equal(suite.T(), "garlic", item.Ingredient)
		assert.Equal(suite.T(), 4.0, item.Amount)
		assert.Equal(suite.T(), "cloves", item.Unit)
		assert.Equal(suite.T(), "Produce", item.Aisle)
		assert.Equal(suite.T(), []string{"Pasta", "Soup"}, item.Recipes)
	})

	suite.Run("CaseSensitiveNames_ShouldNotMerge", func() {
		rec := testutils.NewRecipeBuilder(5).
			WithIngredient("Garlic", "Garlic", 1, "clove", "").
			WithIngredient("garlic", "garlic", 1, "clove", "").
			Build()
		a := testutils.NewAssignmentBuilder(rec).ForServings(1).Build()

		list := BuildList("week", []mealplan.Assignment{a})

		assert.Len(suite.T(), list.Items, 2)
	})

	suite.Run("RepeatedRecipeTitle_ShouldAppearOnce", func() {
		rec := testutils.NewRecipeBuilder(6).
			WithTitle("Stir Fry").
			WithIngredient("soy sauce", "soy sauce", 1, "tbsp", "").
			Build()
		assignments := []mealplan.Assignment{
			testutils.NewAssignmentBuilder(rec).On("2026-03-02").Build(),
			testutils.NewAssignmentBuilder(rec).On("2026-03-04").Build(),
		}

		list := BuildList("week", assignments)

		require.Len(suite.T(), list.Items, 1)
		assert.Equal(suite.T(), []string{"Stir Fry"}, list.Items[0].Recipes)
	})

	suite.Run("FallbackToDisplayName_WhenCleanNameEmpty", func() {
		rec := testutils.NewRecipeBuilder(7).
			WithIngredient("baby spinach", "", 2, "cup", "Produce").
			Build()
		a := testutils.NewAssignmentBuilder(rec).ForServings(1).Build()

		list := BuildList("week", []mealplan.Assignment{a})

		require.Len(suite.T(), list.Items, 1)
		assert.Equal(suite.T(), "baby spinach", list.Items[0].Ingredient)
	})

	suite.Run("EmptyNames_ShouldBeSkipped", func() {
		rec := testutils.NewRecipeBuilder(8).
			WithIngredient("", "", 2, "cup", "").
			Build()
		a := testutils.NewAssignmentBuilder(rec).Build()

		list := BuildList("week", []mealplan.Assignment{a})

		assert.Empty(suite.T(), list.Items)
	})
}

func (suite *BuildListTestSuite) TestFreshState() {
	suite.Run("AllItemsStartUnchecked", func() {
		rec := testutils.NewRecipeBuilder(9).WithRandomIngredients(5).Build()
		a := testutils.NewAssignmentBuilder(rec).Build()

		list := BuildList("week", []mealplan.Assignment{a})

		for _, item := range list.Items {
			assert.False(suite.T(), item.Checked)
		}
		assert.Equal(suite.T(), 0, list.CheckedCount())
	})

	suite.Run("FirstSeenOrder_ShouldBePreserved", func() {
		rec := testutils.NewRecipeBuilder(10).
			WithIngredient("zucchini", "zucchini", 1, "", "").
			WithIngredient("apple", "apple", 1, "", "").
			WithIngredient("mango", "mango", 1, "", "").
			Build()
		a := testutils.NewAssignmentBuilder(rec).ForServings(1).Build()

		list := BuildList("week", []mealplan.Assignment{a})

		require.Len(suite.T(), list.Items, 3)
		assert.Equal(suite.T(), "zucchini", list.Items[0].Ingredient)
		assert.Equal(suite.T(), "apple", list.Items[1].Ingredient)
		assert.Equal(suite.T(), "mango", list.Items[2].Ingredient)
	})

	suite.Run("EmptyPlan_ShouldYieldEmptyList", func() {
		list := BuildList("week", nil)

		assert.NotEmpty(suite.T(), list.ID)
		assert.Equal(suite.T(), "week", list.Name)
		assert.Empty(suite.T(), list.Items)
	})
}

func TestBuildListTestSuite(t *testing.T) {
	suite.Run(t, new(BuildListTestSuite))
}

func TestToggleItem(t *testing.T) {
	rec := testutils.NewRecipeBuilder(11).
		WithIngredient("lemon", "lemon", 1, "", "Produce").
		Build()
	list := BuildList("week", []mealplan.Assignment{
		testutils.NewAssignmentBuilder(rec).Build(),
	})
	require.Len(t, list.Items, 1)
	id := list.Items[0].ID

	list.ToggleItem(id)
	assert.True(t, list.Items[0].Checked)
	assert.Equal(t, 1, list.CheckedCount())

	list.ToggleItem(id)
	assert.False(t, list.Items[0].Checked)

	// Unknown ids are a no-op.
	list.ToggleItem("nope")
	assert.Equal(t, 0, list.CheckedCount())
}
