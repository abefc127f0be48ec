package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/test/testutils"
)

// EstimatorTestSuite covers calorie and macro estimation
type EstimatorTestSuite struct {
	suite.Suite
}

func (suite *EstimatorTestSuite) TestHeuristicFallback() {
	suite.Run("NoNutrients_ShouldEstimateFromPrepTime", func() {
		// Arrange: 30 minutes, no authoritative nutrients, 1 serving.
		rec := testutils.NewRecipeBuilder(1).WithReadyInMinutes(30).Build()
		a := testutils.NewAssignmentBuilder(rec).ForServings(1).Build()

		// Act
		s := Estimate([]mealplan.Assignment{a})

		// Assert: 30 * 20 = 600 kcal, split 15/50/35 at 4/4/9 kcal/g.
		assert.Equal(suite.T(), 600.0, s.Calories)
		assert.InDelta(suite.T(), 22.5, s.Protein, 0.001)
		assert.InDelta(suite.T(), 75.0, s.Carbs, 0.001)
		assert.InDelta(suite.T(), 600.0*0.35/9, s.Fat, 0.001)
	})

	suite.Run("AuthoritativeNutrients_ShouldWin", func() {
		rec := testutils.NewRecipeBuilder(2).
			WithReadyInMinutes(30).
			WithNutrient("Calories", 450, "kcal").
			WithNutrient("Protein", 32, "g").
			WithNutrient("Carbohydrates", 40, "g").
			WithNutrient("Fat", 15, "g").
			Build()
		a := testutils.NewAssignmentBuilder(rec).ForServings(1).Build()

		s := Estimate([]mealplan.Assignment{a})

		assert.Equal(suite.T(), 450.0, s.Calories)
		assert.Equal(suite.T(), 32.0, s.Protein)
		assert.Equal(suite.T(), 40.0, s.Carbs)
		assert.Equal(suite.T(), 15.0, s.Fat)
	})

	suite.Run("PartialNutrients_ShouldMixSources", func() {
		// Calories authoritative, macros estimated from those calories.
		rec := testutils.NewRecipeBuilder(3).
			WithReadyInMinutes(60).
			WithNutrient("Calories", 400, "kcal").
			Build()
		a := testutils.NewAssignmentBuilder(rec).ForServings(1).Build()

		s := Estimate([]mealplan.Assignment{a})

		assert.Equal(suite.T(), 400.0, s.Calories)
		assert.InDelta(suite.T(), 400*0.15/4, s.Protein, 0.001)
		assert.InDelta(suite.T(), 400*0.50/4, s.Carbs, 0.001)
		assert.InDelta(suite.T(), 400*0.35/9, s.Fat, 0.001)
	})
}

func (suite *EstimatorTestSuite) TestAggregation() {
	suite.Run("FiguresScaleByServings", func() {
		rec := testutils.NewRecipeBuilder(4).
			WithNutrient("Calories", 500, "kcal").
			Build()
		a := testutils.NewAssignmentBuilder(rec).ForServings(3).Build()

		s := Estimate([]mealplan.Assignment{a})

		assert.Equal(suite.T(), 1500.0, s.Calories)
	})

	suite.Run("DailyAverages_ShouldDivideByDistinctDates", func() {
		rec := testutils.NewRecipeBuilder(5).
			WithNutrient("Calories", 500, "kcal").
			Build()
		assignments := []mealplan.Assignment{
			testutils.NewAssignmentBuilder(rec).On("2026-03-02").At(mealplan.SlotLunch).ForServings(1).Build(),
			testutils.NewAssignmentBuilder(rec).On("2026-03-02").At(mealplan.SlotDinner).ForServings(1).Build(),
			testutils.NewAssignmentBuilder(rec).On("2026-03-03").ForServings(1).Build(),
		}

		s := Estimate(assignments)

		assert.Equal(suite.T(), 2, s.Days)
		assert.Equal(suite.T(), 1500.0, s.Calories)
		assert.Equal(suite.T(), 750.0, s.DailyCalories)
	})

	suite.Run("EmptyPlan_ShouldYieldZeroes", func() {
		s := Estimate(nil)

		assert.Zero(suite.T(), s.Calories)
		assert.Zero(suite.T(), s.Days)
		assert.Zero(suite.T(), s.DailyCalories)
	})
}

func (suite *EstimatorTestSuite) TestMacroBreakdown() {
	suite.Run("Percentages_ShouldComeFromMacroCalories", func() {
		s := Summary{Protein: 50, Carbs: 100, Fat: 20}
		// 200 + 400 + 180 = 780 macro kcal.

		b := s.MacroBreakdown()

		assert.Equal(suite.T(), 26, b.Protein)
		assert.Equal(suite.T(), 51, b.Carbs)
		assert.Equal(suite.T(), 23, b.Fat)
	})

	suite.Run("NoMacros_ShouldFallBackToFixedSplit", func() {
		b := Summary{}.MacroBreakdown()

		assert.Equal(suite.T(), Breakdown{Protein: 33, Carbs: 34, Fat: 33}, b)
	})
}

func TestEstimatorTestSuite(t *testing.T) {
	suite.Run(t, new(EstimatorTestSuite))
}
