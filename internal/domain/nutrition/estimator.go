// Package nutrition derives calorie and macro estimates from meal
// assignments. Authoritative nutrient data from the recipe source wins when
// present; otherwise a crude prep-time heuristic fills in, so a plan always
// produces figures. Every call recomputes from scratch.
package nutrition

import (
	"math"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/recipe"
)

// Heuristic fallback used when a recipe carries no authoritative nutrients:
// 20 kcal per minute of prep time, split 15/50/35 across protein, carbs and
// fat at 4/4/9 kcal per gram. The exact constants are load-bearing; stored
// plans were estimated with them.
const (
	kcalPerMinute = 20

	proteinShare = 0.15
	carbShare    = 0.50
	fatShare     = 0.35

	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// Names of the authoritative nutrients consulted on a recipe.
const (
	nutrientCalories = "Calories"
	nutrientProtein  = "Protein"
	nutrientCarbs    = "Carbohydrates"
	nutrientFat      = "Fat"
)

// Summary aggregates an assignment set: running totals across every
// assignment plus per-day averages over the distinct dates present.
type Summary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	Days int `json:"days"`

	DailyCalories float64 `json:"dailyCalories"`
	DailyProtein  float64 `json:"dailyProtein"`
	DailyCarbs    float64 `json:"dailyCarbs"`
	DailyFat      float64 `json:"dailyFat"`
}

// Breakdown is the macro split expressed as rounded percentages of macro
// calories.
type Breakdown struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// facts are one recipe's per-serving figures, authoritative or estimated.
type facts struct {
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

func factsFor(rec recipe.Recipe) facts {
	cal, ok := rec.Nutrient(nutrientCalories)
	if !ok {
		cal = float64(rec.ReadyInMinutes * kcalPerMinute)
	}

	f := facts{calories: cal}

	if v, ok := rec.Nutrient(nutrientProtein); ok {
		f.protein = v
	} else {
		f.protein = cal * proteinShare / kcalPerGramProtein
	}
	if v, ok := rec.Nutrient(nutrientCarbs); ok {
		f.carbs = v
	} else {
		f.carbs = cal * carbShare / kcalPerGramCarb
	}
	if v, ok := rec.Nutrient(nutrientFat); ok {
		f.fat = v
	} else {
		f.fat = cal * fatShare / kcalPerGramFat
	}
	return f
}

// Estimate computes the summary for a set of assignments. An empty set
// yields zero totals, zero days and zero daily averages.
func Estimate(assignments []mealplan.Assignment) Summary {
	var s Summary
	for _, a := range assignments {
		f := factsFor(a.Recipe)
		servings := float64(a.Servings)
		s.Calories += f.calories * servings
		s.Protein += f.protein * servings
		s.Carbs += f.carbs * servings
		s.Fat += f.fat * servings
	}

	s.Days = mealplan.DistinctDates(assignments)
	if s.Days > 0 {
		days := float64(s.Days)
		s.DailyCalories = s.Calories / days
		s.DailyProtein = s.Protein / days
		s.DailyCarbs = s.Carbs / days
		s.DailyFat = s.Fat / days
	}
	return s
}

// MacroBreakdown converts the summary's macro totals to calories and
// expresses each as a rounded percentage of their sum. With no macro
// calories at all it falls back to a fixed 33/34/33 split rather than
// dividing by zero.
func (s Summary) MacroBreakdown() Breakdown {
	proteinCal := s.Protein * kcalPerGramProtein
	carbCal := s.Carbs * kcalPerGramCarb
	fatCal := s.Fat * kcalPerGramFat

	total := proteinCal + carbCal + fatCal
	if total == 0 {
		return Breakdown{Protein: 33, Carbs: 34, Fat: 33}
	}

	return Breakdown{
		Protein: int(math.Round(proteinCal / total * 100)),
		Carbs:   int(math.Round(carbCal / total * 100)),
		Fat:     int(math.Round(fatCal / total * 100)),
	}
}
