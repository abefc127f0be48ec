package nutrition

import (
	"time"

	"github.com/mealforge/v1/internal/domain/mealplan"
)

// DefaultCalorieTarget is the per-day reference line of the weekly series.
const DefaultCalorieTarget = 2000

// DayCalories is one weekday entry of the weekly series.
type DayCalories struct {
	Day      string        `json:"day"`
	Date     mealplan.Date `json:"date"`
	Calories float64       `json:"calories"`
	Target   float64       `json:"target"`
}

// WeeklySeries produces seven entries for the Monday-start week containing
// now, summing each day's assignment calories (authoritative or estimated,
// scaled by servings) against the target. Assignments outside that week are
// excluded even when the summary totals elsewhere include them; the two
// views intentionally have different scopes.
func WeeklySeries(assignments []mealplan.Assignment, now time.Time, target float64) []DayCalories {
	if target <= 0 {
		target = DefaultCalorieTarget
	}

	monday := startOfWeek(now)
	series := make([]DayCalories, 7)
	byDate := make(map[mealplan.Date]int, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		date := mealplan.DateOf(day)
		series[i] = DayCalories{
			Day:    day.Format("Mon"),
			Date:   date,
			Target: target,
		}
		byDate[date] = i
	}

	for _, a := range assignments {
		i, ok := byDate[a.Date]
		if !ok {
			continue
		}
		f := factsFor(a.Recipe)
		series[i].Calories += f.calories * float64(a.Servings)
	}
	return series
}

// startOfWeek truncates a time to the Monday of its week.
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(t.Weekday()) + 6) % 7 // Monday == 0
	return t.AddDate(0, 0, -offset)
}
