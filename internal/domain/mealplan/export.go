package mealplan

import (
	"fmt"
	"sort"
	"strings"
)

// ExportText renders a set of assignments as day-separated text blocks, the
// download/share format for a planned week. Days are sorted chronologically,
// slots within a day follow breakfast, lunch, dinner, snack order, and a
// blank line separates days.
func ExportText(assignments []Assignment) string {
	byDate := make(map[Date][]Assignment)
	for _, a := range assignments {
		byDate[a.Date] = append(byDate[a.Date], a)
	}

	dates := make([]Date, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	var b strings.Builder
	for i, d := range dates {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(d.String())
		for _, slot := range Slots {
			for _, a := range byDate[d] {
				if a.Slot != slot {
					continue
				}
				fmt.Fprintf(&b, "\n%s: %s (%d servings)", slot.Label(), a.Recipe.Title, a.Servings)
				if a.Notes != "" {
					fmt.Fprintf(&b, " - %s", a.Notes)
				}
			}
		}
	}
	return b.String()
}
