// Package shopping builds deduplicated, scaled shopping lists from meal
// assignments. List construction is a pure transformation: the same
// assignments always produce the same items (fresh identifiers aside), and
// regeneration never carries checked state over from an earlier list.
package shopping

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/mealplan"
)

// Item is a single aggregated ingredient entry. Amount is the sum of scaled
// contributions in the unit of the first occurrence; units are never
// converted or reconciled.
type Item struct {
	ID         string   `json:"id"`
	Ingredient string   `json:"ingredient"`
	Amount     float64  `json:"amount"`
	Unit       string   `json:"unit"`
	Checked    bool     `json:"checked"`
	Recipes    []string `json:"recipes"`
	Aisle      string   `json:"aisle,omitempty"`
}

// List is a named shopping list generated from a set of assignments at a
// point in time.
type List struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"dateCreated"`
	Items     []Item    `json:"items"`
}

// BuildList aggregates the ingredient lines of every assignment's recipe
// into a deduplicated list.
//
// Each contribution is ingredient amount times the assignment's requested
// servings. The recipe's own base serving count is deliberately not part of
// the scaling; changing it never changes an existing list. Collisions on the
// clean ingredient name sum amounts and union contributing recipe titles,
// while unit and aisle stick with the first occurrence. Final amounts are
// rounded to two decimals and every item starts unchecked.
func BuildList(name string, assignments []mealplan.Assignment) List {
	type entry struct {
		amount  float64
		unit    string
		aisle   string
		recipes []string
	}

	entries := make(map[string]*entry)
	var order []string

	for _, a := range assignments {
		for _, ing := range a.Recipe.Ingredients {
			key := ing.Key()
			if key == "" {
				continue
			}
			scaled := ing.Amount * float64(a.Servings)

			e, ok := entries[key]
			if !ok {
				entries[key] = &entry{
					amount:  scaled,
					unit:    ing.Unit,
					aisle:   ing.Aisle,
					recipes: []string{a.Recipe.Title},
				}
				order = append(order, key)
				continue
			}

			e.amount += scaled
			if !contains(e.recipes, a.Recipe.Title) {
				e.recipes = append(e.recipes, a.Recipe.Title)
			}
		}
	}

	items := make([]Item, 0, len(order))
	for _, key := range order {
		e := entries[key]
		items = append(items, Item{
			ID:         uuid.NewString(),
			Ingredient: key,
			Amount:     round2(e.amount),
			Unit:       e.unit,
			Checked:    false,
			Recipes:    e.recipes,
			Aisle:      e.aisle,
		})
	}

	return List{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Items:     items,
	}
}

// ToggleItem flips the checked state of one item. Toggling an unknown item
// id is a no-op.
func (l *List) ToggleItem(itemID string) {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			l.Items[i].Checked = !l.Items[i].Checked
			return
		}
	}
}

// CheckedCount returns how many items are checked.
func (l List) CheckedCount() int {
	n := 0
	for _, it := range l.Items {
		if it.Checked {
			n++
		}
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
