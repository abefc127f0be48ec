// Package recipe defines the recipe snapshot consumed by the planning domain.
// Recipes are supplied by an external source and are read-only here: a recipe
// embedded in a meal assignment is a copy frozen at assignment time.
package recipe

// Recipe is an immutable snapshot of a recipe as delivered by the recipe
// source. The planner never mutates it.
type Recipe struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	ImageURL       string       `json:"image"`
	ReadyInMinutes int          `json:"readyInMinutes"`
	Servings       int          `json:"servings"`
	Ingredients    []Ingredient `json:"ingredients"`
	Nutrients      []Nutrient   `json:"nutrients,omitempty"`
	Diets          []string     `json:"diets,omitempty"`
	Cuisines       []string     `json:"cuisines,omitempty"`
}

// Ingredient is a single ingredient line of a recipe.
type Ingredient struct {
	Name      string  `json:"name"`
	CleanName string  `json:"nameClean"`
	Original  string  `json:"original"`
	Amount    float64 `json:"amount"`
	Unit      string  `json:"unit"`
	Aisle     string  `json:"aisle,omitempty"`
}

// Key returns the deduplication key for shopping-list aggregation: the clean
// name when present, the display name otherwise. Matching is case-sensitive.
func (i Ingredient) Key() string {
	if i.CleanName != "" {
		return i.CleanName
	}
	return i.Name
}

// Nutrient is an authoritative nutrient figure sourced from the recipe
// provider, per base serving.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Nutrient looks up an authoritative nutrient amount by name.
func (r Recipe) Nutrient(name string) (float64, bool) {
	for _, n := range r.Nutrients {
		if n.Name == name {
			return n.Amount, true
		}
	}
	return 0, false
}
