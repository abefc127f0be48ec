// Package mealplan contains the core domain logic for the weekly meal plan:
// dated, slotted recipe assignments and the rules for creating and patching
// them.
package mealplan

import (
	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/recipe"
)

// Assignment is a single recipe placed on a calendar date and meal slot with
// a requested serving count. The recipe is embedded by value at creation
// time, so later edits to the source recipe never alter an existing
// assignment.
type Assignment struct {
	ID       string        `json:"id"`
	Date     Date          `json:"date"`
	Slot     Slot          `json:"mealType"`
	Recipe   recipe.Recipe `json:"recipe"`
	Servings int           `json:"servings"`
	Notes    string        `json:"notes,omitempty"`
}

// NewAssignment validates the inputs and builds an assignment with a fresh
// identifier. Servings below 1 are rejected, not clamped.
func NewAssignment(rec recipe.Recipe, date Date, slot Slot, servings int, notes string) (Assignment, error) {
	if _, err := ParseDate(string(date)); err != nil {
		return Assignment{}, err
	}
	if !slot.Valid() {
		return Assignment{}, ErrInvalidSlot
	}
	if servings < 1 {
		return Assignment{}, ErrInvalidServings
	}

	return Assignment{
		ID:       uuid.NewString(),
		Date:     date,
		Slot:     slot,
		Recipe:   rec,
		Servings: servings,
		Notes:    notes,
	}, nil
}

// Patch is an explicit partial update. A nil field means "leave unchanged";
// a non-nil field means "set to this value", so an intentionally empty note
// is distinguishable from an omitted one.
type Patch struct {
	Date     *Date   `json:"date,omitempty"`
	Slot     *Slot   `json:"mealType,omitempty"`
	Servings *int    `json:"servings,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// Apply validates every set field and applies the patch in place. The
// assignment is untouched when any field fails validation.
func (a *Assignment) Apply(p Patch) error {
	if p.Date != nil {
		if _, err := ParseDate(string(*p.Date)); err != nil {
			return err
		}
	}
	if p.Slot != nil && !p.Slot.Valid() {
		return ErrInvalidSlot
	}
	if p.Servings != nil && *p.Servings < 1 {
		return ErrInvalidServings
	}

	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Slot != nil {
		a.Slot = *p.Slot
	}
	if p.Servings != nil {
		a.Servings = *p.Servings
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	return nil
}

// MovePatch builds the patch used by the drag-and-drop move operation:
// date and slot only.
func MovePatch(date Date, slot Slot) Patch {
	return Patch{Date: &date, Slot: &slot}
}

// FilterRange returns the assignments whose date falls inside [start, end],
// bounds inclusive, preserving insertion order. Callers needing calendar
// order must sort.
func FilterRange(assignments []Assignment, start, end Date) []Assignment {
	out := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Date >= start && a.Date <= end {
			out = append(out, a)
		}
	}
	return out
}

// DistinctDates counts the distinct calendar dates present in a set of
// assignments.
func DistinctDates(assignments []Assignment) int {
	seen := make(map[Date]struct{}, len(assignments))
	for _, a := range assignments {
		seen[a.Date] = struct{}{}
	}
	return len(seen)
}
