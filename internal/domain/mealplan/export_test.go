package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealforge/v1/internal/domain/recipe"
)

func TestExportText(t *testing.T) {
	mk := func(title, date string, slot Slot, servings int, notes string) Assignment {
		a, err := NewAssignment(recipe.Recipe{ID: 1, Title: title}, Date(date), slot, servings, notes)
		require.NoError(t, err)
		return a
	}

	t.Run("empty plan yields empty text", func(t *testing.T) {
		assert.Equal(t, "", ExportText(nil))
	})

	t.Run("days sorted and slot order enforced", func(t *testing.T) {
		assignments := []Assignment{
			mk("Pasta", "2026-03-03", SlotDinner, 2, ""),
			mk("Oatmeal", "2026-03-02", SlotBreakfast, 1, ""),
			mk("Salad", "2026-03-02", SlotDinner, 2, "extra dressing"),
			mk("Soup", "2026-03-02", SlotLunch, 1, ""),
		}

		want := "2026-03-02" +
			"\nBreakfast: Oatmeal (1 servings)" +
			"\nLunch: Soup (1 servings)" +
			"\nDinner: Salad (2 servings) - extra dressing" +
			"\n\n2026-03-03" +
			"\nDinner: Pasta (2 servings)"

		assert.Equal(t, want, ExportText(assignments))
	})

	t.Run("notes omitted when empty", func(t *testing.T) {
		got := ExportText([]Assignment{mk("Pasta", "2026-03-02", SlotDinner, 2, "")})
		assert.Equal(t, "2026-03-02\nDinner: Pasta (2 servings)", got)
	})
}
