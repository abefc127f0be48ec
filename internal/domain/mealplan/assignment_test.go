package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mealforge/v1/internal/domain/recipe"
)

// AssignmentTestSuite provides a test suite for meal assignments
type AssignmentTestSuite struct {
	suite.Suite
	rec recipe.Recipe
}

func (suite *AssignmentTestSuite) SetupSuite() {
	suite.rec = recipe.Recipe{
		ID:             715538,
		Title:          "Bruschetta Style Pork & Pasta",
		ReadyInMinutes: 35,
		Servings:       4,
	}
}

func (suite *AssignmentTestSuite) TestNewAssignment() {
	suite.Run("ValidInput_ShouldCreateSuccessfully", func() {
		// Act
		a, err := NewAssignment(suite.rec, Date("2026-03-02"), SlotDinner, 2, "double the garlic")

		// Assert
		require.NoError(suite.T(), err)
		assert.NotEmpty(suite.T(), a.ID)
		assert.Equal(suite.T(), Date("2026-03-02"), a.Date)
		assert.Equal(suite.T(), SlotDinner, a.Slot)
		assert.Equal(suite.T(), 2, a.Servings)
		assert.Equal(suite.T(), "double the garlic", a.Notes)
		assert.Equal(suite.T(), suite.rec.ID, a.Recipe.ID)
	})

	suite.Run("UniqueIdentifiers_ShouldDiffer", func() {
		a1, err := NewAssignment(suite.rec, Date("2026-03-02"), SlotLunch, 1, "")
		require.NoError(suite.T(), err)
		a2, err := NewAssignment(suite.rec, Date("2026-03-02"), SlotLunch, 1, "")
		require.NoError(suite.T(), err)

		assert.NotEqual(suite.T(), a1.ID, a2.ID)
	})

	suite.Run("InvalidDate_ShouldReturnError", func() {
		_, err := NewAssignment(suite.rec, Date("03/02/2026"), SlotDinner, 2, "")
		assert.ErrorIs(suite.T(), err, ErrInvalidDate)
	})

	suite.Run("InvalidSlot_ShouldReturnError", func() {
		_, err := NewAssignment(suite.rec, Date("2026-03-02"), Slot("brunch"), 2, "")
		assert.ErrorIs(suite.T(), err, ErrInvalidSlot)
	})

	suite.Run("ZeroServings_ShouldReturnError", func() {
		_, err := NewAssignment(suite.rec, Date("2026-03-02"), SlotDinner, 0, "")
		assert.ErrorIs(suite.T(), err, ErrInvalidServings)
	})
}

func (suite *AssignmentTestSuite) TestPatch() {
	base := func() Assignment {
		a, err := NewAssignment(suite.rec, Date("2026-03-02"), SlotDinner, 2, "original note")
		require.NoError(suite.T(), err)
		return a
	}

	suite.Run("NilFields_ShouldLeaveUnchanged", func() {
		a := base()

		err := a.Apply(Patch{})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), Date("2026-03-02"), a.Date)
		assert.Equal(suite.T(), SlotDinner, a.Slot)
		assert.Equal(suite.T(), 2, a.Servings)
		assert.Equal(suite.T(), "original note", a.Notes)
	})

	suite.Run("SetFields_ShouldApply", func() {
		a := base()
		date := Date("2026-03-05")
		slot := SlotLunch
		servings := 6

		err := a.Apply(Patch{Date: &date, Slot: &slot, Servings: &servings})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), date, a.Date)
		assert.Equal(suite.T(), slot, a.Slot)
		assert.Equal(suite.T(), 6, a.Servings)
		assert.Equal(suite.T(), "original note", a.Notes)
	})

	suite.Run("EmptyNotes_ShouldClearWhenSet", func() {
		a := base()
		empty := ""

		err := a.Apply(Patch{Notes: &empty})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "", a.Notes)
	})

	suite.Run("InvalidField_ShouldLeaveAssignmentUntouched", func() {
		a := base()
		date := Date("2026-03-05")
		servings := 0

		err := a.Apply(Patch{Date: &date, Servings: &servings})

		assert.ErrorIs(suite.T(), err, ErrInvalidServings)
		assert.Equal(suite.T(), Date("2026-03-02"), a.Date)
		assert.Equal(suite.T(), 2, a.Servings)
	})

	suite.Run("MovePatch_ShouldSetDateAndSlotOnly", func() {
		a := base()

		err := a.Apply(MovePatch(Date("2026-03-04"), SlotBreakfast))

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), Date("2026-03-04"), a.Date)
		assert.Equal(suite.T(), SlotBreakfast, a.Slot)
		assert.Equal(suite.T(), 2, a.Servings)
		assert.Equal(suite.T(), "original note", a.Notes)
	})
}

func (suite *AssignmentTestSuite) TestFilterRange() {
	mk := func(date string) Assignment {
		a, err := NewAssignment(suite.rec, Date(date), SlotDinner, 1, "")
		require.NoError(suite.T(), err)
		return a
	}
	assignments := []Assignment{
		mk("2026-03-01"),
		mk("2026-03-03"),
		mk("2026-03-05"),
		mk("2026-03-07"),
	}

	suite.Run("InclusiveBounds_ShouldKeepEdgeDates", func() {
		got := FilterRange(assignments, Date("2026-03-03"), Date("2026-03-05"))

		require.Len(suite.T(), got, 2)
		assert.Equal(suite.T(), Date("2026-03-03"), got[0].Date)
		assert.Equal(suite.T(), Date("2026-03-05"), got[1].Date)
	})

	suite.Run("EmptyRange_ShouldReturnEmpty", func() {
		got := FilterRange(assignments, Date("2026-04-01"), Date("2026-04-30"))
		assert.Empty(suite.T(), got)
	})

	suite.Run("InsertionOrder_ShouldBePreserved", func() {
		got := FilterRange(assignments, Date("2026-03-01"), Date("2026-03-07"))

		require.Len(suite.T(), got, 4)
		for i := 1; i < len(got); i++ {
			assert.True(suite.T(), got[i-1].Date < got[i].Date)
		}
	})
}

func (suite *AssignmentTestSuite) TestDistinctDates() {
	mk := func(date string, slot Slot) Assignment {
		a, err := NewAssignment(suite.rec, Date(date), slot, 1, "")
		require.NoError(suite.T(), err)
		return a
	}

	assignments := []Assignment{
		mk("2026-03-02", SlotBreakfast),
		mk("2026-03-02", SlotDinner),
		mk("2026-03-03", SlotDinner),
	}

	assert.Equal(suite.T(), 2, DistinctDates(assignments))
	assert.Equal(suite.T(), 0, DistinctDates(nil))
}

func TestAssignmentTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentTestSuite))
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		raw     string
		want    Slot
		wantErr bool
	}{
		{"breakfast", SlotBreakfast, false},
		{"lunch", SlotLunch, false},
		{"dinner", SlotDinner, false},
		{"snack", SlotSnack, false},
		{"brunch", "", true},
		{"", "", true},
		{"Dinner", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSlot(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidSlot, "raw=%q", tt.raw)
			continue
		}
		require.NoError(t, err, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{"2026-03-02", false},
		{"2026-12-31", false},
		{"2026-13-01", true},
		{"2026-02-30", true},
		{"03/02/2026", true},
		{"2026-3-2", true},
		{"", true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidDate, "raw=%q", tt.raw)
			continue
		}
		require.NoError(t, err, "raw=%q", tt.raw)
		assert.Equal(t, Date(tt.raw), got)
	}
}

func TestDateOrdering(t *testing.T) {
	// Lexical comparison of the fixed layout matches chronology.
	assert.True(t, Date("2026-03-02") < Date("2026-03-10"))
	assert.True(t, Date("2026-02-28") < Date("2026-03-01"))
	assert.True(t, Date("2025-12-31") < Date("2026-01-01"))
}
