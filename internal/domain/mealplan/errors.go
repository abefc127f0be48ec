package mealplan

import "errors"

// Domain errors for meal plan operations

var (
	ErrInvalidSlot     = errors.New("meal slot must be one of breakfast, lunch, dinner, snack")
	ErrInvalidDate     = errors.New("date must be a calendar date in YYYY-MM-DD form")
	ErrInvalidServings = errors.New("servings must be at least 1")
	ErrInvalidRange    = errors.New("range start must not be after range end")

	ErrAssignmentNotFound = errors.New("meal assignment not found")
)
