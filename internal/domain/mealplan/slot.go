package mealplan

// Slot identifies the meal of the day an assignment belongs to.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotSnack     Slot = "snack"
)

// Slots lists every valid slot in display order.
var Slots = []Slot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

// ParseSlot validates a raw slot string. The enum is closed: anything outside
// the four known values is rejected.
func ParseSlot(raw string) (Slot, error) {
	s := Slot(raw)
	if !s.Valid() {
		return "", ErrInvalidSlot
	}
	return s, nil
}

// Valid reports whether the slot is one of the four known values.
func (s Slot) Valid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	}
	return false
}

// Label returns the slot name with an upper-cased first letter, for text
// exports.
func (s Slot) Label() string {
	if s == "" {
		return ""
	}
	raw := string(s)
	return string(raw[0]-'a'+'A') + raw[1:]
}
