package mealplan

import "time"

// dateLayout is the wire and storage form of a plan date. There is no time
// component: an assignment belongs to exactly one calendar day.
const dateLayout = "2006-01-02"

// Date is a calendar date in ISO YYYY-MM-DD form. Because the layout is
// fixed-width and big-endian, lexical comparison of two Dates matches
// chronological comparison, which range filtering relies on.
type Date string

// ParseDate validates a raw date string.
func ParseDate(raw string) (Date, error) {
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", ErrInvalidDate
	}
	return Date(raw), nil
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// Time returns the date as a UTC midnight time.
func (d Date) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

// String returns the ISO form.
func (d Date) String() string { return string(d) }
