// Package format holds the labels a calendar shows: the month title, the
// weekday column headers and the accessible label of each day.
package format

import (
	"fmt"

	"github.com/ngrash/go-cal/caldate"
)

// Formatter renders month titles and weekday headers.
// Nil fields fall back to the English defaults.
type Formatter struct {
	// Month renders the title of the month d belongs to.
	Month func(d caldate.Date) string
	// Weekday renders the column header for d's weekday.
	Weekday func(d caldate.Date) string
}

// FormatMonth renders the title of d's month, e.g. "February 2024".
func (f Formatter) FormatMonth(d caldate.Date) string {
	if f.Month != nil {
		return f.Month(d)
	}
	return english.month(d)
}

// FormatWeekday renders the header of d's weekday, e.g. "Thu".
func (f Formatter) FormatWeekday(d caldate.Date) string {
	if f.Weekday != nil {
		return f.Weekday(d)
	}
	return english.weekday(d)
}

// DefaultMonth returns the full English month name and the year.
func DefaultMonth(d caldate.Date) string {
	return english.month(d)
}

// DefaultWeekday returns the three letter English weekday abbreviation.
func DefaultWeekday(d caldate.Date) string {
	return english.weekday(d)
}

// DayLabel returns the accessible label of a day cell, e.g. "29 February 2024".
func DayLabel(d caldate.Date) string {
	return fmt.Sprintf("%d %s %d", d.Day, english.months[d.Month-1], d.Year)
}

// Truncate returns the first n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
