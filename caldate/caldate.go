// Package caldate provides a calendar date without time of day or
// location, and the year/month pair a calendar view displays.
//
// Dates compare at day granularity. They are plain values; every operation
// returns a new Date.
package caldate

import (
	"fmt"
	"time"

	"github.com/ngrash/go-cal/internal/datemath"
)

// Layout is the textual form of a Date, as used by String and Parse.
const Layout = "2006-01-02"

// Date is a day in the proleptic Gregorian calendar.
// The zero value is not a valid date and reports IsZero.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for year, month and day. Out-of-range months and
// days are normalized, so New(2024, time.March, 0) is 2024-02-29.
func New(year int, month time.Month, day int) Date {
	y, m, d := datemath.Normalize(year, int(month), day)
	return Date{Year: y, Month: time.Month(m), Day: d}
}

// FromTime returns the date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current date of now in loc. A nil loc means time.Local.
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(now.In(loc))
}

// Parse parses a date in Layout form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// MustParse is like Parse but panics on error. It is meant for tests and
// package-level variables.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns d in Layout form, e.g. "2024-02-29".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight of d in loc. A nil loc means UTC.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Days returns the number of days between 1970-01-01 and d.
func (d Date) Days() int64 {
	return datemath.DaysSinceEpoch(d.Year, int(d.Month), d.Day)
}

// FromDays returns the date that lies days after 1970-01-01.
func FromDays(days int64) Date {
	y, m, dd := datemath.FromDays(days)
	return Date{Year: y, Month: time.Month(m), Day: dd}
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return time.Weekday(datemath.DayOfWeek(d.Year, int(d.Month), d.Day))
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return FromDays(d.Days() + int64(n))
}

// YearMonth returns the month d belongs to.
func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// LastOfMonth returns the last day of d's month.
func (d Date) LastOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: datemath.DaysInMonth(int(d.Month), d.Year)}
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// SameDay reports whether a and b are the same calendar day.
func SameDay(a, b Date) bool {
	return a == b
}

// SameMonth reports whether a and b fall into the same month of the same year.
func SameMonth(a, b Date) bool {
	return a.Year == b.Year && a.Month == b.Month
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
