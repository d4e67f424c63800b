// Package datemath implements day-granular arithmetic on the proleptic
// Gregorian calendar using plain integers. It does not depend on
// time.Location, so results never shift with the local time zone.
package datemath

// IsLeapYear determines if the year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a given month (1-12) for a specific year.
func DaysInMonth(month, year int) int {
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

const (
	daysPer400Years = 365*400 + 97

	// Days from 0000-03-01 to 1970-01-01.
	epochShift = 719468
)

// DaysSinceEpoch returns the number of days from 1970-01-01 to the given date.
// Negative results are days before the epoch. Day and month must be in range;
// use Normalize for overflowing values.
func DaysSinceEpoch(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y-- // years start in March so the leap day is last
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := int64((month + 9) % 12)
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400Years + doe - epochShift
}

// FromDays is the inverse of DaysSinceEpoch.
func FromDays(days int64) (year, month, day int) {
	z := days + epochShift
	era := floorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153

	y := yoe + era*400
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

// Normalize resolves out-of-range months and days the way a wall calendar
// would: month 13 is January of the next year and day 0 is the last day of
// the previous month.
func Normalize(year, month, day int) (int, int, int) {
	year += int(floorDiv(int64(month-1), 12))
	month = int(floorMod(int64(month-1), 12)) + 1
	if day >= 1 && day <= DaysInMonth(month, year) {
		return year, month, day
	}
	return FromDays(DaysSinceEpoch(year, month, 1) + int64(day-1))
}

// DayOfWeek calculates the day of the week for a given date,
// where 0=Sunday, 1=Monday, ..., 6=Saturday.
func DayOfWeek(year, month, day int) int {
	// 1970-01-01 was a Thursday.
	return int(floorMod(DaysSinceEpoch(year, month, day)+4, 7))
}

// LastWeekday finds the last occurrence of a given weekday before or on a given day,
// accounting for overflow into the previous month or year. Returns a tuple of (year, month, day).
func LastWeekday(year, month, day, targetWeekday int) (int, int, int) {
	diff := (DayOfWeek(year, month, day) - targetWeekday + 7) % 7
	return FromDays(DaysSinceEpoch(year, month, day) - int64(diff))
}

// NextWeekday calculates the next occurrence of a weekday on or after a given day,
// accounting for overflow into the next month or year. Returns a tuple of (year, month, day).
func NextWeekday(year, month, day, targetWeekday int) (int, int, int) {
	diff := (targetWeekday - DayOfWeek(year, month, day) + 7) % 7
	return FromDays(DaysSinceEpoch(year, month, day) + int64(diff))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
