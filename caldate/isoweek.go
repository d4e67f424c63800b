package caldate

import "github.com/ngrash/go-cal/internal/datemath"

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
// Week ranges from 1 to 53. Jan 01 to Jan 03 of year n might belong to
// week 52 or 53 of year n-1, and Dec 29 to Dec 31 might belong to week 1
// of year n+1.
func (d Date) ISOWeek() (year, week int) {
	isoWeekday := int(d.Weekday())
	if isoWeekday == 0 {
		isoWeekday = 7
	}
	// The Thursday of d's week decides which year the week belongs to.
	thursday := d.Days() + int64(4-isoWeekday)
	y, _, _ := datemath.FromDays(thursday)
	yearStart := datemath.DaysSinceEpoch(y, 1, 1)
	return y, int((thursday-yearStart)/7) + 1
}

// ISOWeekNumber returns the ISO 8601 week number of d.
func ISOWeekNumber(d Date) int {
	_, week := d.ISOWeek()
	return week
}
