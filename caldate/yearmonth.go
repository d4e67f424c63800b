package caldate

import (
	"fmt"
	"time"

	"github.com/ngrash/go-cal/internal/datemath"
)

// YearMonthLayout is the textual form of a YearMonth.
const YearMonthLayout = "2006-01"

// YearMonth is a month of a specific year, such as the month shown by a
// calendar view.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses a month in YearMonthLayout form, e.g. "2024-02".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(YearMonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// IsZero reports whether ym is the zero YearMonth.
func (ym YearMonth) IsZero() bool {
	return ym == YearMonth{}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// AddMonths returns ym shifted by n months. There is no day of month
// involved, so the result never overflows into a following month.
func (ym YearMonth) AddMonths(n int) YearMonth {
	y, m, _ := datemath.Normalize(ym.Year, int(ym.Month)+n, 1)
	return YearMonth{Year: y, Month: time.Month(m)}
}

// First returns the first day of ym.
func (ym YearMonth) First() Date {
	return Date{Year: ym.Year, Month: ym.Month, Day: 1}
}

// Last returns the last day of ym.
func (ym YearMonth) Last() Date {
	return Date{Year: ym.Year, Month: ym.Month, Day: ym.Days()}
}

// Days returns the number of days in ym.
func (ym YearMonth) Days() int {
	return datemath.DaysInMonth(int(ym.Month), ym.Year)
}

// Contains reports whether d lies in ym.
func (ym YearMonth) Contains(d Date) bool {
	return d.Year == ym.Year && d.Month == ym.Month
}
