// Package grid lays out the days of a month as whole weeks.
package grid

import (
	"time"

	"github.com/ngrash/go-cal/caldate"
	"github.com/ngrash/go-cal/format"
	"github.com/ngrash/go-cal/internal/datemath"
)

// DaysInWeek is the number of cells in a grid row.
const DaysInWeek = 7

// Generate returns the dates shown for ym when weeks start on weekStartsOn,
// in ascending order. The grid begins on the last weekStartsOn on or before
// the first of the month and ends on the day before the next weekStartsOn
// after the last of the month, so its length is always a multiple of 7.
func Generate(ym caldate.YearMonth, weekStartsOn time.Weekday) []caldate.Date {
	start := normalizeWeekday(weekStartsOn)
	end := (start + DaysInWeek - 1) % DaysInWeek

	first, last := ym.First(), ym.Last()
	y, m, d := datemath.LastWeekday(first.Year, int(first.Month), first.Day, start)
	gridStart := caldate.Date{Year: y, Month: time.Month(m), Day: d}
	y, m, d = datemath.NextWeekday(last.Year, int(last.Month), last.Day, end)
	gridEnd := caldate.Date{Year: y, Month: time.Month(m), Day: d}

	n := int(gridEnd.Days()-gridStart.Days()) + 1
	days := make([]caldate.Date, 0, n)
	for day := gridStart; !day.After(gridEnd); day = day.AddDays(1) {
		days = append(days, day)
	}
	return days
}

// Weeks splits cells into rows of DaysInWeek. A trailing partial row is kept.
func Weeks[T any](cells []T) [][]T {
	weeks := make([][]T, 0, (len(cells)+DaysInWeek-1)/DaysInWeek)
	for i := 0; i < len(cells); i += DaysInWeek {
		weeks = append(weeks, cells[i:min(i+DaysInWeek, len(cells))])
	}
	return weeks
}

// WeekNumbers returns the ISO week number of the first day of every row of days.
func WeekNumbers(days []caldate.Date) []int {
	var numbers []int
	for i := 0; i < len(days); i += DaysInWeek {
		numbers = append(numbers, caldate.ISOWeekNumber(days[i]))
	}
	return numbers
}

// referenceSunday is the first day of a week used to render weekday headers.
var referenceSunday = caldate.Date{Year: 2023, Month: time.January, Day: 1}

// WeekdayLabels returns the column headers of a grid starting on weekStartsOn.
// Compact labels are cut to two characters.
func WeekdayLabels(weekStartsOn time.Weekday, f format.Formatter, compact bool) []string {
	start := normalizeWeekday(weekStartsOn)
	labels := make([]string, DaysInWeek)
	for i := range labels {
		label := f.FormatWeekday(referenceSunday.AddDays((start + i) % DaysInWeek))
		if compact {
			label = format.Truncate(label, 2)
		}
		labels[i] = label
	}
	return labels
}

func normalizeWeekday(w time.Weekday) int {
	return (int(w)%DaysInWeek + DaysInWeek) % DaysInWeek
}
