package caldate

import (
	"testing"
	"time"
)

func TestISOWeekNumber(t *testing.T) {
	cases := []struct {
		date     string
		wantYear int
		wantWeek int
	}{
		{"2023-01-01", 2022, 52},
		{"2024-01-01", 2024, 1},
		{"2020-12-31", 2020, 53},
		{"2021-01-03", 2020, 53},
		{"2021-01-04", 2021, 1},
		{"2024-12-30", 2025, 1},
		{"2026-01-01", 2026, 1},
		{"2026-10-14", 2026, 42},
	}
	for _, c := range cases {
		d := MustParse(c.date)
		year, week := d.ISOWeek()
		if year != c.wantYear || week != c.wantWeek {
			t.Errorf("%s.ISOWeek() = (%d, %d), want (%d, %d)", c.date, year, week, c.wantYear, c.wantWeek)
		}
		if got := ISOWeekNumber(d); got != c.wantWeek {
			t.Errorf("ISOWeekNumber(%s) = %d, want %d", c.date, got, c.wantWeek)
		}
	}
}

func TestISOWeekMatchesTimePackage(t *testing.T) {
	start := time.Date(1995, time.December, 20, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365*40; i++ {
		tm := start.AddDate(0, 0, i)
		wantYear, wantWeek := tm.ISOWeek()
		gotYear, gotWeek := FromTime(tm).ISOWeek()
		if gotYear != wantYear || gotWeek != wantWeek {
			t.Fatalf("%s.ISOWeek() = (%d, %d), want (%d, %d)", tm.Format(Layout), gotYear, gotWeek, wantYear, wantWeek)
		}
	}
}
