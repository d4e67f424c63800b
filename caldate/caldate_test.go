package caldate

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewNormalizes(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
		want  string
	}{
		{2024, time.March, 0, "2024-02-29"},
		{2024, time.December, 32, "2025-01-01"},
		{2024, time.January, 0, "2023-12-31"},
		{2024, 14, 1, "2025-02-01"},
		{2024, time.February, 29, "2024-02-29"},
		{2023, time.February, 29, "2023-03-01"},
	}
	for _, c := range cases {
		if got := New(c.year, c.month, c.day).String(); got != c.want {
			t.Errorf("New(%d, %v, %d) = %s, want %s", c.year, c.month, c.day, got, c.want)
		}
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2024-02-29")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if diff := cmp.Diff(Date{2024, time.February, 29}, d); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	for _, in := range []string{"", "2023-02-29", "2024-2-1", "yesterday"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestAddDays(t *testing.T) {
	cases := []struct {
		from string
		n    int
		want string
	}{
		{"2024-01-28", 7, "2024-02-04"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-03-31", -31, "2024-02-29"},
		{"2024-06-15", 0, "2024-06-15"},
	}
	for _, c := range cases {
		if got := MustParse(c.from).AddDays(c.n).String(); got != c.want {
			t.Errorf("%s.AddDays(%d) = %s, want %s", c.from, c.n, got, c.want)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	d := MustParse("2024-02-14")
	if got := d.FirstOfMonth().String(); got != "2024-02-01" {
		t.Errorf("FirstOfMonth() = %s", got)
	}
	if got := d.LastOfMonth().String(); got != "2024-02-29" {
		t.Errorf("LastOfMonth() = %s", got)
	}
	if got := MustParse("2023-12-05").LastOfMonth().String(); got != "2023-12-31" {
		t.Errorf("LastOfMonth() = %s", got)
	}
}

func TestCompareAndPredicates(t *testing.T) {
	a := MustParse("2024-02-14")
	b := MustParse("2024-02-15")
	c := MustParse("2024-03-14")

	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Errorf("Before is inconsistent for %s and %s", a, b)
	}
	if !c.After(b) || a.After(a) {
		t.Errorf("After is inconsistent for %s and %s", c, b)
	}
	if a.Compare(a) != 0 || a.Compare(c) != -1 || c.Compare(a) != 1 {
		t.Errorf("Compare is inconsistent")
	}
	if !SameDay(a, MustParse("2024-02-14")) || SameDay(a, b) {
		t.Errorf("SameDay is inconsistent")
	}
	if !SameMonth(a, b) || SameMonth(a, c) || SameMonth(a, MustParse("2023-02-14")) {
		t.Errorf("SameMonth is inconsistent")
	}
}

func TestFromTimeUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2024, time.March, 31, 20, 0, 0, 0, time.UTC)

	if got := Today(now, time.UTC).String(); got != "2024-03-31" {
		t.Errorf("Today(UTC) = %s", got)
	}
	if got := Today(now, tokyo).String(); got != "2024-04-01" {
		t.Errorf("Today(JST) = %s", got)
	}
	if got := MustParse("2024-04-01").Time(tokyo); !got.Equal(time.Date(2024, time.April, 1, 0, 0, 0, 0, tokyo)) {
		t.Errorf("Time(JST) = %v", got)
	}
}

func TestWeekday(t *testing.T) {
	for i := 0; i < 800; i++ {
		tm := time.Date(2022, time.November, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		if got, want := FromTime(tm).Weekday(), tm.Weekday(); got != want {
			t.Fatalf("%s.Weekday() = %v, want %v", tm.Format(Layout), got, want)
		}
	}
}
