package constraint

import (
	"testing"
	"time"

	"github.com/ngrash/go-cal/caldate"
)

var (
	jan10 = caldate.MustParse("2024-01-10")
	jan11 = caldate.MustParse("2024-01-11")
	jan12 = caldate.MustParse("2024-01-12")
	jan13 = caldate.MustParse("2024-01-13") // Saturday
	jan14 = caldate.MustParse("2024-01-14") // Sunday
)

func TestSetIsDisabled(t *testing.T) {
	cases := []struct {
		name string
		set  Set
		date caldate.Date
		want bool
	}{
		{"zero set", Set{}, jan10, false},
		{"global flag", Set{Disabled: true}, jan10, true},
		{"before min", Set{Min: jan11}, jan10, true},
		{"on min", Set{Min: jan11}, jan11, false},
		{"after max", Set{Max: jan11}, jan12, true},
		{"on max", Set{Max: jan11}, jan11, false},
		{"within bounds", Set{Min: jan10, Max: jan12}, jan11, false},
		{"fixed set member", Set{Dates: Dates(jan10, jan12)}, jan12, true},
		{"fixed set non member", Set{Dates: Dates(jan10, jan12)}, jan11, false},
		{"empty fixed set", Set{Dates: Dates()}, jan11, false},
		{"predicate true", Set{Dates: Func(func(d caldate.Date) bool { return d.Day%2 == 0 })}, jan12, true},
		{"predicate false", Set{Dates: Func(func(d caldate.Date) bool { return d.Day%2 == 0 })}, jan11, false},
		{"nil predicate", Set{Dates: Predicate(nil)}, jan11, false},
		{"bound wins over rule", Set{Min: jan12, Dates: Dates(jan13)}, jan11, true},
		{"weekend", Set{Dates: Weekdays(time.Saturday, time.Sunday)}, jan13, true},
		{"weekday", Set{Dates: Weekdays(time.Saturday, time.Sunday)}, jan12, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.set.IsDisabled(c.date); got != c.want {
				t.Errorf("IsDisabled(%s) = %v, want %v", c.date, got, c.want)
			}
		})
	}
}

func TestAny(t *testing.T) {
	rule := Any(Dates(jan10), Weekdays(time.Sunday), nil)
	for _, c := range []struct {
		date caldate.Date
		want bool
	}{
		{jan10, true},
		{jan11, false},
		{jan14, true},
	} {
		if got := (Set{Dates: rule}).IsDisabled(c.date); got != c.want {
			t.Errorf("IsDisabled(%s) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestSetString(t *testing.T) {
	cases := []struct {
		set  Set
		want string
	}{
		{Set{}, "any date"},
		{Set{Disabled: true, Min: jan10}, "disabled"},
		{Set{Min: jan10, Max: jan12}, "from 2024-01-10 until 2024-01-12"},
		{Set{Dates: Dates(jan10, jan11, jan12)}, "excluding 3 dates"},
		{Set{Max: jan12, Dates: Weekdays(time.Sunday)}, "until 2024-01-12 excluding matched dates"},
	}
	for _, c := range cases {
		if got := c.set.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
