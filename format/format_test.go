package format

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/ngrash/go-cal/caldate"
)

func TestDefaults(t *testing.T) {
	d := caldate.MustParse("2024-02-29")
	var f Formatter
	if got := f.FormatMonth(d); got != "February 2024" {
		t.Errorf("FormatMonth() = %q", got)
	}
	if got := f.FormatWeekday(d); got != "Thu" {
		t.Errorf("FormatWeekday() = %q", got)
	}
	if got := DayLabel(d); got != "29 February 2024" {
		t.Errorf("DayLabel() = %q", got)
	}
}

func TestCustomHooks(t *testing.T) {
	f := Formatter{
		Month:   func(d caldate.Date) string { return d.YearMonth().String() },
		Weekday: func(d caldate.Date) string { return d.Weekday().String() },
	}
	d := caldate.MustParse("2024-02-29")
	if got := f.FormatMonth(d); got != "2024-02" {
		t.Errorf("FormatMonth() = %q", got)
	}
	if got := f.FormatWeekday(d); got != "Thursday" {
		t.Errorf("FormatWeekday() = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"Mon", 2, "Mo"},
		{"Mo", 2, "Mo"},
		{"mié", 2, "mi"},
		{"sáb", 2, "sá"},
		{"Пн", 1, "П"},
		{"Sun", 0, ""},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.n); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}

func TestForLocale(t *testing.T) {
	d := caldate.MustParse("2024-03-04") // Monday
	cases := []struct {
		locale      string
		wantMonth   string
		wantWeekday string
	}{
		{"", "March 2024", "Mon"},
		{"en-GB", "March 2024", "Mon"},
		{"de-CH", "März 2024", "Mo"},
		{"fr-CH, fr;q=0.9, en;q=0.8", "mars 2024", "lun"},
		{"es-419", "marzo 2024", "lun"},
		{"ru", "Март 2024", "Пн"},
		{"ja", "March 2024", "Mon"},
	}
	for _, c := range cases {
		t.Run(c.locale, func(t *testing.T) {
			tags, err := ParseLocale(c.locale)
			if err != nil {
				t.Fatalf("ParseLocale() error: %v", err)
			}
			f := ForLocale(tags...)
			if got := f.FormatMonth(d); got != c.wantMonth {
				t.Errorf("FormatMonth() = %q, want %q", got, c.wantMonth)
			}
			if got := f.FormatWeekday(d); got != c.wantWeekday {
				t.Errorf("FormatWeekday() = %q, want %q", got, c.wantWeekday)
			}
		})
	}
}

func TestLocale(t *testing.T) {
	if got := Locale(language.MustParse("de-AT")); got != language.German {
		t.Errorf("Locale(de-AT) = %v, want %v", got, language.German)
	}
	if got := Locale(); got != language.English {
		t.Errorf("Locale() = %v, want %v", got, language.English)
	}
}

func TestParseLocaleError(t *testing.T) {
	if _, err := ParseLocale("not a locale;q=x"); err == nil {
		t.Errorf("ParseLocale() succeeded, want error")
	}
}
