// Package config reads calendar options from YAML files.
//
// Example:
//
//	week-starts-on: monday
//	show-week-numbers: true
//	min-date: 2024-01-01
//	disabled-weekdays: [saturday, sunday]
//	disabled-dates:
//	  - 2024-12-25
//	locale: de-CH
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ngrash/go-cal/caldate"
	"github.com/ngrash/go-cal/constraint"
	"github.com/ngrash/go-cal/format"
	"github.com/ngrash/go-cal/picker"
)

// Config is the file form of a calendar's options.
type Config struct {
	WeekStartsOn     Weekday   `yaml:"week-starts-on"`
	ShowWeekNumbers  bool      `yaml:"show-week-numbers"`
	ShowOutsideDays  *bool     `yaml:"show-outside-days"`
	Compact          bool      `yaml:"compact"`
	Disabled         bool      `yaml:"disabled"`
	MinDate          string    `yaml:"min-date"`
	MaxDate          string    `yaml:"max-date"`
	DisabledDates    []string  `yaml:"disabled-dates"`
	DisabledWeekdays []Weekday `yaml:"disabled-weekdays"`
	Locale           string    `yaml:"locale"`
	Timezone         string    `yaml:"timezone"`
}

// Weekday is a day of the week written either as a name ("monday", "Mon")
// or as a number from 0 (Sunday) to 6 (Saturday).
type Weekday time.Weekday

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses a weekday name, a three letter abbreviation or a number.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday %d out of range 0-6", n)
		}
		return time.Weekday(n), nil
	}
	if w, ok := weekdayNames[s]; ok {
		return w, nil
	}
	if len(s) == 3 {
		for name, w := range weekdayNames {
			if strings.HasPrefix(name, s) {
				return w, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *Weekday) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	wd, err := ParseWeekday(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*w = Weekday(wd)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (w Weekday) MarshalYAML() (any, error) {
	return strings.ToLower(time.Weekday(w).String()), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{}
}

// Parse reads a YAML configuration from r and validates it.
func Parse(r io.Reader) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Validate reports every problem in c.
func (c *Config) Validate() error {
	var errs []error
	minDate, err := parseOptionalDate("min-date", c.MinDate)
	if err != nil {
		errs = append(errs, err)
	}
	maxDate, err := parseOptionalDate("max-date", c.MaxDate)
	if err != nil {
		errs = append(errs, err)
	}
	if !minDate.IsZero() && !maxDate.IsZero() && maxDate.Before(minDate) {
		errs = append(errs, fmt.Errorf("max-date %s is before min-date %s", maxDate, minDate))
	}
	for i, s := range c.DisabledDates {
		if _, err := caldate.Parse(s); err != nil {
			errs = append(errs, fmt.Errorf("disabled-dates[%d]: %w", i, err))
		}
	}
	if _, err := format.ParseLocale(c.Locale); err != nil {
		errs = append(errs, fmt.Errorf("locale: %w", err))
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			errs = append(errs, fmt.Errorf("timezone: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Location returns the configured time zone, or time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Constraints builds the disable rules described by c.
func (c *Config) Constraints() (constraint.Set, error) {
	set := constraint.Set{Disabled: c.Disabled}
	var err error
	if set.Min, err = parseOptionalDate("min-date", c.MinDate); err != nil {
		return constraint.Set{}, err
	}
	if set.Max, err = parseOptionalDate("max-date", c.MaxDate); err != nil {
		return constraint.Set{}, err
	}

	var dates constraint.FixedSet
	for i, s := range c.DisabledDates {
		d, err := caldate.Parse(s)
		if err != nil {
			return constraint.Set{}, fmt.Errorf("disabled-dates[%d]: %w", i, err)
		}
		dates = append(dates, d)
	}
	switch {
	case len(c.DisabledWeekdays) > 0:
		weekdays := make([]time.Weekday, len(c.DisabledWeekdays))
		for i, w := range c.DisabledWeekdays {
			weekdays[i] = time.Weekday(w)
		}
		set.Dates = constraint.Any(dates, constraint.Weekdays(weekdays...))
	case len(dates) > 0:
		set.Dates = dates
	}
	return set, nil
}

// Formatter returns the formatter for the configured locale, falling back
// to the preferred tags (for example from an Accept-Language header) when
// no locale is configured.
func (c *Config) Formatter(fallback string) format.Formatter {
	locale := c.Locale
	if locale == "" {
		locale = fallback
	}
	tags, err := format.ParseLocale(locale)
	if err != nil {
		return format.Formatter{}
	}
	return format.ForLocale(tags...)
}

// Options converts c into picker options. Selection, OnChange, Clock and
// Logger are left for the caller to set.
func (c *Config) Options() (picker.Options, error) {
	set, err := c.Constraints()
	if err != nil {
		return picker.Options{}, err
	}
	loc, err := c.Location()
	if err != nil {
		return picker.Options{}, fmt.Errorf("timezone: %w", err)
	}
	return picker.Options{
		Constraints:     set,
		WeekStartsOn:    time.Weekday(c.WeekStartsOn),
		ShowOutsideDays: c.ShowOutsideDays,
		ShowWeekNumbers: c.ShowWeekNumbers,
		Compact:         c.Compact,
		Formatter:       c.Formatter(""),
		Location:        loc,
	}, nil
}

func parseOptionalDate(field, s string) (caldate.Date, error) {
	if strings.TrimSpace(s) == "" {
		return caldate.Date{}, nil
	}
	d, err := caldate.Parse(strings.TrimSpace(s))
	if err != nil {
		return caldate.Date{}, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}
