// Package constraint decides which calendar dates can not be selected.
//
// A Set combines a global switch, optional lower and upper bounds, and a
// DateRule. A date is disabled as soon as any part of the Set flags it.
package constraint

import (
	"strconv"
	"strings"
	"time"

	"github.com/ngrash/go-cal/caldate"
)

// DateRule flags individual dates. It is implemented by exactly two types,
// FixedSet and Predicate.
type DateRule interface {
	// Disabled reports whether the rule excludes d.
	Disabled(d caldate.Date) bool

	isDateRule()
}

// FixedSet disables an explicit list of dates.
type FixedSet []caldate.Date

// Dates returns a FixedSet of ds.
func Dates(ds ...caldate.Date) FixedSet {
	return FixedSet(ds)
}

// Disabled reports whether d is a member of s.
func (s FixedSet) Disabled(d caldate.Date) bool {
	for _, member := range s {
		if caldate.SameDay(member, d) {
			return true
		}
	}
	return false
}

func (FixedSet) isDateRule() {}

// Predicate disables every date it returns true for.
type Predicate func(d caldate.Date) bool

// Func returns f as a Predicate.
func Func(f func(d caldate.Date) bool) Predicate {
	return Predicate(f)
}

// Disabled calls p. A nil Predicate disables nothing.
func (p Predicate) Disabled(d caldate.Date) bool {
	return p != nil && p(d)
}

func (Predicate) isDateRule() {}

// Weekdays returns a Predicate that disables every date falling on one of ws.
func Weekdays(ws ...time.Weekday) Predicate {
	var mask [7]bool
	for _, w := range ws {
		mask[(int(w)%7+7)%7] = true
	}
	return func(d caldate.Date) bool {
		return mask[d.Weekday()]
	}
}

// Any returns a Predicate that disables a date if any of rules does.
// Nil rules are skipped.
func Any(rules ...DateRule) Predicate {
	return func(d caldate.Date) bool {
		for _, r := range rules {
			if r != nil && r.Disabled(d) {
				return true
			}
		}
		return false
	}
}

// Set is the full set of disable rules of a calendar.
// The zero value disables nothing.
type Set struct {
	// Disabled disables every date.
	Disabled bool
	// Min is the earliest selectable date. The zero Date means no bound.
	Min caldate.Date
	// Max is the latest selectable date. The zero Date means no bound.
	Max caldate.Date
	// Dates is an optional rule for individual dates.
	Dates DateRule
}

// IsDisabled reports whether d can not be selected.
func (s Set) IsDisabled(d caldate.Date) bool {
	if s.Disabled {
		return true
	}
	if !s.Min.IsZero() && d.Before(s.Min) {
		return true
	}
	if !s.Max.IsZero() && d.After(s.Max) {
		return true
	}
	switch r := s.Dates.(type) {
	case FixedSet:
		return r.Disabled(d)
	case Predicate:
		return r.Disabled(d)
	}
	return false
}

// String describes s, e.g. "from 2024-01-01 until 2024-12-31 excluding 3 dates".
func (s Set) String() string {
	if s.Disabled {
		return "disabled"
	}
	var parts []string
	if !s.Min.IsZero() {
		parts = append(parts, "from "+s.Min.String())
	}
	if !s.Max.IsZero() {
		parts = append(parts, "until "+s.Max.String())
	}
	switch r := s.Dates.(type) {
	case FixedSet:
		if len(r) == 1 {
			parts = append(parts, "excluding 1 date")
		} else if len(r) > 1 {
			parts = append(parts, "excluding "+strconv.Itoa(len(r))+" dates")
		}
	case Predicate:
		if r != nil {
			parts = append(parts, "excluding matched dates")
		}
	}
	if len(parts) == 0 {
		return "any date"
	}
	return strings.Join(parts, " ")
}
