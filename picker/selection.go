package picker

import "github.com/ngrash/go-cal/caldate"

// Selection owns the selected date of a Picker. It is chosen once, when the
// Picker is created, and is either Owned (uncontrolled) or External
// (controlled). A Picker never switches between the two.
type Selection interface {
	// current returns the selected date, if any.
	current() (caldate.Date, bool)
	// accept is called with every successfully selected date.
	accept(d caldate.Date)
	controlled() bool
}

// Owned returns an uncontrolled Selection that starts at initial and is
// updated by every successful selection. A nil initial means nothing is
// selected.
func Owned(initial *caldate.Date) Selection {
	s := &ownedSelection{}
	if initial != nil && !initial.IsZero() {
		s.value, s.ok = *initial, true
	}
	return s
}

type ownedSelection struct {
	value caldate.Date
	ok    bool
}

func (s *ownedSelection) current() (caldate.Date, bool) { return s.value, s.ok }
func (s *ownedSelection) accept(d caldate.Date)         { s.value, s.ok = d, true }
func (s *ownedSelection) controlled() bool              { return false }

// External returns a controlled Selection whose value is read from get on
// every access. The Picker only proposes new values through its OnChange
// callback; applying them is up to the caller.
func External(get func() (caldate.Date, bool)) Selection {
	return externalSelection{get: get}
}

// Fixed returns a controlled Selection that always reports d.
func Fixed(d caldate.Date) Selection {
	return External(func() (caldate.Date, bool) { return d, !d.IsZero() })
}

type externalSelection struct {
	get func() (caldate.Date, bool)
}

func (s externalSelection) current() (caldate.Date, bool) {
	if s.get == nil {
		return caldate.Date{}, false
	}
	return s.get()
}

func (externalSelection) accept(caldate.Date) {}
func (externalSelection) controlled() bool    { return true }
