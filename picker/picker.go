// Package picker implements the interaction state of a month calendar:
// which month is displayed, which date is selected, how every grid cell is
// annotated and how keyboard input moves focus.
//
// A Picker is owned by a single UI event loop and is not safe for
// concurrent use. Every operation completes synchronously.
//
// Focus transfer is split in two steps. HandleKey updates the displayed
// month and records a pending focus target; the host then rebuilds its
// cells with Cells and only afterwards calls TakeFocus to move focus to the
// element of the returned date.
package picker

import (
	"io"
	"log/slog"
	"time"

	"github.com/ngrash/go-cal/caldate"
	"github.com/ngrash/go-cal/constraint"
	"github.com/ngrash/go-cal/format"
	"github.com/ngrash/go-cal/grid"
)

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Options configure a Picker. The zero value is a usable, uncontrolled
// calendar starting on Sunday.
type Options struct {
	// Selection owns the selected date. Nil means Owned(nil).
	Selection Selection
	// OnChange is called with every successfully selected date, in both
	// controlled and uncontrolled mode.
	OnChange func(d caldate.Date)

	Constraints  constraint.Set
	WeekStartsOn time.Weekday
	// ShowOutsideDays controls whether days of adjacent months are
	// rendered. Nil means true.
	ShowOutsideDays *bool
	ShowWeekNumbers bool
	// Compact shortens weekday headers to two characters.
	Compact   bool
	Formatter format.Formatter

	// Month is the initially displayed month. If zero, the month of the
	// selected date is used, and failing that the current month.
	Month caldate.YearMonth

	// Clock is the source of "today". Nil means SystemClock.
	Clock Clock
	// Location is the time zone "today" is computed in. Nil means time.Local.
	Location *time.Location
	// Logger receives debug records about absorbed input. Nil discards them.
	Logger *slog.Logger
}

// Picker is the interaction state of a calendar.
type Picker struct {
	month        caldate.YearMonth
	selection    Selection
	onChange     func(caldate.Date)
	constraints  constraint.Set
	weekStartsOn time.Weekday
	showOutside  bool
	showWeekNums bool
	compact      bool
	formatter    format.Formatter
	clock        Clock
	location     *time.Location
	logger       *slog.Logger

	pendingFocus *caldate.Date
}

// New returns a Picker configured by opts.
func New(opts Options) *Picker {
	p := &Picker{
		selection:    opts.Selection,
		onChange:     opts.OnChange,
		constraints:  opts.Constraints,
		weekStartsOn: time.Weekday((int(opts.WeekStartsOn)%7 + 7) % 7),
		showOutside:  opts.ShowOutsideDays == nil || *opts.ShowOutsideDays,
		showWeekNums: opts.ShowWeekNumbers,
		compact:      opts.Compact,
		formatter:    opts.Formatter,
		clock:        opts.Clock,
		location:     opts.Location,
		logger:       opts.Logger,
	}
	if p.selection == nil {
		p.selection = Owned(nil)
	}
	if p.clock == nil {
		p.clock = SystemClock
	}
	if p.location == nil {
		p.location = time.Local
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	switch selected, ok := p.selection.current(); {
	case !opts.Month.IsZero():
		p.month = opts.Month
	case ok:
		p.month = selected.YearMonth()
	default:
		p.month = p.Today().YearMonth()
	}
	return p
}

// Month returns the displayed month.
func (p *Picker) Month() caldate.YearMonth { return p.month }

// Title returns the formatted title of the displayed month.
func (p *Picker) Title() string {
	return p.formatter.FormatMonth(p.month.First())
}

// Today returns the current date in the Picker's location.
func (p *Picker) Today() caldate.Date {
	return caldate.Today(p.clock.Now(), p.location)
}

// Selected returns the selected date, if any. In controlled mode this is
// whatever the caller's Selection reports.
func (p *Picker) Selected() (caldate.Date, bool) {
	return p.selection.current()
}

// IsControlled reports whether the selection is owned by the caller.
func (p *Picker) IsControlled() bool { return p.selection.controlled() }

// Constraints returns the disable rules of p.
func (p *Picker) Constraints() constraint.Set { return p.constraints }

// WeekStartsOn returns the first weekday of every grid row.
func (p *Picker) WeekStartsOn() time.Weekday { return p.weekStartsOn }

// ShowWeekNumbers reports whether hosts should render the week number column.
func (p *Picker) ShowWeekNumbers() bool { return p.showWeekNums }

// IsDisabled reports whether d can not be selected.
func (p *Picker) IsDisabled(d caldate.Date) bool {
	return p.constraints.IsDisabled(d)
}

// SelectDate selects d unless it is disabled. It reports whether the
// selection was accepted. The displayed month does not change.
func (p *Picker) SelectDate(d caldate.Date) bool {
	if p.IsDisabled(d) {
		p.logger.Debug("selection ignored", "date", d.String(), "reason", "disabled")
		return false
	}
	p.selection.accept(d)
	if p.onChange != nil {
		p.onChange(d)
	}
	return true
}

// PreviousMonth displays the month before the current one.
func (p *Picker) PreviousMonth() { p.month = p.month.AddMonths(-1) }

// NextMonth displays the month after the current one.
func (p *Picker) NextMonth() { p.month = p.month.AddMonths(1) }

// GoToToday displays the current month.
func (p *Picker) GoToToday() { p.month = p.Today().YearMonth() }

// SetMonth displays ym.
func (p *Picker) SetMonth(ym caldate.YearMonth) {
	if !ym.IsZero() {
		p.month = ym
	}
}

// HandleKey applies a key press on the cell of focused.
//
// Arrow keys, Home and End compute a candidate date. A disabled candidate
// absorbs the key: nothing changes and no focus is pending. Otherwise the
// displayed month follows the candidate and the candidate becomes the
// pending focus target. Enter and Space select focused.
func (p *Picker) HandleKey(key Key, focused caldate.Date) KeyResult {
	if p.constraints.Disabled {
		return KeyResult{}
	}

	var candidate caldate.Date
	switch key {
	case KeyLeft:
		candidate = focused.AddDays(-1)
	case KeyRight:
		candidate = focused.AddDays(1)
	case KeyUp:
		candidate = focused.AddDays(-grid.DaysInWeek)
	case KeyDown:
		candidate = focused.AddDays(grid.DaysInWeek)
	case KeyHome:
		candidate = focused.FirstOfMonth()
	case KeyEnd:
		candidate = focused.LastOfMonth()
	case KeyEnter, KeySpace:
		return KeyResult{PreventDefault: true, Selected: p.SelectDate(focused)}
	default:
		return KeyResult{}
	}

	if p.IsDisabled(candidate) {
		// TODO: hosts get no feedback when a key is absorbed; surface this
		// once product decides on an affordance.
		p.logger.Debug("key absorbed", "key", key.String(), "from", focused.String(), "candidate", candidate.String())
		return KeyResult{PreventDefault: true}
	}
	if !p.month.Contains(candidate) {
		p.month = candidate.YearMonth()
	}
	p.pendingFocus = &candidate
	return KeyResult{PreventDefault: true, Moved: true}
}

// PendingFocus returns the pending focus target without consuming it.
func (p *Picker) PendingFocus() (caldate.Date, bool) {
	if p.pendingFocus == nil {
		return caldate.Date{}, false
	}
	return *p.pendingFocus, true
}

// TakeFocus returns and clears the pending focus target. Hosts call it
// after they rebuilt their cells for the displayed month, so the element
// for the date exists.
func (p *Picker) TakeFocus() (caldate.Date, bool) {
	d, ok := p.PendingFocus()
	p.pendingFocus = nil
	return d, ok
}
