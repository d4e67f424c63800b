package picker

import (
	"github.com/ngrash/go-cal/caldate"
	"github.com/ngrash/go-cal/format"
	"github.com/ngrash/go-cal/grid"
)

// State is the single display state of a cell.
type State int

const (
	StateDefault State = iota
	StateSelected
	StateToday
	StateDisabled
	StateOutsideMonth
)

func (s State) String() string {
	switch s {
	case StateSelected:
		return "selected"
	case StateToday:
		return "today"
	case StateDisabled:
		return "disabled"
	case StateOutsideMonth:
		return "outsideMonth"
	}
	return "default"
}

// Cell is one annotated date of the displayed grid.
type Cell struct {
	Date         caldate.Date
	Selected     bool
	Today        bool
	CurrentMonth bool
	Disabled     bool
	// Hidden is set for days of adjacent months when outside days are not
	// shown. Hosts render an empty placeholder for them.
	Hidden bool
	State  State
}

// Key identifies the host element of the cell, e.g. "2024-02-29".
func (c Cell) Key() string { return c.Date.String() }

// Label is the accessible label of the cell.
func (c Cell) Label() string { return format.DayLabel(c.Date) }

// ResolveState picks the display state of c by priority: selected, today,
// disabled, outside month, default.
func ResolveState(c Cell) State {
	switch {
	case c.Selected:
		return StateSelected
	case c.Today:
		return StateToday
	case c.Disabled:
		return StateDisabled
	case !c.CurrentMonth:
		return StateOutsideMonth
	}
	return StateDefault
}

// Cells returns the annotated grid of the displayed month.
func (p *Picker) Cells() []Cell {
	days := grid.Generate(p.month, p.weekStartsOn)
	selected, hasSelection := p.Selected()
	today := p.Today()

	cells := make([]Cell, len(days))
	for i, d := range days {
		c := Cell{
			Date:         d,
			Selected:     hasSelection && caldate.SameDay(d, selected),
			Today:        caldate.SameDay(d, today),
			CurrentMonth: p.month.Contains(d),
			Disabled:     p.IsDisabled(d),
		}
		c.Hidden = !p.showOutside && !c.CurrentMonth
		c.State = ResolveState(c)
		cells[i] = c
	}
	return cells
}

// Weeks returns Cells split into rows of seven.
func (p *Picker) Weeks() [][]Cell {
	return grid.Weeks(p.Cells())
}

// WeekdayLabels returns the column headers, starting at WeekStartsOn.
func (p *Picker) WeekdayLabels() []string {
	return grid.WeekdayLabels(p.weekStartsOn, p.formatter, p.compact)
}

// WeekNumbers returns the ISO week number of every row of the displayed grid.
func (p *Picker) WeekNumbers() []int {
	return grid.WeekNumbers(grid.Generate(p.month, p.weekStartsOn))
}
