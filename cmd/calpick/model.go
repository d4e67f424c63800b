package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngrash/go-cal/caldate"
	"github.com/ngrash/go-cal/picker"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	headerStyle  = lipgloss.NewStyle().Faint(true)
	weekNumStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
	helpStyle    = lipgloss.NewStyle().Faint(true).MarginTop(1)
	focusStyle   = lipgloss.NewStyle().Reverse(true)
	cellStyles   = map[picker.State]lipgloss.Style{
		picker.StateDefault:      lipgloss.NewStyle(),
		picker.StateSelected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")),
		picker.StateToday:        lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("12")),
		picker.StateDisabled:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8")),
		picker.StateOutsideMonth: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

const cellWidth = 4

type model struct {
	picker  *picker.Picker
	focused caldate.Date
	done    bool
}

func newModel(p *picker.Picker) model {
	m := model{picker: p}
	m.focused = m.initialFocus()
	return m
}

// initialFocus is the selected date, then today, then the first of the
// shown month, whichever is in the shown month first.
func (m model) initialFocus() caldate.Date {
	month := m.picker.Month()
	if d, ok := m.picker.Selected(); ok && month.Contains(d) {
		return d
	}
	if today := m.picker.Today(); month.Contains(today) {
		return today
	}
	return month.First()
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch km.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.done = true
		return m, tea.Quit
	case tea.KeyRunes:
		switch string(km.Runes) {
		case "q":
			m.done = true
			return m, tea.Quit
		case "n":
			m.picker.NextMonth()
			m.focused = m.initialFocus()
		case "p":
			m.picker.PreviousMonth()
			m.focused = m.initialFocus()
		case "t":
			m.picker.GoToToday()
			m.focused = m.picker.Today()
		case " ":
			m.press(picker.KeySpace)
		}
		return m, nil
	}

	if key, ok := keyMap[km.Type]; ok {
		m.press(key)
	}
	return m, nil
}

var keyMap = map[tea.KeyType]picker.Key{
	tea.KeyLeft:  picker.KeyLeft,
	tea.KeyRight: picker.KeyRight,
	tea.KeyUp:    picker.KeyUp,
	tea.KeyDown:  picker.KeyDown,
	tea.KeyHome:  picker.KeyHome,
	tea.KeyEnd:   picker.KeyEnd,
	tea.KeyEnter: picker.KeyEnter,
	tea.KeySpace: picker.KeySpace,
}

// press forwards a key to the picker and moves the cursor to the date the
// picker wants focused once the new grid is rendered.
func (m *model) press(key picker.Key) {
	res := m.picker.HandleKey(key, m.focused)
	if !res.Moved {
		return
	}
	m.picker.Cells()
	if d, ok := m.picker.TakeFocus(); ok {
		m.focused = d
	}
}

func (m model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.picker.Title()))
	b.WriteString("\n")

	weeks := m.picker.ShowWeekNumbers()
	var header []string
	if weeks {
		header = append(header, weekNumStyle.Width(cellWidth).Render("Wk"))
	}
	for _, l := range m.picker.WeekdayLabels() {
		header = append(header, headerStyle.Width(cellWidth).Align(lipgloss.Right).Render(l))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	numbers := m.picker.WeekNumbers()
	for i, week := range m.picker.Weeks() {
		var row []string
		if weeks {
			row = append(row, weekNumStyle.Width(cellWidth).Render(strconv.Itoa(numbers[i])))
		}
		for _, c := range week {
			row = append(row, m.renderCell(c))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("arrows/home/end move • enter select • n/p month • t today • q quit"))
	return b.String()
}

func (m model) renderCell(c picker.Cell) string {
	if c.Hidden {
		return strings.Repeat(" ", cellWidth)
	}
	day := strconv.Itoa(c.Date.Day)
	style := cellStyles[c.State]
	if caldate.SameDay(c.Date, m.focused) {
		day = focusStyle.Inherit(style).Render(day)
	} else {
		day = style.Render(day)
	}
	return lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right).Render(day)
}
