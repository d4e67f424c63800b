// Command calgrid prints the calendar grid of a month.
//
// Usage:
//
//	calgrid [-config calendar.yml] [-month 2024-02] [-week-start monday] [-weeks] [-compact] [-locale de]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ngrash/go-cal/caldate"
	"github.com/ngrash/go-cal/config"
	"github.com/ngrash/go-cal/picker"
)

var (
	configFlag    = flag.String("config", "", "YAML configuration file")
	monthFlag     = flag.String("month", "", "month to print as YYYY-MM (default: current month)")
	weekStartFlag = flag.String("week-start", "", "first day of the week, overrides the configuration")
	weeksFlag     = flag.Bool("weeks", false, "print ISO week numbers")
	compactFlag   = flag.Bool("compact", false, "use two letter weekday names")
	localeFlag    = flag.String("locale", "", "locale for month and weekday names, overrides the configuration")
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("Usage: calgrid [flags]")
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return err
		}
	}
	if *weekStartFlag != "" {
		wd, err := config.ParseWeekday(*weekStartFlag)
		if err != nil {
			return fmt.Errorf("week-start: %w", err)
		}
		cfg.WeekStartsOn = config.Weekday(wd)
	}
	if *localeFlag != "" {
		cfg.Locale = *localeFlag
	}
	cfg.ShowWeekNumbers = cfg.ShowWeekNumbers || *weeksFlag
	cfg.Compact = cfg.Compact || *compactFlag
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if *monthFlag != "" {
		if opts.Month, err = caldate.ParseYearMonth(*monthFlag); err != nil {
			return err
		}
	}

	printMonth(w, picker.New(opts))
	return nil
}

func printMonth(w io.Writer, p *picker.Picker) {
	width := 4
	labels := p.WeekdayLabels()
	for _, l := range labels {
		width = max(width, len([]rune(l))+1)
	}
	row := len(labels) * width
	if p.ShowWeekNumbers() {
		row += 4
	}

	title := p.Title()
	pad := max(0, (row-len([]rune(title)))/2)
	fmt.Fprintln(w, strings.Repeat(" ", pad)+title)

	var b strings.Builder
	if p.ShowWeekNumbers() {
		b.WriteString(" Wk ")
	}
	for _, l := range labels {
		b.WriteString(padLeft(l, width))
	}
	fmt.Fprintln(w, b.String())

	numbers := p.WeekNumbers()
	for i, week := range p.Weeks() {
		b.Reset()
		if p.ShowWeekNumbers() {
			fmt.Fprintf(&b, "%3d ", numbers[i])
		}
		for _, c := range week {
			b.WriteString(padLeft(cellText(c), width))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

// cellText marks the state of a cell with a suffix, since plain text has no
// colors: * selected, ! today, - disabled, and outside days in parentheses.
func cellText(c picker.Cell) string {
	if c.Hidden {
		return ""
	}
	day := fmt.Sprint(c.Date.Day)
	switch c.State {
	case picker.StateSelected:
		return day + "*"
	case picker.StateToday:
		return day + "!"
	case picker.StateDisabled:
		return day + "-"
	case picker.StateOutsideMonth:
		return "(" + day + ")"
	}
	return day
}

func padLeft(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}
