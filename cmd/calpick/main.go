// Command calpick is an interactive terminal date picker. The chosen date
// is printed on exit.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngrash/go-cal/caldate"
	"github.com/ngrash/go-cal/config"
	"github.com/ngrash/go-cal/picker"
)

var (
	configFlag  = flag.String("config", "", "YAML configuration file")
	initialFlag = flag.String("date", "", "initially selected date as YYYY-MM-DD")
	debugFlag   = flag.String("debug-log", "", "write debug records to this file")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return err
		}
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	var initial *caldate.Date
	if *initialFlag != "" {
		d, err := caldate.Parse(*initialFlag)
		if err != nil {
			return err
		}
		initial = &d
	}
	opts.Selection = picker.Owned(initial)

	var logOut io.Writer = io.Discard
	if *debugFlag != "" {
		f, err := os.Create(*debugFlag)
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	opts.Logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

	final, err := tea.NewProgram(newModel(picker.New(opts))).Run()
	if err != nil {
		return err
	}
	if d, ok := final.(model).picker.Selected(); ok {
		fmt.Println(d)
	}
	return nil
}
