// Command calserve serves the calendar JSON API.
//
// The configuration file is watched and reloaded on change.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"

	"github.com/ngrash/go-cal/config"
	"github.com/ngrash/go-cal/internal/httpapi"
	"github.com/ngrash/go-cal/picker"
)

var (
	configFlag = flag.String("config", "", "YAML configuration file, reloaded on change")
	addrFlag   = flag.String("addr", ":8080", "listen address")
	debugFlag  = flag.Bool("debug", false, "log debug records")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return err
		}
	}

	h := httpapi.NewHandler(cfg, picker.SystemClock, log)
	app := httpapi.NewApp(h, recover.New(), logger.New(), compress.New())

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(sigCtx)

	if *configFlag != "" {
		g.Go(func() error {
			return config.Watch(ctx, *configFlag, log, h.SetConfig)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info("listening", "addr", *addrFlag, "config", *configFlag)
		if err := app.Listen(*addrFlag); err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		// Listen returns nil after shutdown; stop the watcher too.
		stop()
		return nil
	})

	return g.Wait()
}
