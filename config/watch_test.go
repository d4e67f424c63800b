package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.yml")
	if err := os.WriteFile(path, []byte("week-starts-on: sunday\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, nil, func(c *Config) {
			select {
			case reloaded <- c:
			default:
			}
		})
	}()

	// The watcher has no ready signal; keep writing until a reload arrives.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case c := <-reloaded:
			if time.Weekday(c.WeekStartsOn) != time.Monday {
				t.Fatalf("reloaded WeekStartsOn = %v, want Monday", time.Weekday(c.WeekStartsOn))
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("Watch() error: %v", err)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("week-starts-on: monday\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatalf("no reload within deadline")
		}
	}
}
