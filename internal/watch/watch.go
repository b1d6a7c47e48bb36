package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/agentx-labs/stylescan/internal/manifest"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of filesystem events from a single save.
const DefaultDebounce = 100 * time.Millisecond

// Event is delivered after every load attempt. Exactly one of Manifest and
// Err is set.
type Event struct {
	Manifest *manifest.Manifest
	Warnings []manifest.Warning
	Err      error
}

// Option configures Run.
type Option func(*options)

type options struct {
	debounce time.Duration
}

// WithDebounce sets how long Run waits after the last change before reloading.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// Run loads the manifest at path, then reloads it on every change until ctx
// is done. handle is called from Run's goroutine only, once per load.
// Cancellation is not an error.
func Run(ctx context.Context, path string, handle func(Event), opts ...Option) error {
	cfg := options{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(&cfg)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory so editors that replace the file are seen.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	handle(load(abs))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(cfg.debounce)
			} else {
				timer.Reset(cfg.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			handle(load(abs))

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			handle(Event{Err: fmt.Errorf("watching %s: %w", abs, err)})
		}
	}
}

func load(path string) Event {
	m, warnings, err := manifest.Load(path)
	if err != nil {
		return Event{Err: err}
	}
	return Event{Manifest: m, Warnings: warnings}
}
