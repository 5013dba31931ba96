// Package watch re-runs barrel generation whenever component sources in the
// target directory change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"

	"github.com/componentry/barrelgen/pkg/barrel"
)

// debounceInterval coalesces event bursts (editors often emit several events
// per save) into a single regeneration.
const debounceInterval = 200 * time.Millisecond

// Watcher regenerates the barrel on filesystem changes.
type Watcher struct {
	dir      string
	output   string
	opts     barrel.Options
	fsWatch  *fsnotify.Watcher
	generate func(context.Context, barrel.Options) (*barrel.Result, error)
}

// New creates a watcher over dir. opts is reused verbatim for every
// regeneration, with Dir pinned so probe redirects cannot move the scan
// between runs.
func New(dir string, opts barrel.Options) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	addErr := fsWatch.Add(dir)
	if addErr != nil {
		_ = fsWatch.Close()

		return nil, fmt.Errorf("watch %s: %w", dir, addErr)
	}

	opts.Dir = dir

	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	output := opts.Output
	if output == "" {
		output = barrel.DefaultOutput
	}

	return &Watcher{
		dir:      dir,
		output:   output,
		opts:     opts,
		fsWatch:  fsWatch,
		generate: barrel.Generate,
	}, nil
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsWatch.Close()
}

// Run blocks, regenerating the barrel after each debounced batch of relevant
// events, until the context is canceled. Generation failures are reported
// and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	color.New(color.FgCyan).Fprintf(w.opts.Stderr, "watching %s for changes\n", w.dir)

	var timer *time.Timer

	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatch.Events:
			if !ok {
				return nil
			}

			if !w.relevant(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(debounceInterval)
				fire = timer.C
			} else {
				// A tick may already sit in the channel when the timer
				// expired between selects; drain it or the next receive
				// fires before the interval elapses.
				if !timer.Stop() {
					select {
					case <-fire:
					default:
					}
				}

				timer.Reset(debounceInterval)
			}

		case err, ok := <-w.fsWatch.Errors:
			if !ok {
				return nil
			}

			color.New(color.FgYellow).Fprintf(w.opts.Stderr, "warning: watch error: %v\n", err)

		case <-fire:
			timer = nil
			fire = nil

			_, err := w.generate(ctx, w.opts)
			if err != nil {
				color.New(color.FgRed).Fprintf(w.opts.Stderr, "regeneration failed: %v\n", err)
			}
		}
	}
}

// relevant reports whether an event should trigger regeneration: a change to
// a .ts/.tsx file that is not the generated output itself.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	name := filepath.Base(event.Name)
	if name == w.output {
		return false
	}

	ext := strings.ToLower(filepath.Ext(name))

	return ext == ".ts" || ext == ".tsx"
}
