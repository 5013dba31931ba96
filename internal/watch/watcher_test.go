package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/componentry/barrelgen/pkg/barrel"
)

func newTestWatcher(t *testing.T) *Watcher {
	t.Helper()

	dir := t.TempDir()

	w, err := New(dir, barrel.Options{Stdout: io.Discard, Stderr: io.Discard})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = w.Close()
	})

	return w
}

func TestRelevantFiltersByExtension(t *testing.T) {
	w := newTestWatcher(t)

	tests := []struct {
		name string
		op   fsnotify.Op
		want bool
	}{
		{"button.tsx", fsnotify.Write, true},
		{"utils.ts", fsnotify.Create, true},
		{"button.tsx", fsnotify.Remove, true},
		{"button.tsx", fsnotify.Rename, true},
		{"button.tsx", fsnotify.Chmod, false},
		{"readme.md", fsnotify.Write, false},
		{"index.ts", fsnotify.Write, false}, // the generated output itself
	}

	for _, tt := range tests {
		event := fsnotify.Event{Name: filepath.Join(w.dir, tt.name), Op: tt.op}
		assert.Equal(t, tt.want, w.relevant(event), "%s %v", tt.name, tt.op)
	}
}

func TestNewRejectsMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), barrel.Options{})
	require.Error(t, err)
}

func TestRunCoalescesBurstIntoOneRegeneration(t *testing.T) {
	w := newTestWatcher(t)

	regenerated := make(chan struct{}, 16)
	w.generate = func(context.Context, barrel.Options) (*barrel.Result, error) {
		regenerated <- struct{}{}

		return &barrel.Result{}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx)
	}()

	for i := range 5 {
		name := fmt.Sprintf("component%d.tsx", i)
		require.NoError(t, os.WriteFile(filepath.Join(w.dir, name), []byte("export const C = 1;\n"), 0o644))
	}

	select {
	case <-regenerated:
	case <-time.After(5 * time.Second):
		t.Fatal("event burst produced no regeneration")
	}

	select {
	case <-regenerated:
		t.Fatal("event burst produced more than one regeneration")
	case <-time.After(3 * debounceInterval):
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
