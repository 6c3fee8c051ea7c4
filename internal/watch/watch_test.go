package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWatcher_DebouncesAndFilters(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	events := make(chan Event, 10)
	w, err := New([]string{dir}, logger, func(e Event) { events <- e })
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.SetDebounce(50 * time.Millisecond)
	w.Filter = func(name string) bool { return !strings.HasSuffix(name, ".tmp") }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte{byte('a' + i)}, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "ignored.tmp"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case e := <-events:
		if filepath.Base(e.Name) != "index.html" {
			t.Errorf("event for %q, want index.html", e.Name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}

	select {
	case e := <-events:
		t.Errorf("burst produced a second event: %v", e)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_MissingPathIsSkipped(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := New([]string{filepath.Join(t.TempDir(), "nope")}, logger, func(Event) {})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
