package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for events to settle.
const DefaultDebounce = 300 * time.Millisecond

// Event is a wrapper around fsnotify.Event
type Event struct {
	Name string
	Op   fsnotify.Op
}

// Watcher reports settled filesystem changes below a set of paths.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	paths    []string
	debounce time.Duration

	// Filter drops events it returns false for. Nil accepts everything.
	Filter  func(name string) bool
	OnEvent func(Event)
}

// New creates a watcher for paths. Directories are watched recursively;
// files are watched through their parent directory.
func New(paths []string, logger *slog.Logger, onEvent func(Event)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:  w,
		logger:   logger,
		paths:    paths,
		debounce: DefaultDebounce,
		OnEvent:  onEvent,
	}, nil
}

// SetDebounce overrides DefaultDebounce.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

func (w *Watcher) addPaths() {
	for _, p := range w.paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			if err := w.watcher.Add(filepath.Dir(p)); err != nil {
				w.logger.Warn("Failed to watch", "path", p, "error", err)
			}
			continue
		}
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			// Skip hidden directories like .git
			if path != p && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return w.watcher.Add(path)
		})
		if err != nil {
			w.logger.Warn("Failed to watch directory", "path", p, "error", err)
		}
	}
}

// Start watches until ctx is done. OnEvent receives the last event of each
// burst and never runs concurrently with itself.
func (w *Watcher) Start(ctx context.Context) {
	defer func() { _ = w.watcher.Close() }()
	w.addPaths()
	w.logger.Info("Watch mode active", "paths", w.paths)

	var (
		mu    sync.Mutex
		timer *time.Timer
		fire  sync.Mutex
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}

			// Handle new directories
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.watcher.Add(event.Name)
				}
			}
			if w.Filter != nil && !w.Filter(event.Name) {
				continue
			}

			ev := Event{Name: event.Name, Op: event.Op}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if ctx.Err() != nil {
					return
				}
				fire.Lock()
				defer fire.Unlock()
				w.OnEvent(ev)
			})
			mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", "error", err)
		}
	}
}
