// Package watch triggers regeneration as package sources change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period after the last event in a directory
// before regeneration fires. Editors produce bursts of events per save, so
// events within the window coalesce into a single run.
const defaultDebounce = 500 * time.Millisecond

// Watcher watches package directories and calls a regeneration function for
// each directory that settles after a change. Only directories known at
// construction time are watched; restart to pick up new packages.
type Watcher struct {
	fsw      *fsnotify.Watcher
	dirs     []string
	out      string
	debounce time.Duration
	log      *log.Logger
	regen    func(ctx context.Context, dir string)

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New creates a Watcher over dirs. Changes to out, the generated file name,
// never trigger regen; otherwise every written or created .go file schedules
// regen for its directory after the debounce period. A non-positive debounce
// falls back to the default. A nil logger discards logs.
func New(dirs []string, out string, debounce time.Duration, logger *log.Logger, regen func(ctx context.Context, dir string)) (*Watcher, error) {
	if len(dirs) == 0 {
		return nil, errors.New("need dirs")
	}
	if regen == nil {
		return nil, errors.New("need regen")
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return &Watcher{
		fsw:      fsw,
		dirs:     dirs,
		out:      out,
		debounce: debounce,
		log:      logger,
		regen:    regen,
		pending:  make(map[string]*time.Timer),
	}, nil
}

// Run processes events until ctx is cancelled. It closes the underlying
// watcher on return, so a Watcher runs at most once.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		w.mu.Lock()
		for _, t := range w.pending {
			t.Stop()
		}
		w.mu.Unlock()

		w.fsw.Close()
	}()

	w.log.Info("watching for changes", "dirs", len(w.dirs))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			base := filepath.Base(ev.Name)
			if !strings.HasSuffix(base, ".go") || strings.HasPrefix(base, ".") || base == w.out {
				continue
			}

			w.log.Debug("changed", "file", ev.Name)
			w.schedule(ctx, filepath.Dir(ev.Name))

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch error", "err", err)
		}
	}
}

// schedule arms the debounce timer for dir, replacing a pending one. The
// timer goroutine re-checks ctx because cancellation does not stop timers
// already armed.
func (w *Watcher) schedule(ctx context.Context, dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[dir]; ok {
		t.Stop()
	}

	w.pending[dir] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, dir)
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}

		w.log.Info("regenerating", "dir", dir)
		w.regen(ctx, dir)
	})
}
