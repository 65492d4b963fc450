package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"tourdeck/internal/logging"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Update is delivered by Watcher after the data file settles.
// Exactly one of Catalog and Err is set.
type Update struct {
	Catalog *Catalog
	Err     error
}

// Watcher reloads a catalog file whenever it changes on disk.
// The parent directory is watched so editors that save via rename are seen.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	path        string
	debounceDur time.Duration
	pending     time.Time
	updates     chan Update
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewWatcher creates a watcher for path. Call Start to begin watching.
func NewWatcher(path string) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog watcher: path required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("catalog watcher: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog watcher: %w", err)
	}
	return &Watcher{
		watcher:     fw,
		path:        abs,
		debounceDur: 200 * time.Millisecond,
		updates:     make(chan Update, 1),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Updates returns the channel reloaded catalogs are sent on. Only the most
// recent update is kept if the receiver falls behind.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Start begins watching. Non-blocking; the loop exits on Stop or ctx cancel.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("catalog watcher: watch %s: %w", dir, err)
	}
	logging.Catalog("watching catalog", zap.String("path", w.path))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.Get(logging.CategoryCatalog).Error("closing watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryCatalog).Error("watcher error", zap.Error(err))
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	logging.CatalogDebug("catalog changed", zap.String("op", event.Op.String()))
	w.mu.Lock()
	w.pending = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	c, err := Load(w.path)
	if err != nil {
		logging.Get(logging.CategoryCatalog).Warn("reload failed", zap.Error(err))
		w.send(Update{Err: err})
		return
	}
	logging.Catalog("catalog reloaded",
		zap.Int("reviews", len(c.Reviews)),
		zap.Int("tours", len(c.Tours)))
	w.send(Update{Catalog: c})
}

// send replaces any undelivered update with u.
func (w *Watcher) send(u Update) {
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- u:
	default:
	}
}
