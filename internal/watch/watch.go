// Package watch re-runs a callback whenever a source file is saved.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/you-not-fish/nova/internal/logger"
)

// Handler receives the file contents after each save, or the read error.
type Handler func(src string, err error)

// Watcher watches one file.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
}

// New returns a Watcher for path. Events closer together than debounce
// are coalesced into one run.
func New(path string, debounce time.Duration, log *slog.Logger) *Watcher {
	if log == nil {
		log = logger.New("watch")
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		logger:   log,
	}
}

// Run calls h once for the current contents and again after every save
// until ctx is done. The parent directory is watched so that editors that
// save by renaming a temporary file are seen too.
func (w *Watcher) Run(ctx context.Context, h Handler) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching", "file", w.path)

	w.fire(h)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("file event", "op", ev.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-timer.C:
			w.fire(h)
		}
	}
}

func (w *Watcher) fire(h Handler) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		h("", fmt.Errorf("read %s: %w", w.path, err))
		return
	}
	w.logger.Debug("recheck", "file", w.path, "bytes", len(data))
	h(string(data), nil)
}
