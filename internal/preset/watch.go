package preset

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/matview/internal/logger"
	"github.com/Faultbox/matview/internal/material"
)

// Watcher reloads a preset file whenever it is written and delivers the
// parsed params on Updates. Parse failures are logged and skipped.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan material.Params
	done    chan struct{}
	once    sync.Once
	log     *zap.Logger
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file on save are still seen. The watcher stops when ctx
// is cancelled or Close is called.
func Watch(ctx context.Context, path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving preset path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		updates: make(chan material.Params, 1),
		done:    make(chan struct{}),
		log:     logger.Named("preset"),
	}
	go w.run(ctx)
	w.log.Info("watching preset", zap.String("path", abs))
	return w, nil
}

// Updates delivers reloaded params. Only the newest pending update is kept.
func (w *Watcher) Updates() <-chan material.Params { return w.updates }

// Path returns the watched file.
func (w *Watcher) Path() string { return w.path }

func (w *Watcher) run(ctx context.Context) {
	defer close(w.updates)
	for {
		select {
		case <-ctx.Done():
			w.stop()
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("preset watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		// Truncated mid-save; the following write event carries the content.
		return
	}
	p, err := Parse(data)
	if err != nil {
		w.log.Warn("preset reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	// Replace a stale pending update instead of blocking.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- p
	w.log.Debug("preset reloaded", zap.String("path", w.path), zap.Stringer("kind", p.Kind))
}

func (w *Watcher) stop() {
	w.once.Do(func() {
		close(w.done)
		w.watcher.Close()
	})
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.stop()
	return nil
}
