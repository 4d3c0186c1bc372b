package site

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch invalidates the renderer's cache whenever the content file changes,
// so edits made outside the admin API (or on another replica of the data
// dir) show up without a restart. Events are debounced because editors and
// atomic-rename writes fire several in a row.
func (r *Renderer) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: the file may not exist yet, and rename-style
	// saves replace the inode.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		var debounce *time.Timer
		target := filepath.Clean(path)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(300*time.Millisecond, func() {
					r.log.Info("content file changed, reloading", zap.String("path", path))
					r.Invalidate()
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.log.Warn("content watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}
