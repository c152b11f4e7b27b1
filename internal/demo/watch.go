package demo

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/cpuraster"
)

// reloadDelay coalesces the burst of events an editor save produces.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the scene and texture whenever one of their files changes,
// until ctx is done. Reload failures are logged and the previous inputs
// kept. onReload, if non-nil, is called after each successful reload.
//
// Watch returns nil immediately when neither input comes from a file.
func (r *Renderer) Watch(ctx context.Context, onReload func()) error {
	files := make(map[string]bool)
	for _, p := range []string{r.cfg.ScenePath, r.cfg.TexturePath} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("demo: watch: %w", err)
		}
		files[abs] = true
	}
	if len(files) == 0 {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("demo: watch: %w", err)
	}
	defer func() { _ = w.Close() }()

	// Directories are watched so that files replaced by rename stay tracked.
	dirs := make(map[string]bool)
	for f := range files {
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("demo: watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if abs, err := filepath.Abs(event.Name); err != nil || !files[abs] {
				continue
			}
			timer.Reset(reloadDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			cpuraster.Logger().Warn("demo: watcher error", "error", err)
		case <-timer.C:
			if err := r.Reload(); err != nil {
				cpuraster.Logger().Warn("demo: reload failed", "error", err)
				continue
			}
			cpuraster.Logger().Info("demo: inputs reloaded")
			if onReload != nil {
				onReload()
			}
		}
	}
}
