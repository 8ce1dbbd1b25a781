package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 250 * time.Millisecond

// Watcher calls onChange after the config file has been written and stayed
// quiet for a short while.
type Watcher struct {
	filePath string
	onChange func(ctx context.Context) error
}

func NewWatcher(filePath string, onChange func(ctx context.Context) error) Watcher {
	return Watcher{
		filePath: filepath.Clean(filePath),
		onChange: onChange,
	}
}

func (Watcher) String() string {
	return "config.Watcher"
}

func (w Watcher) Serve(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer watcher.Close()

	// Editors replace the file, so the directory is watched as well.
	if err := watcher.Add(filepath.Dir(w.filePath)); err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					<-timerCh
				}
				timer.Reset(debounceWindow)
			}
		case <-timerCh:
			timer = nil
			timerCh = nil
			slog.Info("Config file changed, reloading", "package", "config", "file", w.filePath)
			if err := w.onChange(ctx); err != nil {
				slog.Error("Failed to reload config", "package", "config", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Config watcher error", "package", "config", "error", err)
		}
	}
}
