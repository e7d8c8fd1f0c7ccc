package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the settings file whenever it changes and sends each
// successfully loaded Config on the returned channel. The channel is
// closed when the context is cancelled or the watcher fails.
//
// Files that fail to load after a change (mid-write saves, validation
// errors) are logged and skipped; the previous settings stay in effect
// for the consumer.
func Watch(ctx context.Context, path string) (<-chan Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file: editors often replace
	// the file on save, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	ch := make(chan Config, 1)

	go func() {
		defer close(ch)
		defer watcher.Close()

		base := filepath.Base(path)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				cfg, err := Load(path)
				if err != nil {
					slog.Warn("settings file changed but failed to load",
						slog.String("path", path),
						slog.Any("error", err))
					continue
				}
				slog.Debug("settings file reloaded", slog.String("path", path))

				select {
				case ch <- cfg:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Usually recoverable; log and keep watching.
				slog.Debug("settings watcher error", slog.Any("error", err))
			}
		}
	}()

	return ch, nil
}
