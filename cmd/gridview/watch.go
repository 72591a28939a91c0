package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ayn2op/gridview/internal/sheet"
	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
)

const reloadRetries = 5

// watchSheet calls reload with the freshly loaded sheet every time the file
// at path changes, until ctx is done. The directory is watched so editors
// that replace the file by renaming are handled.
func watchSheet(ctx context.Context, path string, logger logr.Logger, reload func(*sheet.Sheet)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create sheet watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()
		target := filepath.Clean(path)
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error(err, "sheet watcher failed")
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target || !evt.Has(fsnotify.Create|fsnotify.Write) {
					continue
				}
				loaded, err := loadWithRetry(ctx, path)
				if err != nil {
					logger.Error(err, "failed to reload sheet", "path", path)
					continue
				}
				logger.Info("sheet reloaded", "path", path, "rows", loaded.RowCount(), "cols", loaded.ColCount())
				reload(loaded)
			}
		}
	}()
	return nil
}

// loadWithRetry retries a failing load a few times since events arrive while
// the file is still being written.
func loadWithRetry(ctx context.Context, path string) (*sheet.Sheet, error) {
	var err error
	for range reloadRetries {
		var loaded *sheet.Sheet
		if loaded, err = sheet.Load(path); err == nil {
			return loaded, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
	return nil, err
}
