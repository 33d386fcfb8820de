package library

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/lexmex/lexmex-mcp/internal/logger"
)

var log = logger.ForComponent("library")

// WatchOverlay observes the overlay directory and logs when skeleton
// files change. The loaded library is never mutated after startup, so a
// change only means a restart is required to pick it up. Blocks until
// ctx is cancelled.
func WatchOverlay(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	log.Info("watching overlay directory", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSkeletonFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				log.Warn("overlay skeleton changed; restart required to reload",
					"file", event.Name,
					"op", event.Op.String())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("overlay watch error", "error", err)
		}
	}
}

func isSkeletonFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
