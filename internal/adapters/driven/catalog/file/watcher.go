package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ilmify/ilmify-cli/internal/logger"
)

// Watch invokes onChange whenever the metadata file is rewritten, until
// ctx is cancelled. The content indexer replaces the file atomically,
// so both write and create events count as changes.
//
// The parent directory is watched rather than the file itself: editors
// and the indexer replace the file, which would break a direct watch.
func (c *Catalog) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(filepath.Dir(c.path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		target := filepath.Clean(c.path)
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
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				logger.Info("Catalog changed: %s", event.Name)
				onChange()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Catalog watcher error: %v", err)
			}
		}
	}()

	return nil
}
