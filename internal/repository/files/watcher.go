package files

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// debounce гасит всплески событий при массовой записи файлов.
const debounce = 250 * time.Millisecond

// Watch следит за деревом контента и перечитывает снимок после изменений.
// Блокируется до отмены контекста.
func (r *Repo) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer watcher.Close()

	dirs := []string{
		r.dir,
		filepath.Join(r.dir, auctionsDir),
		filepath.Join(r.dir, productsDir),
		filepath.Join(r.dir, categoriesDir),
		filepath.Join(r.dir, "settings"),
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			r.logger.Warnf("content watch skipped for %s: %v", dir, err)
		}
	}

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			report := r.Reload()
			r.logger.Infof(
				"content reloaded: %d auctions, %d products, %d categories, %d skipped",
				report.Auctions, report.Products, report.Categories, len(report.Skipped),
			)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warnf("content watch error: %v", e.Wrap(whereami.WhereAmI(), err))
		}
	}
}
