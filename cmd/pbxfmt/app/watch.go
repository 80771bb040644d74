package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bricker/pbxproj-formatter/pkg/constants"
	"github.com/bricker/pbxproj-formatter/pkg/errors"
	"github.com/bricker/pbxproj-formatter/pkg/pbxproj"
)

// watch re-formats each target whenever it changes, until ctx is cancelled.
// Directories are watched rather than the files themselves: the atomic
// rename that both editors and FormatFile perform would otherwise drop the
// watch after the first replacement.
func (a *App) watch(ctx context.Context, paths []string, opts pbxproj.Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapIO("watch", "", err)
	}
	defer func() { _ = watcher.Close() }()

	targets := make(map[string]string, len(paths)) // absolute path -> as given
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.WrapIO("watch", path, err)
		}
		targets[abs] = path
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return errors.WrapIO("watch", filepath.Dir(abs), err)
		}
	}

	// Run once up front so a file that is already stale gets normalized
	// before the first change event.
	for _, path := range paths {
		a.formatWatched(path, opts)
	}

	// Editors write in bursts; debounce per path so one run covers a burst.
	timers := make(map[string]*time.Timer, len(paths))
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	a.logger.Info().Int("files", len(paths)).Msg("watching for changes")

	for {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			path, watched := targets[abs]
			if !watched {
				continue
			}
			if timer, ok := timers[abs]; ok {
				timer.Reset(constants.WatchDebounce)
				continue
			}
			timers[abs] = time.AfterFunc(constants.WatchDebounce, func() {
				a.formatWatched(path, opts)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error().Err(err).Msg("watch error")
		}
	}
}

// formatWatched runs one format pass, logging failures instead of ending
// the watch: a half-written merge state is expected to be malformed for a
// moment and will produce another event once it settles.
func (a *App) formatWatched(path string, opts pbxproj.Options) {
	report, err := pbxproj.FormatFile(path, opts)
	if err != nil {
		a.logger.Error().Err(err).Str("path", path).Msg("format failed")
		return
	}
	if report.Changed {
		a.logger.Info().Str("path", path).
			Int("sections", report.SectionsSorted).
			Int("duplicates", report.DuplicatesRemoved).
			Msg("normalized")
	}
}
