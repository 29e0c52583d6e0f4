package emit

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is how often the polling fallback checks the manifest.
const pollInterval = 200 * time.Millisecond

// Watch regenerates the manifest's output whenever the manifest file
// changes, starting with one generation up front. fn is invoked after every
// attempt with the resolved output path and the generation error, if any; a
// failed generation keeps the watch alive so the caller can fix the manifest
// and save again.
//
// Watch blocks until ctx is cancelled and then returns ctx.Err(). It watches
// the manifest's directory rather than the file itself, so editors that
// replace the file on save do not break the watch.
func Watch(ctx context.Context, manifestPath string, fn func(outPath string, err error)) error {
	out, _, err := Generate(manifestPath)
	fn(out, err)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return watchPolling(ctx, manifestPath, fn)
	}
	defer watcher.Close()

	dir := filepath.Dir(manifestPath)
	if err := watcher.Add(dir); err != nil {
		return watchPolling(ctx, manifestPath, fn)
	}

	base := filepath.Base(manifestPath)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			out, _, err := Generate(manifestPath)
			fn(out, err)

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Watch errors are usually transient; keep going.
		}
	}
}

// watchPolling is the fallback when fsnotify is unavailable: regenerate
// whenever the manifest's modification time moves forward.
func watchPolling(ctx context.Context, manifestPath string, fn func(outPath string, err error)) error {
	var lastMod time.Time
	if info, err := os.Stat(manifestPath); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			info, err := os.Stat(manifestPath)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			out, _, err := Generate(manifestPath)
			fn(out, err)
		}
	}
}
