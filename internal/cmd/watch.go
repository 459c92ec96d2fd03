package cmd

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 200 * time.Millisecond

// watcher re-converts markdown files as they change. Rapid event bursts for
// the same file collapse into a single conversion via per-file timers; the
// write performed by a conversion echoes back as one more event, which the
// idempotent converter then reports as unchanged.
type watcher struct {
	fsys     fileSystem
	opts     *options
	fw       *fsnotify.Watcher
	debounce map[string]*time.Timer
	mu       sync.Mutex
}

// watchRun watches dir and converts markdown files on create and write.
// It blocks until the process is interrupted.
func watchRun(fsys fileSystem, dir string, opts *options) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(dir); err != nil {
		return err
	}

	w := &watcher{
		fsys:     fsys,
		opts:     opts,
		fw:       fw,
		debounce: make(map[string]*time.Timer),
	}

	opts.status("watching %s\n", dir)

	w.loop()

	return nil
}

func (w *watcher) loop() {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}

			w.handleEvent(event)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}

			w.opts.status("watch error: %v\n", err)
		}
	}
}

func (w *watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	name := filepath.Base(event.Name)

	if !markdownExtensions[strings.ToLower(filepath.Ext(name))] {
		return
	}

	if w.opts.filter != nil && !w.opts.filter.Match(name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.debounce[name]; ok {
		timer.Stop()
	}

	w.debounce[name] = time.AfterFunc(debounceDelay, func() {
		w.mu.Lock()
		delete(w.debounce, name)
		w.mu.Unlock()

		processFile(w.fsys, name, w.opts, &stats{})
	})
}
