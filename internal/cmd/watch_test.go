package cmd

import (
	"io/fs"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWatcher(t *testing.T, files map[string]string) *watcher {
	t.Helper()

	opts := &options{quiet: true, filter: glob.MustCompile("*")}
	opts.createStatus(nil)

	return &watcher{
		fsys:     testFS(t, files),
		opts:     opts,
		debounce: make(map[string]*time.Timer),
	}
}

func TestHandleEventConvertsFile(t *testing.T) {
	w := testWatcher(t, map[string]string{"doc.md": "    a\n"})

	w.handleEvent(fsnotify.Event{Name: "vault/doc.md", Op: fsnotify.Write})

	require.Eventually(t, func() bool {
		data, err := fs.ReadFile(w.fsys, "doc.md")

		return err == nil && string(data) == "```\na\n```\n"
	}, time.Second, 10*time.Millisecond)
}

func TestHandleEventIgnoresNonMarkdown(t *testing.T) {
	w := testWatcher(t, map[string]string{"notes.txt": "    a\n"})

	w.handleEvent(fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: "doc.md", Op: fsnotify.Remove})

	assert.Empty(t, w.debounce)
}

func TestHandleEventDebouncesBursts(t *testing.T) {
	w := testWatcher(t, map[string]string{"doc.md": "    a\n"})

	w.handleEvent(fsnotify.Event{Name: "doc.md", Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: "doc.md", Op: fsnotify.Write})

	assert.Len(t, w.debounce, 1)
}
