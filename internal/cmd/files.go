package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ezerfernandes/mdfence/internal/mdfence"
	"github.com/gobwas/glob"
)

const fileMode = 0o644

var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
}

// fileSystem is the slice of filesystem behavior the converter needs. The
// production implementation is dirFS; tests use memoryfs.
type fileSystem interface {
	fs.ReadDirFS
	WriteFile(path string, data []byte, perm fs.FileMode) error
}

// dirFS reads and writes files relative to a root directory.
type dirFS string

func (d dirFS) Open(name string) (fs.File, error) {
	return os.Open(filepath.Join(string(d), name))
}

func (d dirFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(filepath.Join(string(d), name))
}

func (d dirFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(filepath.Join(string(d), name), data, perm)
}

type stats struct {
	total     int
	modified  int
	unchanged int
	errors    int
}

func findMarkdownFiles(fsys fs.ReadDirFS, filter glob.Glob) ([]string, error) {
	entries, err := fsys.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var files []string

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		if !markdownExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		if filter != nil && !filter.Match(entry.Name()) {
			continue
		}

		files = append(files, entry.Name())
	}

	sort.Strings(files)

	return files, nil
}

func run(fsys fileSystem, opts *options) *stats {
	st := &stats{}

	files, err := findMarkdownFiles(fsys, opts.filter)
	if err != nil {
		opts.status("error: %v\n", err)
		st.errors++

		return st
	}

	st.total = len(files)

	if len(files) == 0 {
		opts.status("no markdown files found\n")

		return st
	}

	for _, name := range files {
		if opts.dryRun {
			previewFile(fsys, name, opts, st)

			continue
		}

		processFile(fsys, name, opts, st)
	}

	return st
}

func processFile(fsys fileSystem, name string, opts *options, st *stats) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		opts.status("error: %s: %v\n", name, err)
		st.errors++

		return
	}

	modified, result := mdfence.Convert(string(src))
	if !modified {
		st.unchanged++
		opts.status("unchanged: %s\n", name)

		return
	}

	if err := fsys.WriteFile(name, []byte(result), fileMode); err != nil {
		opts.status("error: %s: %v\n", name, err)
		st.errors++

		return
	}

	st.modified++
	opts.status("converted: %s\n", name)
}

func previewFile(fsys fileSystem, name string, opts *options, st *stats) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		opts.status("error: %s: %v\n", name, err)
		st.errors++

		return
	}

	lines := strings.Split(string(src), "\n")

	blocks := mdfence.Scan(lines, mdfence.DetectFrontmatter(lines))
	if len(blocks) == 0 {
		st.unchanged++
		opts.status("unchanged: %s\n", name)

		return
	}

	st.modified++
	opts.status("would convert %d block(s): %s\n", len(blocks), name)
}
