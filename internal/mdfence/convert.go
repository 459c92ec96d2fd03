// Package mdfence converts classic indented markdown code blocks into fenced
// code blocks. It operates on whole documents as plain text and performs no
// I/O; callers may run it on any number of documents concurrently.
package mdfence

import "strings"

// Convert rewrites every indented code block in source as a fenced block,
// skipping frontmatter and the contents of pre-existing fences. It returns
// true and the rewritten document when anything changed, or false and source
// unmodified.
func Convert(source string) (bool, string) {
	lines := strings.Split(source, "\n")

	blocks := Scan(lines, DetectFrontmatter(lines))
	if len(blocks) == 0 {
		return false, source
	}

	return true, strings.Join(Rewrite(lines, blocks), "\n")
}
