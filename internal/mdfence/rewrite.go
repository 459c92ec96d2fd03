package mdfence

import "strings"

const fence = "```"

// Rewrite replaces each block's line range with a fenced equivalent and
// returns the new line sequence. The result is rebuilt front to back: prose
// between blocks is copied through untouched, so earlier replacements never
// shift the indices of later ones.
func Rewrite(lines []string, blocks Blocks) []string {
	if len(blocks) == 0 {
		return lines
	}

	result := make([]string, 0, len(lines)+2*len(blocks))

	src := 0

	for _, block := range blocks {
		result = append(result, lines[src:block.Start]...)
		result = append(result, fence)
		result = append(result, strings.Split(Unindent(block.Code), "\n")...)
		result = append(result, fence)

		src = block.End + 1
	}

	return append(result, lines[src:]...)
}
