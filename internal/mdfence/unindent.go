package mdfence

import "strings"

// Unindent removes one markdown indentation unit from the front of each line:
// a 4-space run if present, else a single tab. Lines with neither prefix are
// left as they are, so deeper nesting beyond the first unit survives.
func Unindent(code string) string {
	lines := strings.Split(code, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "    "):
			lines[i] = line[4:]
		case strings.HasPrefix(line, "\t"):
			lines[i] = line[1:]
		}
	}

	return strings.Join(lines, "\n")
}
