package mdfence

import "strings"

// DetectFrontmatter locates a leading TOML (+++) or YAML (---) frontmatter
// block. The opening delimiter must be the first line; the block ends at the
// first matching closing delimiter. It returns nil when the document has no
// frontmatter or the block is never closed.
func DetectFrontmatter(lines []string) *Frontmatter {
	if len(lines) == 0 {
		return nil
	}

	delim := strings.TrimSpace(lines[0])
	if delim != "+++" && delim != "---" {
		return nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delim {
			return &Frontmatter{Start: 0, End: i}
		}
	}

	return nil
}
