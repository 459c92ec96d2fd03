package mdfence

import "strings"

// Scan walks the document once and returns every indented code block, in
// order. Lines inside fm are skipped. Lines between a pair of ``` fences are
// passed over without indentation checks; a fence line that cuts off an
// indented run discards the run rather than emitting it.
func Scan(lines []string, fm *Frontmatter) Blocks {
	var (
		blocks Blocks
		buff   []string
		start  = -1
		fenced bool
	)

	flush := func() {
		if start < 0 {
			return
		}

		trimmed := buff
		for len(trimmed) > 0 && isBlank(trimmed[len(trimmed)-1]) {
			trimmed = trimmed[:len(trimmed)-1]
		}

		if len(trimmed) > 0 {
			blocks = append(blocks, &Block{
				Start: start,
				End:   start + len(trimmed) - 1,
				Code:  strings.Join(trimmed, "\n"),
			})
		}

		start = -1
		buff = nil
	}

	for i, line := range lines {
		if fm != nil && i >= fm.Start && i <= fm.End {
			continue
		}

		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			fenced = !fenced
			start = -1
			buff = nil

			continue
		}

		if fenced {
			continue
		}

		// Blank lines extend a block but never start one.
		if isIndented(line) || (isBlank(line) && start >= 0) {
			if start < 0 {
				start = i
			}

			buff = append(buff, line)

			continue
		}

		flush()
	}

	if !fenced {
		flush()
	}

	return blocks
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

func isBlank(line string) bool {
	return len(strings.TrimSpace(line)) == 0
}
