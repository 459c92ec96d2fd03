package mdfence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFrontmatter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Frontmatter
	}{
		{
			name:  "no frontmatter",
			input: "# Hello\n\nWorld",
			want:  nil,
		},
		{
			name:  "toml frontmatter",
			input: "+++\ntitle = \"Post\"\n+++\n\nBody",
			want:  &Frontmatter{Start: 0, End: 2},
		},
		{
			name:  "yaml frontmatter",
			input: "---\ntitle: Post\ntags: [a, b]\n---\nBody",
			want:  &Frontmatter{Start: 0, End: 3},
		},
		{
			name:  "unclosed frontmatter",
			input: "---\ntitle: Post\n",
			want:  nil,
		},
		{
			name:  "mismatched delimiters",
			input: "---\ntitle = 1\n+++\n",
			want:  nil,
		},
		{
			name:  "first closing delimiter wins",
			input: "+++\na = 1\n+++\nb\n+++\n",
			want:  &Frontmatter{Start: 0, End: 2},
		},
		{
			name:  "delimiter with surrounding whitespace",
			input: "  ---  \ntitle: Post\n --- \nBody",
			want:  &Frontmatter{Start: 0, End: 2},
		},
		{
			name:  "delimiter not on first line",
			input: "intro\n---\ntitle: Post\n---\n",
			want:  nil,
		},
		{
			name:  "empty document",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectFrontmatter(strings.Split(tt.input, "\n"))

			assert.Equal(t, tt.want, got)
		})
	}
}
