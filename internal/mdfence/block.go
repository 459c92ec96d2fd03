package mdfence

// Frontmatter is the inclusive line range of a leading metadata block.
type Frontmatter struct {
	Start int
	End   int
}

// Block is a detected indented code block: an inclusive line range plus its
// raw, still-indented content.
type Block struct {
	Start int
	End   int
	Code  string
}

type Blocks []*Block
