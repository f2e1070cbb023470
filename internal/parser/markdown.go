package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FenceCount returns the number of fenced code blocks goldmark finds in
// content. Cleaning only removes whitespace, so the count before and after
// a clean should match; callers use a mismatch as an advisory warning, not
// as ground truth for locating blocks.
func FenceCount(content string) int {
	md := goldmark.New()
	reader := text.NewReader([]byte(content))
	doc := md.Parser().Parse(reader)

	count := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindFencedCodeBlock {
			count++
		}
		return ast.WalkContinue, nil
	})

	return count
}
