package editor

import (
	"strings"

	"github.com/aidanlsb/preen/internal/normalize"
	"github.com/aidanlsb/preen/internal/parser"
)

// CleanDocument cleans a whole markdown document. A YAML frontmatter block
// at the top is held verbatim, like the fence lines of a code block; the
// rest of the document gets the plain-text clean.
func CleanDocument(content string) string {
	lines := strings.Split(content, "\n")

	end, ok := parser.Frontmatter(lines)
	if !ok {
		return normalize.CleanText(content)
	}
	if end == len(lines)-1 {
		// Frontmatter-only document; nothing left to clean.
		return content
	}

	head := strings.Join(lines[:end+1], "\n")
	body := strings.Join(lines[end+1:], "\n")
	return head + "\n" + normalize.CleanText(body)
}
