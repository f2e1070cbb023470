package parser

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter returns the line index of the closing '---' of a YAML
// frontmatter block, or ok=false when the document has none.
//
// Frontmatter is only detected when the first line is '---', the block is
// closed by a later '---', and the lines between them parse as YAML.
// Anything else (including an unclosed block) is treated as ordinary text
// so document cleaning falls through to it.
func Frontmatter(lines []string) (end int, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return -1, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "---" {
			continue
		}
		body := strings.Join(lines[1:i], "\n")
		var data map[string]interface{}
		if err := yaml.Unmarshal([]byte(body), &data); err != nil {
			return -1, false
		}
		// An empty or comment-only block still decodes (to a nil map) and
		// still counts as frontmatter.
		return i, true
	}

	return -1, false
}
