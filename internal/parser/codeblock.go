// Package parser locates fenced code blocks and frontmatter in markdown
// documents. It works on raw lines; no markdown semantics beyond the
// delimiters themselves are interpreted.
package parser

import (
	"strings"
)

// Position is a point in a document: a 0-based line index and a character
// offset within that line.
type Position struct {
	Line int
	Ch   int
}

// BlockSpan is the located boundary and literal text of one fenced code
// block, fence marker lines included. Values are produced fresh per lookup
// and never mutated.
type BlockSpan struct {
	Start Position
	End   Position
	Text  string
}

// IsFenceMarker reports whether a line opens or closes a fenced code block.
// After stripping leading whitespace the line must start with a run of at
// least three backticks or tildes; anything after the run (a language tag)
// is allowed.
func IsFenceMarker(line string) bool {
	s := strings.TrimLeft(line, " \t")
	if len(s) < 3 {
		return false
	}
	ch := s[0]
	if ch != '`' && ch != '~' {
		return false
	}
	i := 0
	for i < len(s) && s[i] == ch {
		i++
	}
	return i >= 3
}

// Locate finds the fenced code block containing cursorLine, scanning the
// document once from the top. While a block is open, the next fence marker
// always closes it; there is no nesting and no matching of fence character
// or length on close. An opening fence with no close before end of document
// encloses nothing.
//
// The returned span covers both fence marker lines: Start is column 0 of
// the opening fence line and End is the final column of the closing fence
// line. Containment is by line index, inclusive on both ends.
func Locate(lines []string, cursorLine int) (BlockSpan, bool) {
	inside := false
	start := 0

	for i, line := range lines {
		if !IsFenceMarker(line) {
			continue
		}
		if !inside {
			inside = true
			start = i
			continue
		}
		inside = false
		if cursorLine < start || cursorLine > i {
			continue
		}
		return BlockSpan{
			Start: Position{Line: start},
			End:   Position{Line: i, Ch: len(lines[i])},
			Text:  strings.Join(lines[start:i+1], "\n"),
		}, true
	}

	return BlockSpan{}, false
}
