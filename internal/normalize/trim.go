package normalize

import (
	"strings"
	"unicode"
)

// TrimTrailing removes trailing whitespace from a single line.
// Leading whitespace is left untouched.
func TrimTrailing(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// CleanText trims trailing whitespace from every line of text and collapses
// noisy blank lines. Fence markers inside the text are treated as ordinary
// lines; use CleanBlock when the text is a fenced code block.
//
// A final empty line produced by a trailing newline survives as long as its
// predecessor is non-blank, so a file-final newline round-trips.
func CleanText(text string) string {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = TrimTrailing(lines[i])
	}
	return strings.Join(Normalize(lines), "\n")
}

// CleanBlock cleans the interior of a fenced code block. The first and last
// lines (the fence markers) are preserved byte-for-byte; every interior line
// has trailing whitespace stripped and blank lines are collapsed.
//
// Input with fewer than 2 lines cannot be a fenced block and is returned
// unchanged.
func CleanBlock(blockText string) string {
	lines := strings.Split(blockText, "\n")
	if len(lines) < 2 {
		return blockText
	}

	interior := make([]string, len(lines)-2)
	for i, line := range lines[1 : len(lines)-1] {
		interior[i] = TrimTrailing(line)
	}

	out := make([]string, 0, len(lines))
	out = append(out, lines[0])
	out = append(out, Normalize(interior)...)
	out = append(out, lines[len(lines)-1])
	return strings.Join(out, "\n")
}
