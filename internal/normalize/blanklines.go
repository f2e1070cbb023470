// Package normalize implements the whitespace cleaning transforms:
// trailing-whitespace removal and blank-line collapsing.
package normalize

import "strings"

const (
	openers = "([{"
	closers = ")]}"
)

func endsWithOpener(s string) bool {
	return s != "" && strings.IndexByte(openers, s[len(s)-1]) >= 0
}

func startsWithCloser(s string) bool {
	return s != "" && strings.IndexByte(closers, s[0]) >= 0
}

// Normalize collapses noisy blank lines in a sequence of lines.
//
// A blank line is suppressed when the previously emitted line ends with an
// opening bracket, when the next input line starts with a closing bracket,
// or when the previously emitted line is itself blank (collapsing runs of
// blank lines down to one). Checks are applied in that order.
//
// Only the literal last/first character of the trimmed neighbor lines is
// inspected. Brackets inside string literals or comments are not
// distinguished; false suppressions there are accepted.
func Normalize(lines []string) []string {
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
			continue
		}

		prev := ""
		if len(out) > 0 {
			prev = strings.TrimSpace(out[len(out)-1])
		}
		next := ""
		if i+1 < len(lines) {
			next = strings.TrimSpace(lines[i+1])
		}

		if endsWithOpener(prev) {
			continue
		}
		if startsWithCloser(next) {
			continue
		}
		if prev == "" {
			continue
		}

		out = append(out, line)
	}

	return out
}
