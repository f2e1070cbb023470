package editor

import (
	"strings"

	"github.com/aidanlsb/preen/internal/parser"
)

// MemHost is an in-memory Host. It backs the CLI (whose "document" is a
// file or stdin) and the unit tests; no real editor is needed to exercise
// the operations.
type MemHost struct {
	lines  []string
	cursor int

	selStart parser.Position
	selEnd   parser.Position
	hasSel   bool

	// Notices records every Notify call in order.
	Notices []string
}

// NewMemHost creates a host over text with the cursor on cursorLine.
func NewMemHost(text string, cursorLine int) *MemHost {
	return &MemHost{
		lines:  strings.Split(text, "\n"),
		cursor: cursorLine,
	}
}

// Text returns the current document content.
func (m *MemHost) Text() string {
	return strings.Join(m.lines, "\n")
}

// CursorLine returns the 0-based cursor line.
func (m *MemHost) CursorLine() int { return m.cursor }

// Lines returns the document lines.
func (m *MemHost) Lines() []string { return m.lines }

// Selection returns the text of the active selection.
func (m *MemHost) Selection() (string, bool) {
	if !m.hasSel {
		return "", false
	}
	return m.slice(m.selStart, m.selEnd), true
}

// SetSelection sets the active selection span.
func (m *MemHost) SetSelection(start, end parser.Position) {
	m.selStart = start
	m.selEnd = end
	m.hasSel = true
}

// ReplaceSelection replaces the active selection with text and clears it.
func (m *MemHost) ReplaceSelection(text string) {
	if !m.hasSel {
		return
	}
	m.ReplaceRange(m.selStart, m.selEnd, text)
	m.hasSel = false
}

// ReplaceRange splices text over the span between start and end.
func (m *MemHost) ReplaceRange(start, end parser.Position, text string) {
	prefix := m.lines[start.Line][:start.Ch]
	suffix := m.lines[end.Line][end.Ch:]

	replacement := strings.Split(prefix+text+suffix, "\n")

	out := make([]string, 0, len(m.lines))
	out = append(out, m.lines[:start.Line]...)
	out = append(out, replacement...)
	out = append(out, m.lines[end.Line+1:]...)
	m.lines = out
}

// Notify records the notice.
func (m *MemHost) Notify(msg string) {
	m.Notices = append(m.Notices, msg)
}

// LastNotice returns the most recent notice, or "" when none was shown.
func (m *MemHost) LastNotice() string {
	if len(m.Notices) == 0 {
		return ""
	}
	return m.Notices[len(m.Notices)-1]
}

func (m *MemHost) slice(start, end parser.Position) string {
	if start.Line == end.Line {
		return m.lines[start.Line][start.Ch:end.Ch]
	}

	parts := make([]string, 0, end.Line-start.Line+1)
	parts = append(parts, m.lines[start.Line][start.Ch:])
	parts = append(parts, m.lines[start.Line+1:end.Line]...)
	parts = append(parts, m.lines[end.Line][:end.Ch])
	return strings.Join(parts, "\n")
}
