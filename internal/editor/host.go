// Package editor glues the whitespace transforms to a host editor.
//
// The host is an injected capability set: the operations here never depend
// on a concrete editor type, so any integration (or a test fake) that can
// report a cursor, hand over lines, and replace ranges can drive them.
package editor

import (
	"github.com/aidanlsb/preen/internal/parser"
)

// Host is the capability set the cleaning operations need from an editor.
type Host interface {
	// CursorLine returns the 0-based line index of the cursor.
	CursorLine() int

	// Lines returns the full document as lines, in document order.
	Lines() []string

	// Selection returns the selected text, or ok=false when nothing is
	// selected.
	Selection() (text string, ok bool)

	// ReplaceSelection replaces the current selection with text.
	ReplaceSelection(text string)

	// ReplaceRange replaces the span between two positions with text.
	ReplaceRange(start, end parser.Position, text string)

	// SetSelection sets the active selection to the given span.
	SetSelection(start, end parser.Position)

	// Notify shows a short transient notice to the user.
	Notify(msg string)
}
