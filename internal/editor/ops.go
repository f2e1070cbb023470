package editor

import (
	"github.com/aidanlsb/preen/internal/normalize"
	"github.com/aidanlsb/preen/internal/parser"
)

// User-facing notices. These are UX feedback for no-op requests, not errors.
const (
	NoticeNoBlock          = "cursor is not inside a code block"
	NoticeBlockClean       = "code block is already clean"
	NoticeBlockCleaned     = "cleaned code block"
	NoticeNoSelection      = "nothing is selected"
	NoticeSelectionClean   = "selection is already clean"
	NoticeSelectionCleaned = "cleaned selection"
)

// CleanBlockAtCursor cleans the fenced code block containing the cursor.
// The document is only edited when cleaning changes the block text, so a
// clean block never produces a no-op edit in the host's undo history.
// Returns true if the document was modified.
func CleanBlockAtCursor(h Host) bool {
	span, found := parser.Locate(h.Lines(), h.CursorLine())
	if !found {
		h.Notify(NoticeNoBlock)
		return false
	}

	cleaned := normalize.CleanBlock(span.Text)
	if cleaned == span.Text {
		h.Notify(NoticeBlockClean)
		return false
	}

	h.ReplaceRange(span.Start, span.End, cleaned)
	h.Notify(NoticeBlockCleaned)
	return true
}

// CleanSelection cleans the current selection as plain text. Fence markers
// inside the selection are treated as ordinary lines.
// Returns true if the document was modified.
func CleanSelection(h Host) bool {
	text, ok := h.Selection()
	if !ok {
		h.Notify(NoticeNoSelection)
		return false
	}

	cleaned := normalize.CleanText(text)
	if cleaned == text {
		h.Notify(NoticeSelectionClean)
		return false
	}

	h.ReplaceSelection(cleaned)
	h.Notify(NoticeSelectionCleaned)
	return true
}
