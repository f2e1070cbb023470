package editor

import (
	"testing"

	"github.com/aidanlsb/preen/internal/parser"
)

func TestCleanBlockAtCursor(t *testing.T) {
	doc := "text\n```js\ncode(   \n\n)\n```\nmore"

	h := NewMemHost(doc, 2)
	if !CleanBlockAtCursor(h) {
		t.Fatal("expected document to be modified")
	}

	want := "text\n```js\ncode(\n)\n```\nmore"
	if got := h.Text(); got != want {
		t.Errorf("document = %q, want %q", got, want)
	}
	if h.LastNotice() != NoticeBlockCleaned {
		t.Errorf("notice = %q, want %q", h.LastNotice(), NoticeBlockCleaned)
	}
}

func TestCleanBlockAtCursorOutsideBlock(t *testing.T) {
	doc := "text\n```js\ncode\n```\nmore"

	h := NewMemHost(doc, 0)
	if CleanBlockAtCursor(h) {
		t.Fatal("document should not be modified")
	}
	if h.Text() != doc {
		t.Errorf("document changed: %q", h.Text())
	}
	if h.LastNotice() != NoticeNoBlock {
		t.Errorf("notice = %q, want %q", h.LastNotice(), NoticeNoBlock)
	}
}

func TestCleanBlockAtCursorAlreadyClean(t *testing.T) {
	doc := "```js\ncode\n```"

	h := NewMemHost(doc, 1)
	if CleanBlockAtCursor(h) {
		t.Fatal("document should not be modified")
	}
	if h.Text() != doc {
		t.Errorf("document changed: %q", h.Text())
	}
	if h.LastNotice() != NoticeBlockClean {
		t.Errorf("notice = %q, want %q", h.LastNotice(), NoticeBlockClean)
	}
}

func TestCleanBlockAtCursorPreservesSurroundings(t *testing.T) {
	doc := "before   \n```\na(\n\n)\n```\nafter   "

	h := NewMemHost(doc, 3)
	if !CleanBlockAtCursor(h) {
		t.Fatal("expected document to be modified")
	}

	// Only the block is touched; trailing whitespace outside it stays.
	want := "before   \n```\na(\n)\n```\nafter   "
	if got := h.Text(); got != want {
		t.Errorf("document = %q, want %q", got, want)
	}
}

func TestCleanSelection(t *testing.T) {
	doc := "line1   \nline2\t\nline3"

	h := NewMemHost(doc, 0)
	h.SetSelection(parser.Position{Line: 0, Ch: 0}, parser.Position{Line: 1, Ch: 6})

	if !CleanSelection(h) {
		t.Fatal("expected document to be modified")
	}
	want := "line1\nline2\nline3"
	if got := h.Text(); got != want {
		t.Errorf("document = %q, want %q", got, want)
	}
	if h.LastNotice() != NoticeSelectionCleaned {
		t.Errorf("notice = %q, want %q", h.LastNotice(), NoticeSelectionCleaned)
	}
}

func TestCleanSelectionNoSelection(t *testing.T) {
	h := NewMemHost("text", 0)
	if CleanSelection(h) {
		t.Fatal("document should not be modified")
	}
	if h.LastNotice() != NoticeNoSelection {
		t.Errorf("notice = %q, want %q", h.LastNotice(), NoticeNoSelection)
	}
}

func TestCleanSelectionAlreadyClean(t *testing.T) {
	doc := "line1\nline2"
	h := NewMemHost(doc, 0)
	h.SetSelection(parser.Position{Line: 0, Ch: 0}, parser.Position{Line: 1, Ch: 5})

	if CleanSelection(h) {
		t.Fatal("document should not be modified")
	}
	if h.Text() != doc {
		t.Errorf("document changed: %q", h.Text())
	}
	if h.LastNotice() != NoticeSelectionClean {
		t.Errorf("notice = %q, want %q", h.LastNotice(), NoticeSelectionClean)
	}
}

func TestMemHostReplaceRange(t *testing.T) {
	h := NewMemHost("abc\ndef\nghi", 0)
	h.ReplaceRange(parser.Position{Line: 0, Ch: 1}, parser.Position{Line: 2, Ch: 1}, "X\nY")

	want := "aX\nYhi"
	if got := h.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
