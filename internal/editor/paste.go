package editor

import (
	"github.com/aidanlsb/preen/internal/config"
	"github.com/aidanlsb/preen/internal/normalize"
)

// PasteDecision tells the host what to do with a plain-text paste:
// pass it through untouched, or suppress the default insertion and
// insert Text instead.
type PasteDecision struct {
	Replace bool
	Text    string
}

// HandlePaste decides whether a plain-text paste should be replaced with
// its cleaned form. The paste is cleaned only when auto-clean is enabled,
// and the insertion is replaced only when cleaning actually changed the
// text. Pure function; the host acts on the decision.
func HandlePaste(cfg *config.Config, text string) PasteDecision {
	if cfg == nil || !cfg.AutoCleanOnPaste {
		return PasteDecision{}
	}

	cleaned := normalize.CleanText(text)
	if cleaned == text {
		return PasteDecision{}
	}

	return PasteDecision{Replace: true, Text: cleaned}
}
