package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/aidanlsb/preen/internal/docid"
	"github.com/aidanlsb/preen/internal/history"
	"github.com/aidanlsb/preen/internal/ui"
)

// addWriteFlags registers the flags shared by the commands that can edit
// files in place.
func addWriteFlags(fs *pflag.FlagSet, write *bool, noHistory *bool) {
	fs.BoolVarP(write, "write", "w", false, "write result back to the file instead of stdout")
	fs.BoolVar(noHistory, "no-history", false, "do not record this run in the history database")
}

// lineCount returns the number of lines in text.
func lineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// recordRun appends a run to the history database. History failures never
// abort a clean; they degrade to a hint.
func recordRun(path, op, before, after string) []Warning {
	db, err := history.Open(history.DefaultPath())
	if err != nil {
		return historyWarning(err)
	}
	defer db.Close()

	err = db.Record(history.Run{
		DocID:        docid.FromPath(path),
		Path:         path,
		Op:           op,
		LinesRemoved: lineCount(before) - lineCount(after),
		BytesBefore:  len(before),
		BytesAfter:   len(after),
	})
	if err != nil {
		return historyWarning(err)
	}
	return nil
}

func historyWarning(err error) []Warning {
	msg := fmt.Sprintf("history not recorded: %v", err)
	if !isJSONOutput() {
		fmt.Fprintln(os.Stderr, ui.Hint(msg))
	}
	return []Warning{{Code: WarnHistoryDisabled, Message: msg}}
}
