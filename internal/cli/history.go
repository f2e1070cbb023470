package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/preen/internal/docid"
	"github.com/aidanlsb/preen/internal/history"
	"github.com/aidanlsb/preen/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [doc]",
	Short: "Show recorded clean runs",
	Long: `List clean runs recorded by 'clean -w' and 'block -w', newest first.
An optional argument filters to one document; it accepts a file path or
a document ID (paths are slugified the same way they were recorded).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := history.Open(history.DefaultPath())
	if err != nil {
		return handleError(ErrDatabaseError, err, "")
	}
	defer db.Close()

	docFilter := ""
	if len(args) == 1 {
		docFilter = docid.FromPath(args[0])
	}

	runs, err := db.List(docFilter, historyLimit)
	if err != nil {
		return handleError(ErrDatabaseError, err, "")
	}

	if isJSONOutput() {
		type jsonRun struct {
			DocID        string `json:"doc_id"`
			Path         string `json:"path"`
			Op           string `json:"op"`
			LinesRemoved int    `json:"lines_removed"`
			BytesBefore  int    `json:"bytes_before"`
			BytesAfter   int    `json:"bytes_after"`
			Timestamp    string `json:"ts"`
		}
		out := make([]jsonRun, 0, len(runs))
		for _, run := range runs {
			out = append(out, jsonRun{
				DocID:        run.DocID,
				Path:         run.Path,
				Op:           run.Op,
				LinesRemoved: run.LinesRemoved,
				BytesBefore:  run.BytesBefore,
				BytesAfter:   run.BytesAfter,
				Timestamp:    run.Timestamp.Format(time.RFC3339),
			})
		}
		outputSuccess(out, &Meta{Count: len(out)})
		return nil
	}

	if len(runs) == 0 {
		fmt.Println(ui.Info("no history recorded"))
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %-9s %s %s\n",
			ui.Hint(run.Timestamp.Local().Format("2006-01-02 15:04")),
			run.Op,
			ui.FilePath(run.Path),
			ui.Count(run.LinesRemoved, "line removed", "lines removed"))
	}
	return nil
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum runs to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
