package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/preen/internal/atomicfile"
	"github.com/aidanlsb/preen/internal/editor"
	"github.com/aidanlsb/preen/internal/normalize"
	"github.com/aidanlsb/preen/internal/parser"
	"github.com/aidanlsb/preen/internal/ui"
)

var (
	cleanWrite     bool
	cleanNoHistory bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file...]",
	Short: "Trim trailing whitespace and collapse blank lines",
	Long: `Clean markdown documents: strip trailing whitespace from every line and
collapse noisy blank lines (runs of blanks, blanks hugging brackets).
YAML frontmatter is preserved byte-for-byte.

With no arguments, reads stdin and writes the cleaned text to stdout.
With files, prints the cleaned content unless -w writes it back in place.`,
	RunE: runClean,
}

type cleanResult struct {
	Path         string `json:"path"`
	DocID        string `json:"doc_id,omitempty"`
	Changed      bool   `json:"changed"`
	LinesRemoved int    `json:"lines_removed"`
	Written      bool   `json:"written"`
}

func runClean(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cleanStdin()
	}

	var results []cleanResult
	var warnings []Warning

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return handleError(ErrFileNotFound, fmt.Errorf("file not found: %s", path), "")
			}
			return handleError(ErrFileReadError, err, "")
		}

		content := string(data)
		cleaned := editor.CleanDocument(content)
		changed := cleaned != content

		if changed && parser.FenceCount(content) != parser.FenceCount(cleaned) {
			msg := fmt.Sprintf("fenced block count changed in %s", path)
			warnings = append(warnings, Warning{Code: WarnStructureChanged, Message: msg})
			if !isJSONOutput() {
				fmt.Fprintln(os.Stderr, ui.Warning(msg))
			}
		}

		result := cleanResult{
			Path:         path,
			Changed:      changed,
			LinesRemoved: lineCount(content) - lineCount(cleaned),
		}

		if changed && cleanWrite {
			if err := atomicfile.WriteFile(path, []byte(cleaned), 0); err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
			result.Written = true
			if !cleanNoHistory {
				warnings = append(warnings, recordRun(path, "document", content, cleaned)...)
			}
		}

		if !cleanWrite && !isJSONOutput() {
			fmt.Print(cleaned)
		}
		if cleanWrite && !isJSONOutput() {
			if changed {
				fmt.Println(ui.Successf("cleaned %s %s", ui.FilePath(path),
					ui.Count(result.LinesRemoved, "line removed", "lines removed")))
			} else {
				fmt.Println(ui.Infof("%s already clean", ui.FilePath(path)))
			}
		}

		results = append(results, result)
	}

	if isJSONOutput() {
		outputSuccessWithWarnings(results, warnings, &Meta{Count: len(results)})
	}
	return nil
}

// cleanStdin applies the selection clean to stdin: no fence or frontmatter
// awareness, exactly the transform a paste or selection gets.
func cleanStdin() error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}

	cleaned := normalize.CleanText(string(data))
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"changed": cleaned != string(data),
			"text":    cleaned,
		}, nil)
		return nil
	}

	fmt.Print(cleaned)
	return nil
}

func init() {
	addWriteFlags(cleanCmd.Flags(), &cleanWrite, &cleanNoHistory)
	rootCmd.AddCommand(cleanCmd)
}
