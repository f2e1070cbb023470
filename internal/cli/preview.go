package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/preen/internal/editor"
	"github.com/aidanlsb/preen/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render the cleaned document in the terminal",
	Long: `Clean a markdown document and render the result for the terminal,
without touching the file. Useful to inspect what 'clean -w' would do.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return handleError(ErrFileNotFound, fmt.Errorf("file not found: %s", path), "")
		}
		return handleError(ErrFileReadError, err, "")
	}

	cleaned := editor.CleanDocument(string(data))

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"path":    path,
			"changed": cleaned != string(data),
			"text":    cleaned,
		}, nil)
		return nil
	}

	disp := ui.NewDisplayContext()
	rendered, err := ui.RenderMarkdown(cleaned, disp.TermWidth)
	if err != nil {
		return handleError(ErrInvalidInput, err, "")
	}

	fmt.Print(rendered)
	return nil
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
