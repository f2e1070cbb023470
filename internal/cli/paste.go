package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/preen/internal/editor"
	"github.com/aidanlsb/preen/internal/normalize"
)

var pasteForce bool

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Filter a paste through the auto-clean decision",
	Long: `Read a plain-text paste from stdin and write the insertion to stdout.

Honors auto_clean_on_paste from the config: when enabled, the paste is
cleaned and the cleaned text is emitted only if it differs; otherwise the
input passes through untouched. --force cleans regardless of the setting.`,
	Args: cobra.NoArgs,
	RunE: runPaste,
}

func runPaste(cmd *cobra.Command, args []string) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}
	text := string(data)

	out := text
	replaced := false
	if pasteForce {
		out = normalize.CleanText(text)
		replaced = out != text
	} else if decision := editor.HandlePaste(cfg, text); decision.Replace {
		out = decision.Text
		replaced = true
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"replaced": replaced,
			"text":     out,
		}, nil)
		return nil
	}

	fmt.Print(out)
	return nil
}

func init() {
	pasteCmd.Flags().BoolVar(&pasteForce, "force", false, "clean even when auto_clean_on_paste is off")
	rootCmd.AddCommand(pasteCmd)
}
