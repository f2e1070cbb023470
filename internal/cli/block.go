package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/preen/internal/atomicfile"
	"github.com/aidanlsb/preen/internal/editor"
	"github.com/aidanlsb/preen/internal/ui"
)

var (
	blockLine      int
	blockWrite     bool
	blockNoHistory bool
)

var blockCmd = &cobra.Command{
	Use:   "block <file>",
	Short: "Clean the fenced code block containing a line",
	Long: `Clean only the fenced code block that contains --line (0-based), the way
an editor integration cleans the block under the cursor. The fence marker
lines are preserved byte-for-byte; the rest of the document is untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runBlock,
}

func runBlock(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return handleError(ErrFileNotFound, fmt.Errorf("file not found: %s", path), "")
		}
		return handleError(ErrFileReadError, err, "")
	}

	content := string(data)
	if blockLine < 0 || blockLine >= lineCount(content) {
		return handleErrorMsg(ErrInvalidInput,
			fmt.Sprintf("line %d is outside the document (0-%d)", blockLine, lineCount(content)-1), "")
	}

	h := editor.NewMemHost(content, blockLine)
	changed := editor.CleanBlockAtCursor(h)
	cleaned := h.Text()

	if changed && blockWrite {
		if err := atomicfile.WriteFile(path, []byte(cleaned), 0); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		if !blockNoHistory {
			recordRun(path, "block", content, cleaned)
		}
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"path":    path,
			"line":    blockLine,
			"changed": changed,
			"notice":  h.LastNotice(),
			"written": changed && blockWrite,
		}, nil)
		return nil
	}

	switch h.LastNotice() {
	case editor.NoticeBlockCleaned:
		if blockWrite {
			fmt.Println(ui.Successf("cleaned code block at line %s in %s",
				ui.LineNum(blockLine), ui.FilePath(path)))
		} else {
			fmt.Print(cleaned)
			if !strings.HasSuffix(cleaned, "\n") {
				fmt.Println()
			}
		}
	default:
		fmt.Println(ui.Info(h.LastNotice()))
	}

	return nil
}

func init() {
	blockCmd.Flags().IntVar(&blockLine, "line", 0, "0-based line the cursor is on")
	addWriteFlags(blockCmd.Flags(), &blockWrite, &blockNoHistory)
	rootCmd.AddCommand(blockCmd)
}
