// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/preen/internal/config"
	"github.com/aidanlsb/preen/internal/ui"
)

var (
	// Global flags
	configPathFlag string

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "prn",
	Short: "Preen - a whitespace cleaner for markdown notes",
	Long: `Preen trims trailing whitespace and collapses noisy blank lines in
markdown notes: whole documents, arbitrary selections, or a single fenced
code block.

Named for what birds do to keep their feathers in order.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it.
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}
		// 'config init' creates the file it would otherwise load.
		if cmd.Name() == "init" && cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg == nil {
			cfg = &config.Config{}
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// loadGlobalConfigWithPath loads the config from --config or the default
// location. A missing file yields the defaults, not an error.
func loadGlobalConfigWithPath() (*config.Config, string, error) {
	path := configPathFlag
	if path == "" {
		path = config.DefaultPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &config.Config{}, path, nil
	}

	loaded, err := config.LoadFrom(path)
	if err != nil {
		return nil, path, err
	}
	return loaded, path, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "path to config file")
	rootCmd.SilenceUsage = true
}
