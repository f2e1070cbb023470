package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/preen/internal/config"
	"github.com/aidanlsb/preen/internal/ui"
)

var (
	configSetAutoClean bool
	configSetAccent    string
	configSetCodeTheme string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage preen configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path":         resolvedConfigPath,
				"auto_clean_on_paste": cfg.AutoCleanOnPaste,
				"ui": map[string]interface{}{
					"accent":     strings.TrimSpace(cfg.UI.Accent),
					"code_theme": strings.TrimSpace(cfg.UI.CodeTheme),
				},
			}, nil)
			return nil
		}

		fmt.Printf("config: %s\n", resolvedConfigPath)
		fmt.Printf("auto_clean_on_paste: %t\n", cfg.AutoCleanOnPaste)
		if v := strings.TrimSpace(cfg.UI.Accent); v != "" {
			fmt.Printf("ui.accent: %s\n", v)
		}
		if v := strings.TrimSpace(cfg.UI.CodeTheme); v != "" {
			fmt.Printf("ui.code_theme: %s\n", v)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change configuration options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("auto-clean-on-paste") &&
			!flags.Changed("accent") && !flags.Changed("code-theme") {
			return handleErrorMsg(ErrMissingArgument, "nothing to set", "pass at least one option flag")
		}

		if flags.Changed("auto-clean-on-paste") {
			cfg.AutoCleanOnPaste = configSetAutoClean
		}
		if flags.Changed("accent") {
			cfg.UI.Accent = configSetAccent
		}
		if flags.Changed("code-theme") {
			cfg.UI.CodeTheme = configSetCodeTheme
		}

		if err := config.SaveTo(resolvedConfigPath, cfg); err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path":         resolvedConfigPath,
				"auto_clean_on_paste": cfg.AutoCleanOnPaste,
			}, nil)
			return nil
		}
		fmt.Println(ui.Successf("saved %s", ui.FilePath(resolvedConfigPath)))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefault()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"config_path": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("config at %s", ui.FilePath(path)))
		return nil
	},
}

func init() {
	configSetCmd.Flags().BoolVar(&configSetAutoClean, "auto-clean-on-paste", false, "clean every plain-text paste")
	configSetCmd.Flags().StringVar(&configSetAccent, "accent", "", "accent color (ANSI 0-255 or #RRGGBB)")
	configSetCmd.Flags().StringVar(&configSetCodeTheme, "code-theme", "", "chroma theme for rendered code blocks")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
