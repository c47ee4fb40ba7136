package main

import (
	"fmt"

	"github.com/mhoffert/refstyle/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change repository configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show repository configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		repoRoot := mustFindRepo()
		cfg := mustLoadRepoConfig(repoRoot)

		if humanOutput {
			fmt.Printf("default_style:  %s\n", cfg.DefaultStyle)
			fmt.Printf("default_format: %s\n", cfg.DefaultFormat)
			fmt.Printf("pdf_root:       %s\n", cfg.PDFRoot)
			fmt.Printf("pdf_reader:     %s\n", cfg.PDFReader)
		} else {
			outputJSON(cfg)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a repository configuration value",
	Long: `Set a repository configuration value.

Keys: default_style, default_format, pdf_root, pdf_reader

Example:
  refstyle config set default_style IEEE`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepo()
	cfg := mustLoadRepoConfig(repoRoot)

	key, value := args[0], args[1]
	switch key {
	case "default_style":
		cfg.DefaultStyle = value
	case "default_format":
		cfg.DefaultFormat = value
	case "pdf_root":
		if err := config.ValidatePDFRoot(value); err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		cfg.PDFRoot = value
	case "pdf_reader":
		if err := config.ValidatePDFReader(value); err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		cfg.PDFReader = value
	default:
		exitWithError(ExitError, "unknown config key: %s", key)
	}

	if err := cfg.Save(repoRoot); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("%s = %s\n", key, value)
	} else {
		outputJSON(struct {
			Status string `json:"status"`
			Key    string `json:"key"`
			Value  string `json:"value"`
		}{Status: "updated", Key: key, Value: value})
	}

	return nil
}
