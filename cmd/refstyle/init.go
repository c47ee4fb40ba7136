package main

import (
	"fmt"
	"os"

	"github.com/mhoffert/refstyle/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new refstyle repository",
	Long: `Initialize a new refstyle repository in the current directory.

Creates:
  .refstyle/
  ├── config.json     # Default config
  └── refs.db         # Reference database (created on first add)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsRepository(root) {
		exitWithError(ExitError, "directory already contains a refstyle repository")
	}

	if err := os.MkdirAll(config.RefstylePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .refstyle directory: %v", err)
	}

	cfg := &config.Config{PDFReader: "system"}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "creating config.json: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized refstyle repository in %s\n", root)
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: root})
	}

	return nil
}
