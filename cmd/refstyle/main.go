// Package main provides the refstyle CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "refstyle",
	Short: "Citation rendering for academic references",
	Long: `refstyle renders citations from stored references using configurable
journal style templates.

References live in a local SQLite database. Styles are small templates
in a citation mini-language, rendered to plain text, HTML, LaTeX,
Markdown or rich text. All commands output JSON by default for easy
integration with other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getRepoRoot returns the repository search root, or exits with an error.
func getRepoRoot() (string, int) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}

	// Check REFSTYLE_ROOT environment variable first
	if root := os.Getenv("REFSTYLE_ROOT"); root != "" {
		cwd = root
	}

	return cwd, 0
}
