package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key <key>",
	Short: "Show the derived citation key for a reference",
	Long: `Show the citation key derived from a reference's first author and
year, applying the special-surname rules from the style table.

Example:
  refstyle key Knuth1984`,
	Args: cobra.ExactArgs(1),
	RunE: runKey,
}

func runKey(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepo()

	db := mustOpenDB(repoRoot)
	defer db.Close()

	rec := mustGetRecord(db, args[0])
	engine := mustEngine(repoRoot)

	// Re-derive even when a key is stored, so surname rules show through
	stored := rec.Key
	rec.Key = ""
	derived := engine.CitationKey(rec)
	rec.Key = stored

	if humanOutput {
		fmt.Println(derived)
	} else {
		outputJSON(struct {
			Stored  string `json:"stored"`
			Derived string `json:"derived"`
		}{Stored: stored, Derived: derived})
	}

	return nil
}
