package main

import (
	"fmt"

	"github.com/mhoffert/refstyle/internal/export"
	"github.com/mhoffert/refstyle/internal/reference"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [key ...]",
	Short: "Export references as BibTeX",
	Long: `Export references as BibTeX entries. With no arguments, exports the
whole repository.

Example:
  refstyle export Knuth1984 Lamport1986 > refs.bib`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepo()

	db := mustOpenDB(repoRoot)
	defer db.Close()

	var recs []*reference.Record
	if len(args) == 0 {
		all, err := db.List()
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		recs = all
	} else {
		for _, key := range args {
			recs = append(recs, mustGetRecord(db, key))
		}
	}

	engine := mustEngine(repoRoot)
	keys := make([]string, len(recs))
	for i, rec := range recs {
		keys[i] = engine.CitationKey(rec)
	}

	// BibTeX is the payload either way; JSON wrapping would only force
	// consumers to unescape it
	fmt.Print(export.ToBibTeXList(recs, keys))

	return nil
}
