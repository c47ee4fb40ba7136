package main

import (
	"fmt"

	"github.com/mhoffert/refstyle/internal/reference"
	"github.com/spf13/cobra"
)

var shortTitleSet string

func init() {
	shortTitleCmd.Flags().StringVar(&shortTitleSet, "set", "", "Set the short title manually")
	rootCmd.AddCommand(shortTitleCmd)
}

var shortTitleCmd = &cobra.Command{
	Use:   "short-title <key>",
	Short: "Show or set a reference's short title",
	Long: `Show the short title derived from a reference's full title, or set
it manually with --set. A manually set short title survives later title
edits.

Example:
  refstyle short-title Knuth1984
  refstyle short-title Knuth1984 --set "Literate Programming"`,
	Args: cobra.ExactArgs(1),
	RunE: runShortTitle,
}

func runShortTitle(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepo()

	db := mustOpenDB(repoRoot)
	defer db.Close()

	rec := mustGetRecord(db, args[0])

	if shortTitleSet != "" {
		rec.SetShortTitle(shortTitleSet)
		if err := db.Upsert(rec.Key, rec); err != nil {
			exitWithError(ExitError, "%v", err)
		}
	} else if rec.ShortTitle == "" {
		rec.ShortTitle = reference.DeriveShortTitle(rec.Title, reference.ShortTitleOptions{})
	}

	if humanOutput {
		fmt.Println(rec.ShortTitle)
	} else {
		outputJSON(struct {
			Key        string `json:"key"`
			ShortTitle string `json:"short_title"`
			Manual     bool   `json:"manual"`
		}{Key: rec.Key, ShortTitle: rec.ShortTitle, Manual: rec.ShortTitleManual})
	}

	return nil
}
