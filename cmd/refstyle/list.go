package main

import (
	"fmt"

	"github.com/mhoffert/refstyle/internal/author"
	"github.com/mhoffert/refstyle/internal/reference"
	"github.com/spf13/cobra"
)

var (
	listSearch string
	listAuthor string
)

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by substring of title, authors or journal")
	listCmd.Flags().StringVar(&listAuthor, "author", "", "Filter by author name (\"Last\", \"First Last\" or \"Last, First\")")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored references",
	Long: `List stored references, optionally filtered.

Example:
  refstyle list --search knuth`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepo()

	db := mustOpenDB(repoRoot)
	defer db.Close()

	var recs []*reference.Record
	var err error
	if listSearch != "" {
		recs, err = db.Search(listSearch)
	} else {
		recs, err = db.List()
	}
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if listAuthor != "" {
		q := author.ParseQuery(listAuthor)
		filtered := recs[:0]
		for _, rec := range recs {
			if q.MatchesAny(rec.Authors) {
				filtered = append(filtered, rec)
			}
		}
		recs = filtered
	}

	if humanOutput {
		for _, rec := range recs {
			year := rec.Year
			if year == "" {
				year = "????"
			}
			fmt.Printf("%-24s %s  %s\n", rec.Key, year, truncateString(rec.Title, ListTitleMaxLen))
		}
		fmt.Printf("\n%d reference(s)\n", len(recs))
	} else {
		if recs == nil {
			recs = []*reference.Record{}
		}
		outputJSON(struct {
			Total      int                 `json:"total"`
			References []*reference.Record `json:"references"`
		}{Total: len(recs), References: recs})
	}

	return nil
}
