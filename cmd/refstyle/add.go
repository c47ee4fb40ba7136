package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mhoffert/refstyle/internal/export"
	"github.com/mhoffert/refstyle/internal/reference"
	"github.com/spf13/cobra"
)

var addFlags struct {
	authors string
	title   string
	year    string
	journal string
	bibType string
	doi     string
	url     string
	key     string
	bibtex  bool
}

func init() {
	addCmd.Flags().StringVar(&addFlags.authors, "authors", "", "Author field in BibTeX form (\"Last, First and ...\")")
	addCmd.Flags().StringVar(&addFlags.title, "title", "", "Title")
	addCmd.Flags().StringVar(&addFlags.year, "year", "", "Publication year")
	addCmd.Flags().StringVar(&addFlags.journal, "journal", "", "Journal or venue")
	addCmd.Flags().StringVar(&addFlags.bibType, "type", "article", "BibTeX entry type")
	addCmd.Flags().StringVar(&addFlags.doi, "doi", "", "DOI")
	addCmd.Flags().StringVar(&addFlags.url, "url", "", "URL")
	addCmd.Flags().StringVar(&addFlags.key, "key", "", "Explicit citation key (derived when empty)")
	addCmd.Flags().BoolVar(&addFlags.bibtex, "bibtex", false, "Read a BibTeX entry from stdin instead of flags")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a reference",
	Long: `Add a reference from flags, or from a BibTeX entry on stdin.

Examples:
  refstyle add --authors "Knuth, Donald E." --title "Literate Programming" --year 1984
  refstyle add --bibtex < entry.bib`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepo()

	var rec *reference.Record
	if addFlags.bibtex {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitWithError(ExitError, "reading stdin: %v", err)
		}
		rec, err = export.ParseEntry(string(data))
		if err != nil {
			exitWithError(ExitDataError, "%v", err)
		}
	} else {
		if addFlags.title == "" {
			exitWithError(ExitError, "--title is required (or use --bibtex)")
		}
		rec = &reference.Record{Type: addFlags.bibType}
		if addFlags.authors != "" {
			if err := rec.SetAuthors(addFlags.authors); err != nil {
				exitWithError(ExitDataError, "%v", err)
			}
		}
		rec.SetTitle(addFlags.title)
		rec.Year = addFlags.year
		rec.Journal = addFlags.journal
		rec.DOI = addFlags.doi
		rec.URL = addFlags.url
	}

	if addFlags.key != "" {
		rec.SetKey(addFlags.key)
	}

	engine := mustEngine(repoRoot)
	if rec.Venue == "" {
		rec.Venue = engine.Styles().MapVenue(rec.Journal)
	}

	key := engine.CitationKey(rec)
	if key == "" {
		exitWithError(ExitDataError, "cannot derive a citation key: no key, author or year")
	}
	rec.SetKey(key)

	db := mustOpenDB(repoRoot)
	defer db.Close()

	if err := db.Upsert(key, rec); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Added %s\n", key)
	} else {
		outputJSON(StatusResponse{Status: "added", Key: key})
	}

	return nil
}
