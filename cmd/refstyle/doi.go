package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mhoffert/refstyle/internal/config"
	"github.com/mhoffert/refstyle/internal/doiorg"
	"github.com/spf13/cobra"
)

var doiAdd bool

func init() {
	doiCmd.Flags().BoolVar(&doiAdd, "add", false, "Store the fetched reference in the repository")
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi <doi>",
	Short: "Fetch reference metadata for a DOI",
	Long: `Fetch reference metadata from doi.org via BibTeX content negotiation.

Example:
  refstyle doi 10.1093/comjnl/27.2.97 --add`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

func runDOI(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	repoRoot := mustFindRepo()

	client := doiorg.NewClient(doiorg.WithMailTo(config.GetMailTo()))
	rec, err := client.FetchRecord(context.Background(), args[0])
	if err != nil {
		code := ExitNetwork
		if errors.Is(err, doiorg.ErrInvalidResponse) {
			code = ExitDataError
		}
		exitWithError(code, "%v", err)
	}

	engine := mustEngine(repoRoot)
	if rec.Venue == "" {
		rec.Venue = engine.Styles().MapVenue(rec.Journal)
	}
	if rec.Key == "" {
		rec.SetKey(engine.CitationKey(rec))
	}

	if doiAdd {
		db := mustOpenDB(repoRoot)
		defer db.Close()
		if err := db.Upsert(rec.Key, rec); err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	if humanOutput {
		printRecordDetail(rec)
		if doiAdd {
			fmt.Printf("\nAdded %s\n", rec.Key)
		}
	} else {
		outputJSON(rec)
	}

	return nil
}
