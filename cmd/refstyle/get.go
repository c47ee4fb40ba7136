package main

import (
	"fmt"
	"strings"

	"github.com/mhoffert/refstyle/internal/reference"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a single reference by citation key",
	Long: `Get a single reference by its citation key.

Example:
  refstyle get Knuth1984`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepo()

	db := mustOpenDB(repoRoot)
	defer db.Close()

	rec := mustGetRecord(db, args[0])

	if humanOutput {
		printRecordDetail(rec)
	} else {
		outputJSON(rec)
	}

	return nil
}

func printRecordDetail(rec *reference.Record) {
	fmt.Println(rec.Key)
	fmt.Println(strings.Repeat("═", 70))
	fmt.Println()

	fmt.Printf("Title:    %s\n", wrapText(rec.Title, 60, "          "))
	if rec.ShortTitle != "" {
		fmt.Printf("Short:    %s\n", rec.ShortTitle)
	}
	fmt.Println()

	if rec.Authors != nil && rec.Authors.Len() > 0 {
		fmt.Printf("Authors:  %s\n", wrapText(rec.Authors.Join(", "), 60, "          "))
		fmt.Println()
	}

	if rec.Journal != "" {
		fmt.Printf("Journal:  %s\n", rec.Journal)
	}
	if rec.Venue != "" {
		fmt.Printf("Venue:    %s\n", rec.Venue)
	}
	if rec.Year != "" {
		fmt.Printf("Year:     %s\n", rec.Year)
	}
	if rec.DOI != "" {
		fmt.Printf("DOI:      %s\n", rec.DOI)
	}
	if rec.URL != "" {
		fmt.Printf("URL:      %s\n", rec.URL)
	}

	if rec.Abstract != "" {
		fmt.Println()
		fmt.Println("Abstract:")
		fmt.Printf("  %s\n", wrapText(rec.Abstract, DetailTextWrapWidth, "  "))
	}
	if rec.Notes != "" {
		fmt.Println()
		fmt.Println("Notes:")
		fmt.Printf("  %s\n", wrapText(rec.Notes, DetailTextWrapWidth, "  "))
	}
}
