package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mhoffert/refstyle/internal/config"
	"github.com/mhoffert/refstyle/internal/pdf"
	"github.com/spf13/cobra"
)

var pdfAdd bool

func init() {
	pdfDOICmd.Flags().BoolVar(&pdfAdd, "add", false, "Fetch metadata for the extracted DOI and store it")
	pdfCmd.AddCommand(pdfDOICmd)
	pdfCmd.AddCommand(pdfOpenCmd)
	rootCmd.AddCommand(pdfCmd)
}

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Work with PDF files",
}

var pdfDOICmd = &cobra.Command{
	Use:   "doi <file.pdf>",
	Short: "Extract a DOI from a PDF",
	Long: `Extract a DOI from the first pages of a PDF. With --add, fetch the
DOI's metadata from doi.org and store the reference.

Example:
  refstyle pdf doi paper.pdf --add`,
	Args: cobra.ExactArgs(1),
	RunE: runPDFDOI,
}

func runPDFDOI(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	meta, err := pdf.Scan(args[0])
	if err != nil {
		exitWithError(ExitError, "reading PDF: %v", err)
	}
	if meta.DOI == "" {
		if meta.Title != "" {
			exitWithError(ExitDataError, "no DOI found in %s (title guess: %q)", args[0], meta.Title)
		}
		exitWithError(ExitDataError, "no DOI found in %s", args[0])
	}

	if pdfAdd {
		doiAdd = true
		return runDOI(cmd, []string{meta.DOI})
	}

	if humanOutput {
		fmt.Println(meta.DOI)
	} else {
		outputJSON(struct {
			File  string `json:"file"`
			DOI   string `json:"doi"`
			Title string `json:"title,omitempty"`
		}{File: args[0], DOI: meta.DOI, Title: meta.Title})
	}

	return nil
}

var pdfOpenCmd = &cobra.Command{
	Use:   "open <key-or-path>",
	Short: "Open a PDF in the configured reader",
	Long: `Open a PDF in the reader configured as pdf_reader. A citation key
resolves to <key>.pdf under pdf_root; a relative path is taken as-is.

Examples:
  refstyle pdf open Knuth1984
  refstyle pdf open knuth/literate.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runPDFOpen,
}

func runPDFOpen(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepo()
	cfg := mustLoadRepoConfig(repoRoot)

	opener := pdf.NewOpener(config.ExpandPath(cfg.PDFRoot), cfg.PDFReader)
	fullPath, err := opener.Resolve(args[0])
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if err := opener.Open(fullPath); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Opened %s\n", fullPath)
	} else {
		outputJSON(StatusResponse{Status: "opened", Path: fullPath})
	}

	return nil
}
