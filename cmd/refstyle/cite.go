package main

import (
	"fmt"

	"github.com/mhoffert/refstyle/internal/citation"
	"github.com/mhoffert/refstyle/internal/clipboard"
	"github.com/mhoffert/refstyle/internal/config"
	"github.com/mhoffert/refstyle/internal/style"
	"github.com/spf13/cobra"
)

var citeFlags struct {
	style   string
	format  string
	bibType string
	kind    string
	link    bool
	marker  bool
	keyOnly bool
	copy    bool
}

func init() {
	citeCmd.Flags().StringVar(&citeFlags.style, "style", "", "Citation style (e.g. APA, IEEE)")
	citeCmd.Flags().StringVar(&citeFlags.format, "format", "", "Output format (plain, html, html+css, latex, markdown, richtext)")
	citeCmd.Flags().StringVar(&citeFlags.bibType, "type", "", "BibTeX entry type override")
	citeCmd.Flags().StringVar(&citeFlags.kind, "kind", "reference", "Citation kind (reference, footnote, in-text)")
	citeCmd.Flags().BoolVar(&citeFlags.link, "link", false, "Append the full link")
	citeCmd.Flags().BoolVar(&citeFlags.marker, "marker", false, "Append a compact link marker")
	citeCmd.Flags().BoolVar(&citeFlags.keyOnly, "key-only", false, "Emit a bare \\cite{key} instead of a rendered citation")
	citeCmd.Flags().BoolVar(&citeFlags.copy, "copy", false, "Copy the citation to the system clipboard")
	rootCmd.AddCommand(citeCmd)
}

var citeCmd = &cobra.Command{
	Use:   "cite <key>",
	Short: "Render a citation for a stored reference",
	Long: `Render a citation for a stored reference using a style template.

Example:
  refstyle cite Knuth1984 --style APA --format html+css`,
	Args: cobra.ExactArgs(1),
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepo()
	repoCfg := mustLoadRepoConfig(repoRoot)

	db := mustOpenDB(repoRoot)
	defer db.Close()

	rec := mustGetRecord(db, args[0])
	engine := mustEngine(repoRoot)

	styleName := config.EffectiveStyle(citeFlags.style, repoCfg)
	formatName := config.EffectiveFormat(citeFlags.format, repoCfg)

	kind := style.Kind(citeFlags.kind)
	switch kind {
	case style.KindReference, style.KindFootnote, style.KindInText:
	default:
		exitWithError(ExitError, "invalid kind: %s (valid: reference, footnote, in-text)", citeFlags.kind)
	}

	appendix := citation.AppendixNone
	if citeFlags.link {
		appendix = citation.AppendixLink
	} else if citeFlags.marker {
		appendix = citation.AppendixMarker
	}

	out, err := engine.Cite(rec, citation.Request{
		Style:    styleName,
		Format:   formatName,
		BibType:  citeFlags.bibType,
		Kind:     kind,
		Appendix: appendix,
		KeyOnly:  citeFlags.keyOnly,
	})
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if out == "" && !citeFlags.keyOnly {
		exitWithError(ExitConfigError, "no template for style %q (kind %s)", styleName, kind)
	}

	copied := false
	if citeFlags.copy {
		if err := clipboard.CopyAs(out, clipboard.FormatFor(formatName)); err != nil {
			exitWithError(ExitError, "copying to clipboard: %v", err)
		}
		copied = true
	}

	if humanOutput {
		fmt.Println(out)
	} else {
		outputJSON(CiteResponse{
			Key:      engine.CitationKey(rec),
			Style:    styleName,
			Format:   formatName,
			Kind:     string(kind),
			Citation: out,
			Copied:   copied,
		})
	}

	return nil
}
