package markup

import (
	"regexp"
	"strings"

	"github.com/mhoffert/refstyle/internal/author"
)

// LaTeX emits entries for inclusion in LaTeX documents. Links become
// \cite markers against the citation key rather than raw URLs, and the
// final pass escapes the LaTeX special characters.
type LaTeX struct{ base }

func (LaTeX) Name() string { return "latex" }

// latexEscaper escapes the LaTeX specials that occur in bibliographic
// field data.
var latexEscaper = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"^", `\^{}`,
)

// EscapeLaTeX escapes &, %, $, #, _ and ^ for LaTeX output.
func EscapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}

func (f LaTeX) FormatAuthor(n *author.Name, parts ...string) string {
	return formatAuthor(f, n, parts...)
}

func (f LaTeX) WrapAuthor(n *author.Name, rendered string) string {
	return `\textbf{` + rendered + `}`
}

func (f LaTeX) AppendLink(entry string, src LinkSource, full bool) string {
	key := src.CiteKey()
	if key == "" {
		return entry
	}
	return entry + ` \cite{` + key + `}`
}

// citeRe matches \cite markers, whose keys are identifiers and must not
// be escaped (doi.org hands out keys like "Knuth_1984").
var citeRe = regexp.MustCompile(`\\cite\{[^{}]*\}`)

func (f LaTeX) FormatFinalEntry(entry, id string) string {
	entry = convertTags(entry, "latex")

	var b strings.Builder
	last := 0
	for _, loc := range citeRe.FindAllStringIndex(entry, -1) {
		b.WriteString(EscapeLaTeX(entry[last:loc[0]]))
		b.WriteString(entry[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(EscapeLaTeX(entry[last:]))
	return b.String()
}
