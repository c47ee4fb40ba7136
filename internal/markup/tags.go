package markup

import "regexp"

// Inline emphasis travels between encodings as a small fixed set of
// italic/bold/underline pairs. Conversion recognizes the HTML and LaTeX
// spellings (the unambiguous ones; Markdown's underscores collide with
// underscores in DOIs and identifiers) and rewrites them into the target
// encoding.

type tagKind int

const (
	tagItalic tagKind = iota
	tagBold
	tagUnderline
)

var tagPatterns = []struct {
	kind tagKind
	re   *regexp.Regexp
}{
	{tagItalic, regexp.MustCompile(`<i>(.*?)</i>`)},
	{tagBold, regexp.MustCompile(`<b>(.*?)</b>`)},
	{tagUnderline, regexp.MustCompile(`<u>(.*?)</u>`)},
	{tagItalic, regexp.MustCompile(`\\textit\{([^{}]*)\}`)},
	{tagBold, regexp.MustCompile(`\\textbf\{([^{}]*)\}`)},
	{tagUnderline, regexp.MustCompile(`\\underline\{([^{}]*)\}`)},
}

// tagTargets maps each emphasis kind to its spelling per encoding, with
// "$1" standing for the wrapped content.
var tagTargets = map[string]map[tagKind]string{
	"plain": {
		tagItalic:    "$1",
		tagBold:      "$1",
		tagUnderline: "$1",
	},
	"html": {
		tagItalic:    "<i>$1</i>",
		tagBold:      "<b>$1</b>",
		tagUnderline: "<u>$1</u>",
	},
	"latex": {
		tagItalic:    `\textit{$1}`,
		tagBold:      `\textbf{$1}`,
		tagUnderline: `\underline{$1}`,
	},
	"markdown": {
		tagItalic:    "*$1*",
		tagBold:      "**$1**",
		tagUnderline: "_$1_",
	},
	"richtext": {
		tagItalic:    `{\i $1}`,
		tagBold:      `{\b $1}`,
		tagUnderline: `{\ul $1}`,
	},
}

// convertTags rewrites recognized emphasis pairs into the target encoding.
func convertTags(text, target string) string {
	targets, ok := tagTargets[target]
	if !ok {
		return text
	}
	for _, p := range tagPatterns {
		text = p.re.ReplaceAllString(text, targets[p.kind])
	}
	return text
}
