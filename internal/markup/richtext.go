package markup

import (
	"strings"

	"github.com/mhoffert/refstyle/internal/author"
)

// RichText emits RTF suitable for pasting into word processors. Links
// become field/hyperlink control-word sequences and the finished entry is
// wrapped in a minimal RTF document.
type RichText struct{ base }

func (RichText) Name() string { return "richtext" }

const (
	rtfHeader = `{\rtf1\ansi `
	rtfFooter = `}`
)

// rtfEscaper escapes the RTF control characters in field data.
var rtfEscaper = strings.NewReplacer(
	`\`, `\\`,
	`{`, `\{`,
	`}`, `\}`,
)

func (f RichText) FormatAuthor(n *author.Name, parts ...string) string {
	return formatAuthor(f, n, parts...)
}

// FormatKey escapes RTF control characters in substituted field values.
func (f RichText) FormatKey(field, value string) string {
	return rtfEscaper.Replace(value)
}

func (f RichText) AppendLink(entry string, src LinkSource, full bool) string {
	url := src.LinkURL()
	if url == "" {
		return entry
	}
	if full {
		return entry + ` {\field{\*\fldinst{HYPERLINK "` + url + `"}}{\fldrslt ` + url + `}}`
	}
	return entry + ` [{\field{\*\fldinst{HYPERLINK "` + url + `"}}{\fldrslt >}}]`
}

func (f RichText) FormatFinalEntry(entry, id string) string {
	return rtfHeader + convertTags(entry, "richtext") + rtfFooter
}
