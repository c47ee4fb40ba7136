package markup

import (
	"fmt"

	"github.com/mhoffert/refstyle/internal/author"
)

// Markdown emits entries with Markdown emphasis and link syntax.
type Markdown struct{ base }

func (Markdown) Name() string { return "markdown" }

func (f Markdown) FormatAuthor(n *author.Name, parts ...string) string {
	return formatAuthor(f, n, parts...)
}

func (f Markdown) WrapAuthor(n *author.Name, rendered string) string {
	return "**" + rendered + "**"
}

func (f Markdown) AppendLink(entry string, src LinkSource, full bool) string {
	url := src.LinkURL()
	if url == "" {
		return entry
	}
	if full {
		return fmt.Sprintf("%s [%s](%s)", entry, url, url)
	}
	return fmt.Sprintf("%s [>](<%s>)", entry, url)
}

func (f Markdown) FormatFinalEntry(entry, id string) string {
	return convertTags(entry, "markdown")
}
