package markup

import (
	"fmt"

	"github.com/mhoffert/refstyle/internal/author"
)

// HTML emits entries with inline HTML tags and anchor links.
type HTML struct{ base }

func (HTML) Name() string { return "html" }

func (f HTML) FormatAuthor(n *author.Name, parts ...string) string {
	return formatAuthor(f, n, parts...)
}

func (f HTML) AppendLink(entry string, src LinkSource, full bool) string {
	return appendHTMLLink(entry, src, full)
}

func (f HTML) FormatFinalEntry(entry, id string) string {
	return convertTags(entry, "html")
}

func appendHTMLLink(entry string, src LinkSource, full bool) string {
	url := src.LinkURL()
	if url == "" {
		return entry
	}
	if full {
		return fmt.Sprintf(`%s <a href="%s">%s</a>`, entry, url, url)
	}
	return fmt.Sprintf(`%s [<a href="%s">&gt;</a>]`, entry, url)
}

// HTMLCSS emits HTML with CSS hooks: every substituted field value is
// wrapped in a span classed by field name, each author in a span classed
// by a transliterated form of the name, the list in a span classed
// "authors", and the finished entry in a div carrying the citation key.
type HTMLCSS struct{ base }

func (HTMLCSS) Name() string { return "html+css" }

func (f HTMLCSS) FormatAuthor(n *author.Name, parts ...string) string {
	return formatAuthor(f, n, parts...)
}

func (f HTMLCSS) WrapAuthor(n *author.Name, rendered string) string {
	return fmt.Sprintf(`<span class="author %s">%s</span>`, n.CSSClass(), rendered)
}

func (f HTMLCSS) WrapAuthors(l *author.List, rendered string) string {
	return fmt.Sprintf(`<span class="authors">%s</span>`, rendered)
}

func (f HTMLCSS) FormatKey(field, value string) string {
	return fmt.Sprintf(`<span class="%s">%s</span>`, field, value)
}

func (f HTMLCSS) AppendLink(entry string, src LinkSource, full bool) string {
	return appendHTMLLink(entry, src, full)
}

func (f HTMLCSS) FormatFinalEntry(entry, id string) string {
	entry = convertTags(entry, "html")
	if id == "" {
		return entry
	}
	return fmt.Sprintf(`<div id="%s">%s</div>`, id, entry)
}
