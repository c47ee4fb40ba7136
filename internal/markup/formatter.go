// Package markup provides the output-encoding formatters used when
// rendering citations: plain text, HTML, HTML+CSS, LaTeX, Markdown and
// rich text. Formatters are stateless; one value serves any number of
// render calls.
package markup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mhoffert/refstyle/internal/author"
)

// ErrUnknownFormatter is returned by Get for names outside the registry.
// An unknown output encoding is a programming or configuration error, so
// callers are expected to fail fast on it.
var ErrUnknownFormatter = errors.New("unknown formatter")

// LinkSource supplies the link target and citation key of a rendered
// reference. reference.Record implements it.
type LinkSource interface {
	// CiteKey returns the citation key (for \cite-style markers).
	CiteKey() string
	// LinkURL returns the clickable link, or "" when the reference has none.
	LinkURL() string
}

// Formatter encodes rendered citation text for one output format.
//
// All methods are pure functions of their arguments.
type Formatter interface {
	author.Wrapper

	// Name returns the canonical registry name.
	Name() string

	// FormatAuthor joins the requested attributes of one name and applies
	// encoding-specific wrapping.
	FormatAuthor(n *author.Name, parts ...string) string

	// FormatKey transforms a field value during variable substitution.
	FormatKey(field, value string) string

	// AppendLink appends a hyperlink or citation marker to a rendered
	// entry. full selects the spelled-out form over the compact marker.
	// Entries without a link (and, for LaTeX, without a key) pass through.
	AppendLink(entry string, src LinkSource, full bool) string

	// FormatFinalEntry applies the final encoding-specific escaping and
	// wrapping pass. id is the citation key of the rendered reference.
	FormatFinalEntry(entry, id string) string
}

// registry holds the closed set of formatters, keyed case-insensitively.
var registry = map[string]Formatter{}

func register(f Formatter, aliases ...string) {
	registry[strings.ToLower(f.Name())] = f
	for _, a := range aliases {
		registry[strings.ToLower(a)] = f
	}
}

func init() {
	register(Plain{})
	register(HTML{})
	register(HTMLCSS{}, "html_css", "htmlcss")
	register(LaTeX{})
	register(Markdown{})
	register(RichText{}, "rtf")
}

// Get returns the formatter registered under name (case-insensitive).
func Get(name string) (Formatter, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormatter, name)
	}
	return f, nil
}

// Names returns the canonical formatter names.
func Names() []string {
	return []string{"plain", "html", "html+css", "latex", "markdown", "richtext"}
}

// formatAuthor renders the requested name parts and wraps them with the
// formatter's own author wrapping.
func formatAuthor(f Formatter, n *author.Name, parts ...string) string {
	return f.WrapAuthor(n, n.Format(parts...))
}

// base supplies the pass-through behavior shared by the formatters.
type base struct{}

func (base) WrapAuthor(n *author.Name, rendered string) string  { return rendered }
func (base) WrapAuthors(l *author.List, rendered string) string { return rendered }
func (base) FormatKey(field, value string) string               { return value }
func (base) FormatFinalEntry(entry, id string) string           { return entry }

func (base) AppendLink(entry string, src LinkSource, full bool) string { return entry }
