// Package citation orchestrates citation rendering: it selects a style
// template, drives the template engine against a reference record with a
// chosen output formatter, and post-processes the result.
package citation

import (
	"fmt"
	"strings"

	"github.com/mhoffert/refstyle/internal/author"
	"github.com/mhoffert/refstyle/internal/markup"
	"github.com/mhoffert/refstyle/internal/reference"
	"github.com/mhoffert/refstyle/internal/style"
	"github.com/mhoffert/refstyle/internal/template"
)

// Appendix selects what, if anything, is appended after the rendered
// citation text.
type Appendix int

const (
	// AppendixNone appends nothing.
	AppendixNone Appendix = iota
	// AppendixLink appends the spelled-out link (or \cite for LaTeX).
	AppendixLink
	// AppendixMarker appends the compact link marker.
	AppendixMarker
)

// Request names what to render.
type Request struct {
	Style    string   // style name, e.g. "APA"
	Format   string   // formatter name, e.g. "html+css"
	BibType  string   // BibTeX entry type; "" uses the record's Type
	Kind     style.Kind
	Appendix Appendix
	// KeyOnly short-circuits to a bare \cite{key}: the deliberate fast
	// path for LaTeX citation-key output, bypassing templates entirely.
	KeyOnly bool
}

// Engine renders citations against an immutable style configuration
// snapshot. It holds no per-render state.
type Engine struct {
	styles   *style.Config
	surnames map[string]struct{}
}

// NewEngine builds an engine over a style configuration snapshot.
func NewEngine(cfg *style.Config) *Engine {
	return &Engine{styles: cfg, surnames: cfg.SurnameSet()}
}

// Styles returns the engine's configuration snapshot.
func (e *Engine) Styles() *style.Config { return e.styles }

// CitationKey returns the record's citation key, deriving it from the
// first author and year when not explicitly set.
func (e *Engine) CitationKey(rec *reference.Record) string {
	return rec.CitationKey(e.surnames)
}

// SelectTemplate looks up the template for a request, falling back to the
// style's default bib-type. Unknown styles select the empty template.
func (e *Engine) SelectTemplate(styleName, bibType string, kind style.Kind) string {
	return e.styles.Template(styleName, bibType, kind)
}

// Cite renders one citation. An empty template (unknown style, or a
// style without the requested kind) renders "", which callers treat as
// "nothing to render"; an unknown formatter is an error.
func (e *Engine) Cite(rec *reference.Record, req Request) (string, error) {
	key := e.CitationKey(rec)

	if req.KeyOnly {
		return `\cite{` + key + `}`, nil
	}

	f, err := markup.Get(req.Format)
	if err != nil {
		return "", err
	}

	bibType := req.BibType
	if bibType == "" {
		bibType = rec.Type
	}
	kind := req.Kind
	if kind == "" {
		kind = style.KindReference
	}

	tmpl := e.SelectTemplate(req.Style, bibType, kind)
	if tmpl == "" {
		return "", nil
	}

	res := &recordResolver{rec: rec, key: key}
	out, err := template.RenderBody(tmpl, res, f)
	if err != nil {
		return "", fmt.Errorf("rendering %s/%s: %w", req.Style, kind, err)
	}

	// The link is part of the entry: append it before the final pass so
	// wrapping encodings enclose it.
	switch req.Appendix {
	case AppendixLink:
		out = f.AppendLink(out, linkSource{rec, key}, true)
	case AppendixMarker:
		out = f.AppendLink(out, linkSource{rec, key}, false)
	}
	return f.FormatFinalEntry(out, key), nil
}

// linkSource presents a record plus its derived citation key as a
// markup.LinkSource, so link appending sees the derived key even when the
// record carries none explicitly.
type linkSource struct {
	rec *reference.Record
	key string
}

func (s linkSource) CiteKey() string { return s.key }
func (s linkSource) LinkURL() string { return s.rec.LinkURL() }

// recordResolver resolves template field paths against one record.
//
// Dotted paths dispatch through a closed capability table instead of
// reflection, so a template referencing an unknown method fails at render
// with a clear error rather than silently producing an empty clause.
type recordResolver struct {
	rec *reference.Record
	key string
}

func (r *recordResolver) Resolve(path string, f markup.Formatter) (string, error) {
	if obj, method, ok := strings.Cut(path, "."); ok {
		return r.resolveDotted(obj, method, f)
	}
	return f.FormatKey(path, r.field(path)), nil
}

func (r *recordResolver) resolveDotted(obj, method string, f markup.Formatter) (string, error) {
	if obj != "authors" {
		return "", fmt.Errorf("unknown template object %q", obj)
	}
	if r.rec.Authors == nil {
		return "", nil
	}
	s, ok := author.StyleByName(method)
	if !ok {
		return "", fmt.Errorf("unknown authors method %q", method)
	}
	return r.rec.Authors.FormatStyle(s, f)
}

// field resolves a plain field name. Unknown fields resolve empty, which
// is how optional citation clauses drop out.
func (r *recordResolver) field(name string) string {
	switch name {
	case "title":
		return r.rec.Title
	case "short_title":
		return r.rec.ShortTitle
	case "year":
		return r.rec.Year
	case "journal":
		return r.rec.Journal
	case "venue":
		return r.rec.Venue
	case "doi":
		return r.rec.DOI
	case "url":
		return r.rec.URL
	case "key":
		return r.key
	case "type":
		return r.rec.Type
	case "abstract":
		return r.rec.Abstract
	case "notes":
		return r.rec.Notes
	case "authors":
		if r.rec.Authors == nil {
			return ""
		}
		return r.rec.Authors.Join(", ")
	}
	return ""
}
