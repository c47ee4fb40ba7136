// Package template evaluates the citation template mini-language.
//
// A template is literal text interleaved with ##field## variable markers
// and {{ prefix ... suffix }} conditional blocks. A block renders only
// when every marker inside it resolves to a non-empty value; otherwise
// the whole block, prefix and suffix included, is dropped. Blocks nest.
// A trailing {{{sym}}} marker names the final punctuation symbol, placed
// after generic trailing-punctuation cleanup.
package template

import (
	"regexp"
	"strings"

	"github.com/mhoffert/refstyle/internal/markup"
)

// Resolver supplies field values to the engine. path is either a plain
// field name or a dotted object.method reference; the formatter is passed
// through so field values and author lists come back already encoded.
// Unknown plain fields resolve to "" (dropping their conditional block);
// unknown dotted paths are errors.
type Resolver interface {
	Resolve(path string, f markup.Formatter) (string, error)
}

var (
	conditionalRe = regexp.MustCompile(`(?s)\{\{(.*?)((?:##.*?##|\{\{.*?\}\})+)(.*?)\}\}`)
	markerRe      = regexp.MustCompile(`(?s)##(.*?)##`)
	finalMarkRe   = regexp.MustCompile(`(?s)\{\{\{(.*?)\}\}\}$`)
	trailingRe    = regexp.MustCompile(`[^\p{L}\p{N}_)\]>]+$`)
)

// Render evaluates tmpl against res, encoding every substitution through
// f, and finishes with f's final-entry pass. id is the citation key
// handed to the final pass.
func Render(tmpl string, res Resolver, f markup.Formatter, id string) (string, error) {
	body, err := RenderBody(tmpl, res, f)
	if err != nil {
		return "", err
	}
	return f.FormatFinalEntry(body, id), nil
}

// RenderBody evaluates tmpl without the final-entry pass. Callers that
// append a link marker do so on the body, then run FormatFinalEntry
// themselves, so encodings that wrap the whole entry (html+css's div,
// richtext's document braces) enclose the link too.
func RenderBody(tmpl string, res Resolver, f markup.Formatter) (string, error) {
	r := &renderer{res: res, f: f}
	text := r.conditionals(tmpl)
	if r.err != nil {
		return "", r.err
	}
	text = r.variables(text)
	if r.err != nil {
		return "", r.err
	}
	return postprocess(text), nil
}

type renderer struct {
	res Resolver
	f   markup.Formatter
	err error
}

// gate is the formatter used for truthiness checks: values are tested
// unencoded so that an encoding which wraps empty values (HTML+CSS spans)
// cannot make an absent field count as present.
var gate = markup.Plain{}

// conditionals resolves conditional blocks recursively, inner blocks
// first. A marker referenced only inside an inner block that itself
// dropped does not gate the outer block; an outer block left with no
// markers and no remaining content drops as well.
func (r *renderer) conditionals(text string) string {
	return conditionalRe.ReplaceAllStringFunc(text, func(m string) string {
		if r.err != nil {
			return ""
		}
		sub := conditionalRe.FindStringSubmatch(m)
		prefix, content, suffix := sub[1], sub[2], sub[3]

		content = r.conditionals(content)
		if r.err != nil {
			return ""
		}

		markers := markerRe.FindAllStringSubmatch(content, -1)
		if len(markers) == 0 {
			if strings.TrimSpace(content) == "" {
				return ""
			}
			return prefix + content + suffix
		}

		for _, mm := range markers {
			v, err := r.res.Resolve(strings.TrimSpace(mm[1]), gate)
			if err != nil {
				r.err = err
				return ""
			}
			if v == "" {
				return ""
			}
		}

		return prefix + r.variables(content) + suffix
	})
}

// variables substitutes every remaining ##field## marker.
func (r *renderer) variables(text string) string {
	return markerRe.ReplaceAllStringFunc(text, func(m string) string {
		if r.err != nil {
			return ""
		}
		name := strings.TrimSpace(markerRe.FindStringSubmatch(m)[1])
		v, err := r.res.Resolve(name, r.f)
		if err != nil {
			r.err = err
			return ""
		}
		return v
	})
}

// postprocess extracts a trailing {{{sym}}} marker, strips trailing
// characters that are neither alphanumeric nor one of ")]>", and places
// the symbol: just inside a trailing closing bracket, or at the very end.
func postprocess(text string) string {
	symbol := ""
	if m := finalMarkRe.FindStringSubmatch(text); m != nil {
		symbol = m[1]
		text = finalMarkRe.ReplaceAllString(text, "")
	}

	text = trailingRe.ReplaceAllString(text, "")

	if symbol != "" {
		if strings.HasSuffix(text, ")") || strings.HasSuffix(text, "]") || strings.HasSuffix(text, ">") {
			text = text[:len(text)-1] + symbol + text[len(text)-1:]
		} else {
			text += symbol
		}
	}
	return text
}
