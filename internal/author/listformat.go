package author

import "fmt"

// Wrapper applies an output encoding to rendered author names. The markup
// package provides implementations; a nil Wrapper leaves text unwrapped.
type Wrapper interface {
	// WrapAuthor wraps one author's already-rendered name.
	WrapAuthor(n *Name, rendered string) string
	// WrapAuthors wraps the joined rendering of a whole list.
	WrapAuthors(l *List, rendered string) string
}

// Options controls List.Format.
type Options struct {
	// Parts is the per-author attribute/literal sequence passed to
	// Name.Format. Ignored when Render is set.
	Parts []string
	// Render overrides Parts with an explicit per-author rendering.
	Render func(*Name) string
	// FirstAuthorParts, when non-nil, renders the first author from a
	// different part sequence than the rest.
	FirstAuthorParts []string
	// Delim separates all but the final pair. Defaults to ", ".
	Delim string
	// Conjunction joins a two-author list. Defaults to " and ".
	Conjunction string
	// ConjunctionMany precedes the final author of a three-or-more list.
	// Defaults to Conjunction.
	ConjunctionMany string
	// Cutoff truncates: when the author count reaches Cutoff, only the
	// first author's rendering plus CutoffPhrase is returned. 0 disables.
	Cutoff int
	// CutoffPhrase defaults to " et al.".
	CutoffPhrase string
	// Wrapper applies encoding-specific wrapping per author and per list.
	Wrapper Wrapper
}

// Format renders the list.
//
// Empty list: "". One author: its rendering alone. Two: joined by
// Conjunction only. Three or more: Delim between all but the last pair,
// ConjunctionMany before the last. Cutoff short-circuits to
// "<first> <CutoffPhrase>".
func (l *List) Format(opts Options) string {
	if opts.Delim == "" {
		opts.Delim = ", "
	}
	if opts.Conjunction == "" {
		opts.Conjunction = " and "
	}
	if opts.ConjunctionMany == "" {
		opts.ConjunctionMany = opts.Conjunction
	}
	if opts.CutoffPhrase == "" {
		opts.CutoffPhrase = " et al."
	}

	render := opts.Render
	if render == nil {
		parts := opts.Parts
		render = func(n *Name) string { return n.Format(parts...) }
	}

	wrap := func(n *Name, s string) string {
		if opts.Wrapper != nil {
			return opts.Wrapper.WrapAuthor(n, s)
		}
		return s
	}

	rendered := make([]string, 0, len(l.authors))
	for i, a := range l.authors {
		if i == 0 && opts.FirstAuthorParts != nil {
			rendered = append(rendered, wrap(a, a.Format(opts.FirstAuthorParts...)))
			continue
		}
		rendered = append(rendered, wrap(a, render(a)))
	}

	joined := joinRendered(rendered, opts)
	if opts.Wrapper != nil {
		return opts.Wrapper.WrapAuthors(l, joined)
	}
	return joined
}

func joinRendered(rendered []string, opts Options) string {
	if opts.Cutoff > 0 && len(rendered) >= opts.Cutoff {
		return rendered[0] + opts.CutoffPhrase
	}
	switch len(rendered) {
	case 0:
		return ""
	case 1:
		return rendered[0]
	case 2:
		return rendered[0] + opts.Conjunction + rendered[1]
	default:
		head := rendered[:len(rendered)-1]
		last := rendered[len(rendered)-1]
		var b []byte
		for i, r := range head {
			if i > 0 {
				b = append(b, opts.Delim...)
			}
			b = append(b, r...)
		}
		b = append(b, opts.ConjunctionMany...)
		b = append(b, last...)
		return string(b)
	}
}

// Style identifies a named author-list formatting convention. Styles are
// a closed set dispatched through FormatStyle; options for each are fixed
// here rather than read from free-form configuration.
type Style int

const (
	// StylePlain joins full display names with " and ".
	StylePlain Style = iota
	// StyleAlpha renders "von Lastname, Firstname" per author.
	StyleAlpha
	// StyleApalike renders "von Lastname, F." with "&" conjunctions.
	StyleApalike
	// StyleIeeetr renders "F. von Lastname" joined by commas and "and".
	StyleIeeetr
	// StyleInText renders bare last names with an "et al." cutoff at three.
	StyleInText
)

// styleNames maps the dotted-path method names used in citation templates
// to styles.
var styleNames = map[string]Style{
	"format_plain_style":   StylePlain,
	"format_alpha_style":   StyleAlpha,
	"format_apalike_style": StyleApalike,
	"format_ieeetr_style":  StyleIeeetr,
	"format_intext_style":  StyleInText,
}

// StyleByName resolves a template method name like "format_apalike_style".
func StyleByName(name string) (Style, bool) {
	s, ok := styleNames[name]
	return s, ok
}

// FormatStyle renders the list in a named style, applying w when non-nil.
func (l *List) FormatStyle(s Style, w Wrapper) (string, error) {
	switch s {
	case StylePlain:
		return l.Format(Options{Render: (*Name).FormatPlain, Wrapper: w}), nil
	case StyleAlpha:
		return l.Format(Options{Render: (*Name).FormatAlpha, Wrapper: w}), nil
	case StyleApalike:
		return l.Format(Options{
			Render:          (*Name).FormatApalike,
			Conjunction:     " & ",
			ConjunctionMany: ", & ",
			Wrapper:         w,
		}), nil
	case StyleIeeetr:
		return l.Format(Options{Render: (*Name).FormatIeeetr, Wrapper: w}), nil
	case StyleInText:
		return l.Format(Options{
			Render:      (*Name).LastnameDisplay,
			Conjunction: " & ",
			Cutoff:      3,
			Wrapper:     w,
		}), nil
	}
	return "", fmt.Errorf("unknown author list style %d", s)
}
