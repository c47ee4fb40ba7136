package author

import (
	"fmt"
	"sort"
	"strings"
)

// Delimiter joins the members of a BibTeX author field.
const Delimiter = " and "

// List is an ordered collection of parsed names. Insertion order is
// citation order: the first and last authors carry special roles.
type List struct {
	original string
	authors  []*Name
}

// ParseList parses a BibTeX author field: names joined by " and ".
func ParseList(s string) (*List, error) {
	s = strings.TrimSpace(s)
	l := &List{original: s}
	if s == "" {
		return l, nil
	}
	for _, raw := range strings.Split(s, Delimiter) {
		n, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("author %q: %w", raw, err)
		}
		l.authors = append(l.authors, n)
	}
	return l, nil
}

// NewList builds a list from individual raw name strings.
func NewList(names []string) (*List, error) {
	return ParseList(strings.Join(names, Delimiter))
}

// Original returns the raw author field the list was parsed from.
func (l *List) Original() string { return l.original }

// Len returns the number of authors.
func (l *List) Len() int { return len(l.authors) }

// At returns the i-th author.
func (l *List) At(i int) *Name { return l.authors[i] }

// Authors returns the parsed names in citation order.
func (l *List) Authors() []*Name { return l.authors }

// First returns the first author, or nil for an empty list.
func (l *List) First() *Name {
	if len(l.authors) == 0 {
		return nil
	}
	return l.authors[0]
}

// Last returns the last author. It is defined only for lists of two or
// more: a single author is never reported as both first and last.
func (l *List) Last() *Name {
	if len(l.authors) < 2 {
		return nil
	}
	return l.authors[len(l.authors)-1]
}

// SortedByLastname returns a new slice sorted case-insensitively by
// sorting key. The receiver is not modified.
func (l *List) SortedByLastname() []*Name {
	sorted := make([]*Name, len(l.authors))
	copy(sorted, l.authors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].SortingKey) < strings.ToLower(sorted[j].SortingKey)
	})
	return sorted
}

// Strings returns the full display names in citation order.
func (l *List) Strings() []string {
	out := make([]string, len(l.authors))
	for i, a := range l.authors {
		out[i] = a.Fullname
	}
	return out
}

// Join joins the full display names with delim.
func (l *List) Join(delim string) string {
	return strings.Join(l.Strings(), delim)
}
