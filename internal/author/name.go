// Package author provides BibTeX-style author name parsing and list formatting.
package author

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrMalformedName is returned for name strings that cannot be decomposed,
// such as empty input or input with more than two commas.
var ErrMalformedName = errors.New("malformed author name")

// Name holds the decomposed parts of a single author name.
//
// Parsing follows the BibTeX conventions: "Last, First, Suffix",
// "Last, First", or "First Last". Leading lowercase words in a multi-word
// surname are nobiliary particles and end up in VonPart.
type Name struct {
	Original   string // Raw input string, trimmed
	Fullname   string // Display form, "First Last" order
	Firstname  string // Given name(s), may include middle names
	VonPart    string // Nobiliary particles ("van der", "de", ...)
	Lastname   string // Family name, never empty after a successful parse
	Suffix     string // Generational suffix ("Jr.", "III", ...)
	SortingKey string // Key used for alphabetical ordering
}

// Parse decomposes a raw name string into its parts.
//
// Supported forms:
//   - "Last, First, Suffix"
//   - "Last, First"
//   - "First Last" (no comma; final token is the last name)
//
// Input with more than two commas, or blank input, returns ErrMalformedName.
func Parse(raw string) (*Name, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedName)
	}

	n := &Name{Original: raw}
	parts := strings.Split(raw, ",")

	switch len(parts) {
	case 3: // Last, First, Suffix
		last := strings.TrimSpace(parts[0])
		first := strings.TrimSpace(parts[1])
		n.Suffix = strings.TrimSpace(parts[2])
		n.Fullname = strings.TrimSpace(first+" "+last) + ", " + n.Suffix
		n.splitVonLastname(last)
		n.splitFirstnameVon(first)
	case 2: // Last, First
		last := strings.TrimSpace(parts[0])
		first := strings.TrimSpace(parts[1])
		n.Fullname = strings.TrimSpace(first + " " + last)
		n.splitVonLastname(last)
		n.splitFirstnameVon(first)
	case 1: // First Last
		n.Fullname = raw
		tokens := strings.Fields(raw)
		n.Lastname = tokens[len(tokens)-1]
		n.splitFirstnameVon(strings.Join(tokens[:len(tokens)-1], " "))
	default:
		return nil, fmt.Errorf("%w: %d comma-separated segments in %q", ErrMalformedName, len(parts), raw)
	}

	if n.Lastname == "" {
		return nil, fmt.Errorf("%w: no last name in %q", ErrMalformedName, raw)
	}

	n.SortingKey = n.sortingKey()
	return n, nil
}

// splitVonLastname extracts nobiliary particles from the last-name segment.
// The final token is always part of the last name; leading lowercase tokens
// move into the von part.
func (n *Name) splitVonLastname(last string) {
	tokens := strings.Fields(last)
	if len(tokens) == 0 {
		return
	}

	lastname := tokens[len(tokens)-1]
	rest := tokens[:len(tokens)-1]

	var von []string
	for len(rest) > 0 && startsLower(rest[0]) {
		von = append(von, rest[0])
		rest = rest[1:]
	}

	n.Lastname = strings.TrimSpace(strings.Join(rest, " ") + " " + lastname)
	n.VonPart = strings.TrimSpace(n.VonPart + " " + strings.Join(von, " "))
}

// splitFirstnameVon extracts the given name(s) from the first-name segment.
// The first token is always part of the first name; subsequent capitalized
// tokens stay with it, and any trailing lowercase tokens are von particles,
// prepended ahead of whatever the last-name segment contributed.
func (n *Name) splitFirstnameVon(first string) {
	tokens := strings.Fields(first)
	if len(tokens) == 0 {
		return
	}

	firstname := []string{tokens[0]}
	rest := tokens[1:]
	for len(rest) > 0 && startsUpper(rest[0]) {
		firstname = append(firstname, rest[0])
		rest = rest[1:]
	}

	n.Firstname = strings.Join(firstname, " ")
	n.VonPart = strings.TrimSpace(strings.Join(rest, " ") + " " + n.VonPart)
}

// sortingKey orders lowercase-led hyphenated surnames (e.g. "al-Rashid")
// by the component after the first hyphen; everything else sorts by the
// last name as written.
func (n *Name) sortingKey() string {
	if startsLower(n.Lastname) {
		if i := strings.Index(n.Lastname, "-"); i >= 0 {
			return n.Lastname[i+1:]
		}
	}
	return n.Lastname
}

// VeryFirstName returns only the first word of the given name(s).
func (n *Name) VeryFirstName() string {
	fields := strings.Fields(n.Firstname)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Middlename returns everything in the given name(s) after the first word.
func (n *Name) Middlename() string {
	fields := strings.Fields(n.Firstname)
	if len(fields) < 2 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}

// LastnameDisplay returns the full last name including the von part.
func (n *Name) LastnameDisplay() string {
	return strings.TrimSpace(n.VonPart + " " + n.Lastname)
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
