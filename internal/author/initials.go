package author

import (
	"strings"
	"unicode"
)

// initialsSeparators are the characters that delimit name tokens when
// condensing a name to initials.
const initialsSeparators = " -'/.:_()[]{}&@!"

// Initials condenses a name string to its initials.
//
// The string is tokenized on spaces, hyphens and common name punctuation.
// Each token is further split into Titlecase words and all-caps runs, so
// "Jean-Paul" becomes "JP" and "McDonald" keeps its "Mc" prefix whole
// ("McD"). delim is inserted after each token's contribution; pass "" for
// a compact form.
func Initials(name, delim string) string {
	var b strings.Builder
	for _, token := range splitAny(name, initialsSeparators) {
		if token == "" {
			continue
		}
		pieces := splitCaps(token)
		if len(pieces) > 1 && isTitleWord(pieces[0]) {
			b.WriteString(pieces[0])
			pieces = pieces[1:]
		}
		for _, p := range pieces {
			b.WriteString(firstRune(p))
		}
		b.WriteString(delim)
	}
	return strings.TrimSpace(b.String())
}

// InitializeFirstname abbreviates the given name(s) to initials, keeping
// hyphenated compounds hyphenated: "Jean-Paul" -> "J.-P." with dot ".",
// or "JP" with an empty dot.
func (n *Name) InitializeFirstname(dot string) string {
	var all []string
	for _, word := range strings.Fields(n.Firstname) {
		var initials []string
		for _, sub := range strings.Split(word, "-") {
			if sub == "" {
				continue
			}
			initials = append(initials, strings.TrimSpace(firstRune(sub)+dot))
		}
		sep := ""
		if dot != "" {
			sep = "-"
		}
		all = append(all, strings.TrimSpace(strings.Join(initials, sep)))
	}
	if dot != "" {
		return strings.TrimSpace(strings.Join(all, " "))
	}
	return strings.TrimSpace(strings.Join(all, ""))
}

// FirstnameInitials returns the compact initials of the given name(s).
func (n *Name) FirstnameInitials() string { return Initials(n.Firstname, "") }

// FirstnameAbbr returns the dotted abbreviation of the given name(s).
func (n *Name) FirstnameAbbr() string { return Initials(n.Firstname, ". ") }

// firstRune returns the first rune of s as a string.
func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// splitAny splits s on any rune contained in seps.
func splitAny(s, seps string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
}

// splitCaps splits a token into capitalized-word and all-caps-run pieces:
// "McDonald" -> ["Mc", "Donald"], "ABCd" -> ["AB", "Cd"], "ABC" -> ["ABC"].
// Non-letter runes are dropped.
func splitCaps(token string) []string {
	runes := []rune(token)
	var pieces []string
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsLower(r):
			j := i
			for j < len(runes) && unicode.IsLower(runes[j]) {
				j++
			}
			pieces = append(pieces, string(runes[i:j]))
			i = j
		case unicode.IsUpper(r):
			// An uppercase immediately followed by lowercase starts a
			// Titlecase piece; otherwise collect a run of capitals, leaving
			// the last capital to the following lowercase piece if one starts.
			if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				j := i + 1
				for j < len(runes) && unicode.IsLower(runes[j]) {
					j++
				}
				pieces = append(pieces, string(runes[i:j]))
				i = j
				continue
			}
			j := i
			for j < len(runes) && unicode.IsUpper(runes[j]) {
				j++
			}
			// Back off one capital when the run is broken by lowercase.
			if j < len(runes) && unicode.IsLower(runes[j]) && j-i > 1 {
				j--
			}
			pieces = append(pieces, string(runes[i:j]))
			i = j
		default:
			i++
		}
	}
	return pieces
}

// isTitleWord reports whether a word is Titlecase: an uppercase first
// letter followed only by lowercase letters.
func isTitleWord(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
