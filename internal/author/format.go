package author

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// FormatPlain returns the display form of the name.
func (n *Name) FormatPlain() string {
	return strings.TrimSpace(n.Fullname)
}

// FormatAlpha returns the name for the alpha BibTeX style:
// "von Lastname, Firstname Suffix".
func (n *Name) FormatAlpha() string {
	return joinParts(n.VonPart, n.Lastname+",", n.Firstname, n.Suffix)
}

// FormatApalike returns the name for the apalike BibTeX style:
// "von Lastname, F. Suffix".
func (n *Name) FormatApalike() string {
	return joinParts(n.VonPart, n.Lastname+",", n.InitializeFirstname("."), n.Suffix)
}

// FormatIeeetr returns the name for the ieeetr BibTeX style:
// "F. von Lastname Suffix".
func (n *Name) FormatIeeetr() string {
	return joinParts(n.InitializeFirstname("."), n.VonPart, n.Lastname, n.Suffix)
}

// Format assembles the name from a mix of attribute names and literal
// strings. Known attribute names resolve to the corresponding part (empty
// parts are skipped); anything else is kept verbatim. Runs of whitespace
// in the result collapse to a single space.
//
//	n.Format("lastname", ", ", "firstname_abbr")  // "Berg, J."
func (n *Name) Format(parts ...string) string {
	var out []string
	for _, p := range parts {
		if v, ok := n.attr(p); ok {
			if v != "" {
				out = append(out, v)
			}
			continue
		}
		out = append(out, p)
	}
	joined := strings.Join(out, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(joined, " "))
}

// attr resolves an attribute name used in Format part lists and style
// templates. The "_initials" and "_abbr" suffixed forms condense the base
// attribute via Initials.
func (n *Name) attr(key string) (string, bool) {
	if base, ok := strings.CutSuffix(key, "_initials"); ok {
		if v, ok := n.baseAttr(base); ok {
			return Initials(v, ""), true
		}
		return "", false
	}
	if base, ok := strings.CutSuffix(key, "_abbr"); ok {
		if v, ok := n.baseAttr(base); ok {
			return Initials(v, ". "), true
		}
		return "", false
	}
	return n.baseAttr(key)
}

func (n *Name) baseAttr(key string) (string, bool) {
	switch key {
	case "fullname":
		return n.Fullname, true
	case "firstname":
		return n.Firstname, true
	case "lastname":
		return n.Lastname, true
	case "von_part":
		return n.VonPart, true
	case "suffix":
		return n.Suffix, true
	case "sorting_key":
		return n.SortingKey, true
	case "lastname_display":
		return n.LastnameDisplay(), true
	case "veryfirstname":
		return n.VeryFirstName(), true
	case "middlename":
		return n.Middlename(), true
	}
	return "", false
}

// asciiFallback transliterates letters that NFD decomposition leaves
// untouched (no combining mark to strip).
var asciiFallback = map[rune]string{
	'ø': "o", 'Ø': "o",
	'ß': "ss",
	'æ': "ae", 'Æ': "ae",
	'œ': "oe", 'Œ': "oe",
	'ł': "l", 'Ł': "l",
	'đ': "d", 'Đ': "d",
	'ð': "d", 'Ð': "d",
	'þ': "th", 'Þ': "th",
}

// CSSClass derives a CSS class token from the name: transliterated to
// ASCII and reduced to [a-z0-9_].
func (n *Name) CSSClass() string {
	name := n.Firstname + n.VonPart + n.Lastname + n.Suffix
	decomposed := norm.NFD.String(name)
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) { // strip combining marks
			continue
		}
		if r > unicode.MaxASCII {
			if repl, ok := asciiFallback[r]; ok {
				b.WriteString(repl)
			}
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// joinParts joins non-empty parts with single spaces.
func joinParts(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" && p != "," {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
