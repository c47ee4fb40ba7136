package author

import "regexp"

var fourDigitsRe = regexp.MustCompile(`\d{4}`)

// CitationKeyFragment builds the author part of a citation key.
//
// The fragment is the last name alone, or lastname+firstname when the last
// name appears in the special-surnames set (disambiguation for very common
// surnames). addon (typically a year) is appended; if it contains four
// consecutive digits, only the substring from that point on is kept.
func (n *Name) CitationKeyFragment(addon string, special map[string]struct{}) string {
	if loc := fourDigitsRe.FindStringIndex(addon); loc != nil {
		addon = addon[loc[0]:]
	}
	if _, ok := special[n.Lastname]; ok {
		return n.Lastname + n.Firstname + addon
	}
	return n.Lastname + addon
}
