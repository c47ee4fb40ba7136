package author

import "strings"

// Query represents a parsed author search query.
type Query struct {
	First string // First name (may be empty for last-name-only queries)
	Last  string // Last name (required)
}

// ParseQuery parses an author search string into a structured Query.
//
// Supported formats:
//   - "Yu"           → last="Yu" (single word = last name only)
//   - "Timothy Yu"   → first="Timothy", last="Yu" (space-separated = First Last)
//   - "Yu, Timothy"  → first="Timothy", last="Yu" (comma = Last, First)
//
// Names are trimmed but case is preserved (matching is case-insensitive).
func ParseQuery(input string) Query {
	input = strings.TrimSpace(input)
	if input == "" {
		return Query{}
	}

	if idx := strings.Index(input, ","); idx > 0 {
		last := strings.TrimSpace(input[:idx])
		first := strings.TrimSpace(input[idx+1:])
		return Query{First: first, Last: last}
	}

	parts := strings.Fields(input)
	if len(parts) == 1 {
		return Query{Last: parts[0]}
	}

	// Multiple words: last word is last name, rest is first name
	// e.g., "Timothy C Yu" → first="Timothy C", last="Yu"
	last := parts[len(parts)-1]
	first := strings.Join(parts[:len(parts)-1], " ")
	return Query{First: first, Last: last}
}

// Matches checks if the query matches a parsed name.
//
// Matching rules:
//   - Last name: case-insensitive exact match against the bare lastname
//     (von parts ignored, so "Beethoven" matches "van Beethoven")
//   - First name: case-insensitive prefix match (if query has first name)
//
// This enables "Tim Yu" to match "Timothy C Yu" while preventing
// "Yu" from matching "Yujia" (since "Yu" is not Yujia's last name).
func (q Query) Matches(n *Name) bool {
	if n == nil {
		return false
	}
	if !strings.EqualFold(q.Last, n.Lastname) {
		return false
	}

	if q.First == "" {
		return true
	}

	return strings.HasPrefix(
		strings.ToLower(n.Firstname),
		strings.ToLower(q.First),
	)
}

// MatchesAny checks if the query matches any author in the list.
func (q Query) MatchesAny(l *List) bool {
	if l == nil {
		return false
	}
	for _, n := range l.Authors() {
		if q.Matches(n) {
			return true
		}
	}
	return false
}
