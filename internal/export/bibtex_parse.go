package export

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/mhoffert/refstyle/internal/reference"
)

// entryHeaderRe matches "@type{key," at the start of an entry.
var entryHeaderRe = regexp.MustCompile(`@(\w+)\s*\{\s*([^,{}\s]*)\s*,`)

// ParseEntry parses a single BibTeX entry into a record. The parser is a
// flat key-value reader: field values are taken verbatim (braces
// balanced, quotes honored), with no macro or concatenation handling.
func ParseEntry(src string) (*reference.Record, error) {
	loc := entryHeaderRe.FindStringSubmatchIndex(src)
	if loc == nil {
		return nil, fmt.Errorf("no BibTeX entry found")
	}
	entryType := strings.ToLower(src[loc[2]:loc[3]])
	key := src[loc[4]:loc[5]]

	fields, err := parseFields(src[loc[1]:])
	if err != nil {
		return nil, err
	}

	rec := &reference.Record{Key: key, Type: entryType}
	if v, ok := fields["author"]; ok {
		if err := rec.SetAuthors(v); err != nil {
			return nil, fmt.Errorf("entry %s: %w", key, err)
		}
	}
	if v, ok := fields["title"]; ok {
		rec.SetTitle(strings.Trim(v, "{}"))
	}
	rec.Year = fields["year"]
	if v, ok := fields["journal"]; ok {
		rec.Journal = v
	} else {
		rec.Journal = fields["booktitle"]
	}
	rec.DOI = strings.TrimSpace(fields["doi"])
	rec.URL = strings.TrimSpace(fields["url"])
	rec.Abstract = fields["abstract"]
	if v, ok := fields["note"]; ok {
		rec.Notes = v
	}
	return rec, nil
}

// parseFields reads "name = value" pairs up to the entry's closing brace.
func parseFields(src string) (map[string]string, error) {
	fields := make(map[string]string)
	runes := []rune(src)
	i := 0

	skipSpace := func() {
		for i < len(runes) && (unicode.IsSpace(runes[i]) || runes[i] == ',') {
			i++
		}
	}

	for {
		skipSpace()
		if i >= len(runes) || runes[i] == '}' {
			return fields, nil
		}

		start := i
		for i < len(runes) && runes[i] != '=' && !unicode.IsSpace(runes[i]) {
			i++
		}
		name := strings.ToLower(string(runes[start:i]))
		if name == "" {
			return nil, fmt.Errorf("malformed BibTeX field near offset %d", i)
		}

		skipSpace()
		if i >= len(runes) || runes[i] != '=' {
			return nil, fmt.Errorf("expected '=' after field %q", name)
		}
		i++
		skipSpace()
		if i >= len(runes) {
			return nil, fmt.Errorf("missing value for field %q", name)
		}

		value, err := parseValue(runes, &i, name)
		if err != nil {
			return nil, err
		}
		fields[name] = strings.TrimSpace(value)
	}
}

// parseValue reads one field value: a balanced {...} group, a quoted
// string, or a bare token.
func parseValue(runes []rune, i *int, name string) (string, error) {
	switch runes[*i] {
	case '{':
		depth := 0
		start := *i + 1
		for *i < len(runes) {
			switch runes[*i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					v := string(runes[start:*i])
					*i++
					return v, nil
				}
			}
			*i++
		}
		return "", fmt.Errorf("unbalanced braces in field %q", name)
	case '"':
		start := *i + 1
		for j := start; j < len(runes); j++ {
			if runes[j] == '"' {
				v := string(runes[start:j])
				*i = j + 1
				return v, nil
			}
		}
		return "", fmt.Errorf("unterminated string in field %q", name)
	default:
		start := *i
		for *i < len(runes) && runes[*i] != ',' && runes[*i] != '}' && runes[*i] != '\n' {
			*i++
		}
		return string(runes[start:*i]), nil
	}
}
