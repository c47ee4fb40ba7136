// Package export serializes reference records to BibTeX and parses
// single BibTeX entries back into records.
package export

import (
	"fmt"
	"strings"

	"github.com/mhoffert/refstyle/internal/reference"
)

// ToBibTeX serializes a record as one BibTeX entry. key is the citation
// key to write; pass the record's explicit key or a freshly derived one.
func ToBibTeX(rec *reference.Record, key string) string {
	entryType := rec.Type
	if entryType == "" {
		entryType = "article"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, key))

	if rec.AuthorField != "" {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", rec.AuthorField))
	}
	b.WriteString(fmt.Sprintf("  title = {%s},\n", rec.Title))

	if rec.Journal != "" {
		fieldName := "journal"
		if entryType == "inproceedings" {
			fieldName = "booktitle"
		}
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", fieldName, rec.Journal))
	}
	if rec.Year != "" {
		b.WriteString(fmt.Sprintf("  year = {%s},\n", rec.Year))
	}
	if rec.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", rec.DOI))
	}
	if rec.URL != "" {
		b.WriteString(fmt.Sprintf("  url = {%s},\n", rec.URL))
	}
	if rec.Abstract != "" {
		b.WriteString(fmt.Sprintf("  abstract = {%s},\n", rec.Abstract))
	}
	if rec.Notes != "" {
		b.WriteString(fmt.Sprintf("  note = {%s},\n", rec.Notes))
	}

	b.WriteString("}\n")
	return b.String()
}

// ToBibTeXList serializes multiple records, separated by blank lines.
// keys parallels recs.
func ToBibTeXList(recs []*reference.Record, keys []string) string {
	entries := make([]string, 0, len(recs))
	for i, rec := range recs {
		entries = append(entries, ToBibTeX(rec, keys[i]))
	}
	return strings.Join(entries, "\n")
}
