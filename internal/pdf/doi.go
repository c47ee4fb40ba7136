// Package pdf extracts reference metadata from PDF files and opens them
// in a reader.
package pdf

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// doiRe matches a DOI: "10." plus a 4-9 digit registrant, a slash, and
// the suffix up to whitespace or a delimiter.
var doiRe = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// scanPages is how many leading pages are searched for a DOI. Journals
// print it on the first page; preprints sometimes push it to page two.
const scanPages = 3

// Metadata is what a scan recovers from a PDF: enough to seed a record
// or drive a doi.org lookup.
type Metadata struct {
	DOI   string
	Title string
}

// Scan reads the leading pages of a PDF and extracts a DOI and a title
// guess. Absent metadata is not an error; callers check the fields.
func Scan(path string) (Metadata, error) {
	var meta Metadata

	f, r, err := pdf.Open(path)
	if err != nil {
		return meta, err
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > scanPages {
		pages = scanPages
	}

	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if meta.Title == "" && i == 1 {
			meta.Title = titleGuess(text)
		}
		if meta.DOI == "" {
			meta.DOI = FindDOI(text)
		}
		if meta.DOI != "" && meta.Title != "" {
			break
		}
	}

	return meta, nil
}

// FindDOI returns the first valid DOI in text, with trailing sentence
// punctuation trimmed.
func FindDOI(text string) string {
	for _, m := range doiRe.FindAllString(text, -1) {
		m = strings.TrimRight(m, ".,;:)")
		if validDOI(m) {
			return m
		}
	}
	return ""
}

// validDOI rejects matches too short or malformed to be a real DOI.
func validDOI(doi string) bool {
	if len(doi) < 10 || !strings.HasPrefix(doi, "10.") {
		return false
	}
	slash := strings.Index(doi, "/")
	return slash > 0 && slash < len(doi)-1
}

// titleGuess picks the first substantial line of the first page that
// doesn't look like a running header.
func titleGuess(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 20 && !headerLine(line) {
			return line
		}
	}
	return ""
}

// headerLine reports whether a line looks like journal front-matter
// rather than a title.
func headerLine(line string) bool {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "journal"):
		return true
	case strings.Contains(lower, "volume") && strings.Contains(lower, "issue"):
		return true
	case strings.Contains(lower, "copyright"):
		return true
	case strings.Contains(lower, "article") && strings.Contains(lower, "published"):
		return true
	}
	return false
}
