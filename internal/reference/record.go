// Package reference defines the bibliographic record the citation engine
// renders from.
package reference

import (
	"regexp"
	"strings"

	"github.com/mhoffert/refstyle/internal/author"
)

// Record is a flat bibliographic entry: scalar fields plus a parsed
// author list. The zero value is usable.
type Record struct {
	Key      string `json:"key"`  // Citation key; derived lazily when empty
	Type     string `json:"type"` // BibTeX entry type (article, book, ...)
	Title    string `json:"title"`
	Year     string `json:"year"`
	Journal  string `json:"journal"`
	Venue    string `json:"venue"`
	DOI      string `json:"doi"`
	URL      string `json:"url"`
	Abstract string `json:"abstract,omitempty"`
	Notes    string `json:"notes,omitempty"`

	// ShortTitle is derived from Title unless the user set it explicitly;
	// ShortTitleManual records which. A manually set short title survives
	// later title edits.
	ShortTitle       string `json:"short_title,omitempty"`
	ShortTitleManual bool   `json:"short_title_manual,omitempty"`

	Authors *author.List `json:"-"`

	// AuthorField is the raw BibTeX author string, kept for persistence.
	AuthorField string `json:"authors,omitempty"`
}

// SetAuthors parses and installs the author field.
func (r *Record) SetAuthors(field string) error {
	l, err := author.ParseList(field)
	if err != nil {
		return err
	}
	r.AuthorField = strings.TrimSpace(field)
	r.Authors = l
	return nil
}

// SetTitle updates the title and re-derives the short title, unless a
// manually set short title exists.
func (r *Record) SetTitle(title string) {
	if r.Title == title {
		return
	}
	r.Title = title
	if r.ShortTitleManual && r.ShortTitle != "" {
		return
	}
	r.ShortTitle = DeriveShortTitle(title, ShortTitleOptions{})
	r.ShortTitleManual = false
}

// SetShortTitle installs an explicit short title and marks it manual.
func (r *Record) SetShortTitle(short string) {
	r.ShortTitle = short
	r.ShortTitleManual = true
}

// CitationKey returns the explicit key, or derives one from the first
// author and year. special is the special-surnames set used for
// disambiguation; the derived key is not stored.
func (r *Record) CitationKey(special map[string]struct{}) string {
	if r.Key != "" {
		return r.Key
	}
	if r.Authors == nil || r.Authors.First() == nil {
		return ""
	}
	return r.Authors.First().CitationKeyFragment(r.Year, special)
}

// SetKey installs an explicit citation key.
func (r *Record) SetKey(key string) { r.Key = key }

// CiteKey returns the stored citation key. It implements
// markup.LinkSource; callers that need derivation use CitationKey.
func (r *Record) CiteKey() string { return r.Key }

// doiTailRe extracts the DOI path from values that already carry a
// doi.org prefix or a leading slash.
var doiTailRe = regexp.MustCompile(`(?:doi\.org/|^/)(.+)`)

// LinkURL returns the clickable link for the record: the URL when
// present, otherwise a https://doi.org link built from the DOI.
func (r *Record) LinkURL() string {
	if r.URL != "" {
		return r.URL
	}
	if r.DOI == "" {
		return ""
	}
	if m := doiTailRe.FindStringSubmatch(r.DOI); m != nil {
		return "https://doi.org/" + m[1]
	}
	return "https://doi.org/" + r.DOI
}
