// Package style holds the citation style configuration: the template
// table keyed by (style, bib-type, citation kind), the special-surnames
// set, and the journal-to-venue mapping. A loaded Config is an immutable
// snapshot; reloading produces a new one.
package style

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Kind selects which citation form a template renders.
type Kind string

const (
	KindReference Kind = "reference"
	KindFootnote  Kind = "footnote"
	KindInText    Kind = "in-text"
)

// DefaultBibType is the per-style fallback bib-type key.
const DefaultBibType = "default"

// Entry holds the templates of one (style, bib-type) cell.
type Entry struct {
	Reference string `json:"reference"`
	Footnote  string `json:"footnote,omitempty"`
	InText    string `json:"in-text,omitempty"`
}

// ForKind returns the template for a citation kind.
func (e Entry) ForKind(k Kind) string {
	switch k {
	case KindFootnote:
		return e.Footnote
	case KindInText:
		return e.InText
	default:
		return e.Reference
	}
}

// VenueMapping maps journals matching a regular expression to a venue.
type VenueMapping struct {
	Pattern string `json:"regex"`
	Venue   string `json:"venue"`

	re *regexp.Regexp
}

// Config is a style configuration snapshot.
type Config struct {
	// Styles maps style name -> bib-type -> templates. The "default"
	// bib-type is the per-style fallback.
	Styles map[string]map[string]Entry `json:"journal_formatting_styles"`
	// SpecialSurnames lists surnames common enough that citation keys
	// include the first name.
	SpecialSurnames []string `json:"special_surnames,omitempty"`
	// VenueMappings normalizes journal names to venues.
	VenueMappings []VenueMapping `json:"venue_mapping,omitempty"`
}

// Load reads a style configuration file. A missing file is not an error:
// the built-in defaults are returned, matching the policy that style
// configuration is user-editable data and partial configuration is
// expected. Invalid JSON or an invalid venue pattern is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading style config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing style config: %w", err)
	}
	if cfg.Styles == nil {
		cfg.Styles = Default().Styles
	}
	if err := cfg.compile(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// compile prepares the venue-mapping patterns. Patterns are validated at
// load time so template evaluation never sees a bad one.
func (c *Config) compile() error {
	for i := range c.VenueMappings {
		m := &c.VenueMappings[i]
		re, err := regexp.Compile(m.Pattern)
		if err != nil {
			return fmt.Errorf("venue mapping %q: %w", m.Pattern, err)
		}
		m.re = re
	}
	return nil
}

// Template looks up the template for (style, bibType, kind), falling back
// to the style's "default" bib-type. An unknown style returns "": callers
// treat an empty template as "nothing to render".
func (c *Config) Template(styleName, bibType string, kind Kind) string {
	styleData, ok := c.Styles[styleName]
	if !ok {
		return ""
	}
	entry, ok := styleData[bibType]
	if !ok {
		entry, ok = styleData[DefaultBibType]
		if !ok {
			return ""
		}
	}
	return entry.ForKind(kind)
}

// StyleNames returns the configured style names.
func (c *Config) StyleNames() []string {
	names := make([]string, 0, len(c.Styles))
	for name := range c.Styles {
		names = append(names, name)
	}
	return names
}

// SurnameSet returns the special surnames as a set.
func (c *Config) SurnameSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.SpecialSurnames))
	for _, s := range c.SpecialSurnames {
		set[s] = struct{}{}
	}
	return set
}

// MapVenue returns the mapped venue for a journal name, or "" when no
// mapping matches.
func (c *Config) MapVenue(journal string) string {
	for _, m := range c.VenueMappings {
		if m.re != nil && m.re.MatchString(journal) {
			return m.Venue
		}
	}
	return ""
}
