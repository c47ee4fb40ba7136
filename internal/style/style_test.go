package style

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStyles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Template("APA", "article", KindReference) == "" {
		t.Error("built-in APA reference template missing")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeStyles(t, "{not json")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadInvalidVenuePattern(t *testing.T) {
	path := writeStyles(t, `{
		"journal_formatting_styles": {"X": {"default": {"reference": "##title##"}}},
		"venue_mapping": [{"regex": "([", "venue": "V"}]
	}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid venue pattern")
	}
}

func TestTemplateLookup(t *testing.T) {
	path := writeStyles(t, `{
		"journal_formatting_styles": {
			"X": {
				"default": {"reference": "REF", "footnote": "FOOT", "in-text": "IN"},
				"book": {"reference": "BOOK"}
			}
		}
	}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		style   string
		bibType string
		kind    Kind
		want    string
	}{
		{"X", "book", KindReference, "BOOK"},
		{"X", "article", KindReference, "REF"}, // falls back to default bib-type
		{"X", "article", KindFootnote, "FOOT"},
		{"X", "article", KindInText, "IN"},
		{"X", "book", KindFootnote, ""}, // book cell has no footnote
		{"Nope", "article", KindReference, ""},
	}

	for _, tt := range tests {
		got := cfg.Template(tt.style, tt.bibType, tt.kind)
		if got != tt.want {
			t.Errorf("Template(%q, %q, %q) = %q, want %q", tt.style, tt.bibType, tt.kind, got, tt.want)
		}
	}
}

func TestSurnameSet(t *testing.T) {
	cfg := &Config{SpecialSurnames: []string{"Smith", "Wang"}}
	set := cfg.SurnameSet()
	if _, ok := set["Smith"]; !ok {
		t.Error("Smith missing from set")
	}
	if _, ok := set["Knuth"]; ok {
		t.Error("Knuth should not be in set")
	}
}

func TestMapVenue(t *testing.T) {
	path := writeStyles(t, `{
		"journal_formatting_styles": {"X": {"default": {"reference": "##title##"}}},
		"venue_mapping": [
			{"regex": "(?i)proc.*neural information", "venue": "NeurIPS"},
			{"regex": "Physical Review", "venue": "Phys. Rev."}
		]
	}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.MapVenue("Proceedings of Neural Information Processing Systems"); got != "NeurIPS" {
		t.Errorf("MapVenue = %q, want NeurIPS", got)
	}
	if got := cfg.MapVenue("Physical Review Letters"); got != "Phys. Rev." {
		t.Errorf("MapVenue = %q, want Phys. Rev.", got)
	}
	if got := cfg.MapVenue("Journal of Irreproducible Results"); got != "" {
		t.Errorf("MapVenue = %q, want empty", got)
	}
}
