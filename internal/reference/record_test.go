package reference

import "testing"

func TestSetTitleDerivesShortTitle(t *testing.T) {
	var rec Record
	rec.SetTitle("The Art of Computer Programming")

	if rec.ShortTitle != "Art Computer Programming" {
		t.Errorf("ShortTitle = %q", rec.ShortTitle)
	}
	if rec.ShortTitleManual {
		t.Error("derived short title must not be marked manual")
	}

	rec.SetTitle("Structure and Interpretation of Computer Programs")
	if rec.ShortTitle == "Art Computer Programming" {
		t.Error("short title should re-derive on title change")
	}
}

func TestManualShortTitleSurvivesTitleEdit(t *testing.T) {
	var rec Record
	rec.SetTitle("The Art of Computer Programming")
	rec.SetShortTitle("TAOCP")

	rec.SetTitle("The Art of Computer Programming, Volume 2")

	if rec.ShortTitle != "TAOCP" {
		t.Errorf("manual short title lost: %q", rec.ShortTitle)
	}
	if !rec.ShortTitleManual {
		t.Error("manual flag lost")
	}
}

func TestCitationKey(t *testing.T) {
	var rec Record
	if err := rec.SetAuthors("Knuth, Donald E. and Lamport, Leslie"); err != nil {
		t.Fatal(err)
	}
	rec.Year = "1984"

	if got := rec.CitationKey(nil); got != "Knuth1984" {
		t.Errorf("CitationKey = %q, want Knuth1984", got)
	}

	special := map[string]struct{}{"Knuth": {}}
	if got := rec.CitationKey(special); got != "KnuthDonald E.1984" {
		t.Errorf("CitationKey(special) = %q", got)
	}

	rec.SetKey("taocp")
	if got := rec.CitationKey(special); got != "taocp" {
		t.Errorf("explicit key must win, got %q", got)
	}
}

func TestCitationKeyWithoutAuthors(t *testing.T) {
	rec := Record{Year: "1984"}
	if got := rec.CitationKey(nil); got != "" {
		t.Errorf("CitationKey = %q, want empty", got)
	}
}

func TestLinkURL(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"url wins", Record{URL: "https://example.org/p", DOI: "10.1/x"}, "https://example.org/p"},
		{"bare doi", Record{DOI: "10.1093/comjnl/27.2.97"}, "https://doi.org/10.1093/comjnl/27.2.97"},
		{"doi with resolver prefix", Record{DOI: "https://doi.org/10.1/x"}, "https://doi.org/10.1/x"},
		{"doi with leading slash", Record{DOI: "/10.1/x"}, "https://doi.org/10.1/x"},
		{"nothing", Record{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.LinkURL(); got != tt.want {
				t.Errorf("LinkURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetAuthorsRejectsMalformed(t *testing.T) {
	var rec Record
	if err := rec.SetAuthors("a, b, c, d"); err == nil {
		t.Fatal("expected error")
	}
	if rec.Authors != nil || rec.AuthorField != "" {
		t.Error("failed SetAuthors must not install anything")
	}
}
