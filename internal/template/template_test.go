package template

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mhoffert/refstyle/internal/markup"
)

// mapResolver resolves plain field names from a map; dotted paths error.
type mapResolver map[string]string

func (m mapResolver) Resolve(path string, f markup.Formatter) (string, error) {
	if strings.Contains(path, ".") {
		return "", fmt.Errorf("unknown template object %q", path)
	}
	return f.FormatKey(path, m[path]), nil
}

func plain(t *testing.T) markup.Formatter {
	t.Helper()
	f, err := markup.Get("plain")
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestRenderVariables(t *testing.T) {
	res := mapResolver{"title": "Literate Programming", "year": "1984"}

	got, err := Render("##title## (##year##)", res, plain(t), "K1")
	if err != nil {
		t.Fatal(err)
	}
	if want := "Literate Programming (1984)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderConditionals(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		res  mapResolver
		want string
	}{
		{
			name: "present field keeps block with prefix and suffix",
			tmpl: `{{##title##. }}{{(##year##). }}end`,
			res:  mapResolver{"title": "T", "year": "1984"},
			want: "T. (1984). end",
		},
		{
			name: "empty field drops whole block",
			tmpl: `{{##title##. }}{{(##year##). }}end`,
			res:  mapResolver{"title": "T"},
			want: "T. end",
		},
		{
			name: "adjacent markers all gate",
			tmpl: `{{##title####year##}}`,
			res:  mapResolver{"title": "T"},
			want: "",
		},
		{
			name: "marker after literal text substitutes but does not gate",
			tmpl: `{{##title## (##year##)}}`,
			res:  mapResolver{"title": "T"},
			want: "T ()",
		},
		{
			name: "nested inner block drops independently",
			tmpl: `{{##title##{{, ##journal##}}}}`,
			res:  mapResolver{"title": "T"},
			want: "T",
		},
		{
			name: "nested inner block renders when satisfied",
			tmpl: `{{##title##{{, ##journal##}}}}`,
			res:  mapResolver{"title": "T", "journal": "J"},
			want: "T, J",
		},
		{
			name: "outer drops when only content was a dropped inner block",
			tmpl: `{{pre {{##journal##}} post}}x`,
			res:  mapResolver{},
			want: "x",
		},
		{
			name: "literal text outside blocks is kept",
			tmpl: `Plain text`,
			res:  mapResolver{},
			want: "Plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.res, plain(t), "")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestRenderFinalSymbol(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		res  mapResolver
		want string
	}{
		{
			name: "symbol replaces trailing punctuation",
			tmpl: `{{##title##. }}{{{.}}}`,
			res:  mapResolver{"title": "T"},
			want: "T.",
		},
		{
			name: "symbol moves inside trailing bracket",
			tmpl: `{{##title## }}{{(##year##) }}{{{.}}}`,
			res:  mapResolver{"title": "T", "year": "1984"},
			want: "T (1984.)",
		},
		{
			name: "trailing junk stripped before placement",
			tmpl: `{{##title##, }}{{##journal##, }}{{{.}}}`,
			res:  mapResolver{"title": "T"},
			want: "T.",
		},
		{
			name: "no symbol still strips trailing separators",
			tmpl: `{{##title##, }}`,
			res:  mapResolver{"title": "T"},
			want: "T",
		},
		{
			name: "trailing accented letter survives",
			tmpl: `##journal##`,
			res:  mapResolver{"journal": "Annales de l'Institut Henri Poincaré"},
			want: "Annales de l'Institut Henri Poincaré",
		},
		{
			name: "junk after accented letter still stripped",
			tmpl: `{{##journal##, }}{{{.}}}`,
			res:  mapResolver{"journal": "Annales de l'Institut Henri Poincaré"},
			want: "Annales de l'Institut Henri Poincaré.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.res, plain(t), "")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestRenderResolverError(t *testing.T) {
	_, err := Render("##authors.format_fancy_style##", mapResolver{}, plain(t), "")
	if err == nil {
		t.Fatal("expected error for unknown dotted path")
	}
}

func TestRenderEmptyGateNotFooledByEncoding(t *testing.T) {
	// html+css wraps substituted values in spans; an empty field must
	// still drop its block
	f, err := markup.Get("html+css")
	if err != nil {
		t.Fatal(err)
	}
	got, err := Render(`{{##journal##. }}{{##title##}}`, mapResolver{"title": "T"}, f, "K1")
	if err != nil {
		t.Fatal(err)
	}
	want := `<div id="K1"><span class="title">T</span></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
