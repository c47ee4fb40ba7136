package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain doi",
			text: "See https://doi.org/10.1093/comjnl/27.2.97 for details",
			want: "10.1093/comjnl/27.2.97",
		},
		{
			name: "trailing punctuation trimmed",
			text: "DOI: 10.1000/182.",
			want: "10.1000/182",
		},
		{
			name: "no doi",
			text: "Volume 12, Issue 3, pages 4-5",
			want: "",
		},
		{
			name: "too short rejected",
			text: "10.1/x",
			want: "",
		},
		{
			name: "first valid of several",
			text: "10.1000/first and 10.1000/second",
			want: "10.1000/first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindDOI(tt.text); got != tt.want {
				t.Errorf("FindDOI(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTitleGuess(t *testing.T) {
	text := "Journal of Computing, Volume 12 Issue 3\n" +
		"Literate Programming as a Discipline of Exposition\n" +
		"Donald E. Knuth\n"
	want := "Literate Programming as a Discipline of Exposition"
	if got := titleGuess(text); got != want {
		t.Errorf("titleGuess = %q, want %q", got, want)
	}

	if got := titleGuess("short\nlines\nonly"); got != "" {
		t.Errorf("titleGuess on short lines = %q, want empty", got)
	}
}

func TestOpenerResolve(t *testing.T) {
	o := NewOpener("", "system")
	if _, err := o.Resolve("x.pdf"); err == nil {
		t.Error("expected error without pdf_root")
	}

	root := t.TempDir()
	o = NewOpener(root, "system")
	if _, err := o.Resolve(""); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := o.Resolve("missing.pdf"); err == nil {
		t.Error("expected error for missing file")
	}

	full := filepath.Join(root, "Knuth1984.pdf")
	if err := os.WriteFile(full, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := o.Resolve("Knuth1984")
	if err != nil {
		t.Fatalf("key resolution failed: %v", err)
	}
	if got != full {
		t.Errorf("Resolve(key) = %q, want %q", got, full)
	}

	got, err = o.Resolve("Knuth1984.pdf")
	if err != nil {
		t.Fatalf("path resolution failed: %v", err)
	}
	if got != full {
		t.Errorf("Resolve(path) = %q, want %q", got, full)
	}
}
