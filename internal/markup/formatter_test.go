package markup

import (
	"errors"
	"testing"

	"github.com/mhoffert/refstyle/internal/author"
)

type stubSource struct {
	key string
	url string
}

func (s stubSource) CiteKey() string { return s.key }
func (s stubSource) LinkURL() string { return s.url }

func TestGet(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"PLAIN", "plain"},
		{"html", "html"},
		{"html+css", "html+css"},
		{"html_css", "html+css"},
		{"htmlcss", "html+css"},
		{"latex", "latex"},
		{"markdown", "markdown"},
		{"richtext", "richtext"},
		{"rtf", "richtext"},
	}

	for _, tt := range tests {
		f, err := Get(tt.input)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", tt.input, err)
		}
		if f.Name() != tt.want {
			t.Errorf("Get(%q).Name() = %q, want %q", tt.input, f.Name(), tt.want)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("docx")
	if !errors.Is(err, ErrUnknownFormatter) {
		t.Errorf("Get(docx) error = %v, want ErrUnknownFormatter", err)
	}
}

func TestFormatAuthor(t *testing.T) {
	n, err := author.Parse("Gödel, Kurt")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		format string
		want   string
	}{
		{"plain", "Gödel, K."},
		{"latex", `\textbf{Gödel, K.}`},
		{"markdown", "**Gödel, K.**"},
		{"html+css", `<span class="author kurtgodel">Gödel, K.</span>`},
	}

	for _, tt := range tests {
		f, err := Get(tt.format)
		if err != nil {
			t.Fatal(err)
		}
		got := f.FormatAuthor(n, "lastname", ", ", "firstname_abbr")
		if got != tt.want {
			t.Errorf("%s FormatAuthor = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestAppendLink(t *testing.T) {
	src := stubSource{key: "Knuth1984", url: "https://doi.org/10.1093/comjnl/27.2.97"}

	tests := []struct {
		name   string
		format string
		full   bool
		want   string
	}{
		{"plain full", "plain", true, "entry [https://doi.org/10.1093/comjnl/27.2.97]"},
		{"plain marker omitted", "plain", false, "entry"},
		{"html full", "html", true, `entry <a href="https://doi.org/10.1093/comjnl/27.2.97">https://doi.org/10.1093/comjnl/27.2.97</a>`},
		{"html marker", "html", false, `entry [<a href="https://doi.org/10.1093/comjnl/27.2.97">&gt;</a>]`},
		{"latex cites the key", "latex", true, `entry \cite{Knuth1984}`},
		{"markdown full", "markdown", true, "entry [https://doi.org/10.1093/comjnl/27.2.97](https://doi.org/10.1093/comjnl/27.2.97)"},
		{"markdown marker", "markdown", false, "entry [>](<https://doi.org/10.1093/comjnl/27.2.97>)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Get(tt.format)
			if err != nil {
				t.Fatal(err)
			}
			if got := f.AppendLink("entry", src, tt.full); got != tt.want {
				t.Errorf("AppendLink = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendLinkNoTarget(t *testing.T) {
	empty := stubSource{}
	for _, name := range Names() {
		f, err := Get(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := f.AppendLink("entry", empty, true); got != "entry" {
			t.Errorf("%s AppendLink with no target = %q, want passthrough", name, got)
		}
	}
}

func TestFormatFinalEntry(t *testing.T) {
	tests := []struct {
		name   string
		format string
		entry  string
		id     string
		want   string
	}{
		{"plain strips tags", "plain", "A <i>Journal</i> Title.", "K1", "A Journal Title."},
		{"html keeps tags", "html", "A <i>Journal</i> Title.", "K1", "A <i>Journal</i> Title."},
		{"htmlcss wraps in div", "html+css", "Title.", "K1", `<div id="K1">Title.</div>`},
		{"latex converts and escapes", "latex", "Ions <i>A & B</i>.", "K1", `Ions \textit{A \& B}.`},
		{"latex escapes specials", "latex", "50% & more_of $x #2 ^", "K1", `50\% \& more\_of \$x \#2 \^{}`},
		{"latex leaves cite keys unescaped", "latex", `A_B. \cite{Knuth_1984}`, "K1", `A\_B. \cite{Knuth_1984}`},
		{"markdown converts tags", "markdown", "<i>It</i> <b>Bold</b>", "K1", "*It* **Bold**"},
		{"richtext wraps document", "richtext", "<i>It</i>", "K1", `{\rtf1\ansi {\i It}}`},
		{"latex tags survive into html", "html", `\textit{Nature}`, "K1", "<i>Nature</i>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Get(tt.format)
			if err != nil {
				t.Fatal(err)
			}
			if got := f.FormatFinalEntry(tt.entry, tt.id); got != tt.want {
				t.Errorf("FormatFinalEntry = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatKey(t *testing.T) {
	cssF, _ := Get("html+css")
	if got := cssF.FormatKey("year", "1984"); got != `<span class="year">1984</span>` {
		t.Errorf("html+css FormatKey = %q", got)
	}

	rtfF, _ := Get("richtext")
	if got := rtfF.FormatKey("title", `braces {here}`); got != `braces \{here\}` {
		t.Errorf("richtext FormatKey = %q", got)
	}

	plainF, _ := Get("plain")
	if got := plainF.FormatKey("title", "as-is"); got != "as-is" {
		t.Errorf("plain FormatKey = %q", got)
	}
}
