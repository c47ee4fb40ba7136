package author

import "testing"

func TestCitationKeyFragment(t *testing.T) {
	special := map[string]struct{}{"Smith": {}}

	tests := []struct {
		name  string
		input string
		addon string
		want  string
	}{
		{"lastname plus year", "Knuth, Donald", "1984", "Knuth1984"},
		{"special surname includes firstname", "Smith, John", "1999", "SmithJohn1999"},
		{"addon truncated at four digits", "Knuth, Donald", "c1984a", "Knuth1984a"},
		{"addon without digits kept whole", "Knuth, Donald", "draft", "Knuthdraft"},
		{"empty addon", "Knuth, Donald", "", "Knuth"},
		{"von excluded from key", "van Beethoven, Ludwig", "1808", "Beethoven1808"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustParse(t, tt.input)
			if got := n.CitationKeyFragment(tt.addon, special); got != tt.want {
				t.Errorf("CitationKeyFragment(%q) = %q, want %q", tt.addon, got, tt.want)
			}
		})
	}
}
