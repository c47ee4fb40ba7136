package author

import "testing"

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Query
	}{
		{
			name:  "single word is last name",
			input: "Yu",
			want:  Query{Last: "Yu"},
		},
		{
			name:  "two words is First Last",
			input: "Timothy Yu",
			want:  Query{First: "Timothy", Last: "Yu"},
		},
		{
			name:  "three words: first two are first name",
			input: "Timothy C Yu",
			want:  Query{First: "Timothy C", Last: "Yu"},
		},
		{
			name:  "comma format: Last, First",
			input: "Yu, Timothy",
			want:  Query{First: "Timothy", Last: "Yu"},
		},
		{
			name:  "empty",
			input: "   ",
			want:  Query{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuery(tt.input)
			if got != tt.want {
				t.Errorf("ParseQuery(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQueryMatches(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		author string
		want   bool
	}{
		{"last name exact", "Yu", "Yu, Timothy", true},
		{"last name case-insensitive", "yu", "Yu, Timothy", true},
		{"last name is not a prefix match", "Yu", "Yujia, Wen", false},
		{"first name prefix", "Tim Yu", "Yu, Timothy C", true},
		{"first name mismatch", "Tom Yu", "Yu, Timothy", false},
		{"von ignored in matching", "Beethoven", "van Beethoven, Ludwig", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ParseQuery(tt.query)
			n := mustParse(t, tt.author)
			if got := q.Matches(n); got != tt.want {
				t.Errorf("ParseQuery(%q).Matches(%q) = %v, want %v", tt.query, tt.author, got, tt.want)
			}
		})
	}
}

func TestQueryMatchesAny(t *testing.T) {
	l := mustParseList(t, "Knuth, Donald and Lamport, Leslie")

	if !ParseQuery("Lamport").MatchesAny(l) {
		t.Error("Lamport should match the list")
	}
	if ParseQuery("Ritchie").MatchesAny(l) {
		t.Error("Ritchie should not match the list")
	}
	if ParseQuery("Knuth").MatchesAny(nil) {
		t.Error("nil list should not match")
	}
}
