package reference

import (
	"regexp"
	"strings"
	"unicode"
)

// ShortTitleOptions tunes short-title derivation.
type ShortTitleOptions struct {
	// FixedLength forces the word count; 0 selects the dynamic heuristic
	// max(MinWords, min(MaxWords, titleWordCount/2)).
	FixedLength int
	MinWords    int // default 4
	MaxWords    int // default 5
}

var titleSplitRe = regexp.MustCompile(`[:\-]`)

// DeriveShortTitle condenses a title to a short form for repeated and
// footnote citations: the segment before any colon or dash, stopwords
// removed, Titlecase and ALLCAPS words preferred, truncated to the
// configured length, first surviving word capitalized.
func DeriveShortTitle(title string, opts ShortTitleOptions) string {
	if opts.MinWords == 0 {
		opts.MinWords = 4
	}
	if opts.MaxWords == 0 {
		opts.MaxWords = 5
	}

	head := strings.TrimSpace(titleSplitRe.Split(title, 2)[0])
	words := tokenizeWords(head)

	var content []string
	for _, w := range words {
		if !isStopword(w) {
			content = append(content, w)
		}
	}

	important := make([]string, 0, len(content))
	for _, w := range content {
		if isTitleWord(w) || isAllUpper(w) {
			important = append(important, w)
		}
	}
	if len(important) < opts.MinWords {
		important = content
	}

	length := opts.FixedLength
	if length <= 0 {
		length = len(words) / 2
		if length > opts.MaxWords {
			length = opts.MaxWords
		}
		if length < opts.MinWords {
			length = opts.MinWords
		}
	}
	if length > len(important) {
		length = len(important)
	}

	short := important[:length]
	if len(short) > 0 {
		short[0] = capitalize(short[0])
	}
	return strings.Join(short, " ")
}

// tokenizeWords splits on whitespace and keeps only alphanumeric tokens,
// trimming surrounding punctuation.
func tokenizeWords(s string) []string {
	var out []string
	for _, f := range strings.Fields(s) {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w == "" {
			continue
		}
		alnum := true
		for _, r := range w {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				alnum = false
				break
			}
		}
		if alnum {
			out = append(out, w)
		}
	}
	return out
}

func isTitleWord(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
