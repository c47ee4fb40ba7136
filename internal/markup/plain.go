package markup

import "github.com/mhoffert/refstyle/internal/author"

// Plain emits unadorned text. Links are omitted unless the caller asks
// for the spelled-out reference form, which appends the raw URL in
// brackets.
type Plain struct{ base }

func (Plain) Name() string { return "plain" }

func (f Plain) FormatAuthor(n *author.Name, parts ...string) string {
	return formatAuthor(f, n, parts...)
}

func (f Plain) AppendLink(entry string, src LinkSource, full bool) string {
	url := src.LinkURL()
	if url == "" || !full {
		return entry
	}
	return entry + " [" + url + "]"
}

func (f Plain) FormatFinalEntry(entry, id string) string {
	return convertTags(entry, "plain")
}
