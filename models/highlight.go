package models

// HighlightTarget says which canonical words should be emphasised when
// a title is rendered: none, a single word (cell selection), or many
// (category selection, legend scan).
type HighlightTarget struct {
	words []string
}

// NoHighlight is the empty target.
var NoHighlight = HighlightTarget{}

// HighlightWord targets a single canonical word.
func HighlightWord(word string) HighlightTarget {
	return HighlightTarget{words: []string{word}}
}

// HighlightWords targets a set of canonical words.
func HighlightWords(words []string) HighlightTarget {
	return HighlightTarget{words: words}
}

// Words returns the targeted words, nil when nothing is targeted.
func (h HighlightTarget) Words() []string {
	return h.words
}

// IsNone reports whether the target is empty.
func (h HighlightTarget) IsNone() bool {
	return len(h.words) == 0
}
