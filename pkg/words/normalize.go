// Package words normalizes title tokens to their canonical dictionary
// form and extracts vocabulary words from titles.
package words

import "strings"

// irregulars maps inflected forms to their canonical form. Exact match
// only; applied before the regular plural rule.
var irregulars = map[string]string{
	"men":   "man",
	"women": "woman",
	"lives": "life",
}

// deirregulars is the inverse of irregulars, for display highlighting.
var deirregulars = map[string]string{
	"man":   "men",
	"woman": "women",
	"life":  "lives",
}

// pluralStoplist holds words ending in "s" that must not be singularized.
var pluralStoplist = map[string]struct{}{
	"christmas": {},
	"its":       {},
	"lasts":     {},
	"miss":      {},
}

// Normalize maps a lowercase alphabetic word to its canonical form:
// irregular plurals first, then a trailing-"s" strip for words longer
// than two characters that are not stoplisted.
func Normalize(word string) string {
	if canonical, ok := irregulars[word]; ok {
		return canonical
	}
	if strings.HasSuffix(word, "s") && len(word) > 2 {
		if _, stop := pluralStoplist[word]; !stop {
			return word[:len(word)-1]
		}
	}
	return word
}

// Unnormalize converts a canonical word back to its inflected form.
// Lossy by construction: it exists only so the display layer can find
// the originally typed form inside a title when the canonical form is
// not present verbatim.
func Unnormalize(word string) string {
	if inflected, ok := deirregulars[word]; ok {
		return inflected
	}
	return word + "s"
}

// TitleKey is the deduplication key for a title: trimmed and
// lowercased. Two rows with the same key are the same logical title.
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
