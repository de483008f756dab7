package words

import "strings"

// maxTitleWords caps the title length the heatmap considers. Titles
// with more tokens are excluded from the whole system, a deliberate
// scope limit rather than a parse failure.
const maxTitleWords = 5

// Vocabulary is the fixed, ordered list of canonical words tracked as
// the heatmap's rows.
type Vocabulary struct {
	ordered []string
	members map[string]struct{}
}

// NewVocabulary builds a Vocabulary from an ordered word list.
func NewVocabulary(list []string) *Vocabulary {
	members := make(map[string]struct{}, len(list))
	for _, w := range list {
		members[w] = struct{}{}
	}
	return &Vocabulary{ordered: list, members: members}
}

// Contains reports whether a canonical word is in the vocabulary.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.members[word]
	return ok
}

// Words returns the vocabulary in its configured order.
func (v *Vocabulary) Words() []string {
	return v.ordered
}

// EnglishTitle returns the segment before the first "//". Titles that
// carry multiple language variants join them with "//", English first.
func EnglishTitle(title string) string {
	if i := strings.Index(title, "//"); i >= 0 {
		return title[:i]
	}
	return title
}

// TokenizeTitle splits the English segment of a title into lowercase
// alphabetic tokens, dropping anything empty after cleaning.
func TokenizeTitle(title string) []string {
	parts := strings.Split(EnglishTitle(title), " ")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		var sb strings.Builder
		for _, r := range strings.ToLower(part) {
			if r >= 'a' && r <= 'z' {
				sb.WriteRune(r)
			}
		}
		if sb.Len() > 0 {
			tokens = append(tokens, sb.String())
		}
	}
	return tokens
}

// ExtractTitleWords returns the deduplicated canonical vocabulary
// words found in a title, in first-seen order. Titles with zero or
// more than five tokens yield nil.
func (v *Vocabulary) ExtractTitleWords(title string) []string {
	tokens := TokenizeTitle(title)
	if len(tokens) == 0 || len(tokens) > maxTitleWords {
		return nil
	}

	var matched []string
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		canonical := Normalize(token)
		if !v.Contains(canonical) {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		matched = append(matched, canonical)
	}
	return matched
}
