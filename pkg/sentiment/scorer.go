// Package sentiment scores text polarity and tracks the corpus-wide
// score range used to normalize values for display.
package sentiment

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

// Scorer is the pluggable scoring collaborator. Sign and magnitude are
// meaningful only relative to the corpus-wide Range observed while
// scoring.
type Scorer interface {
	Score(text string) float64
}

// LexiconScorer sums signed word valences over a fixed lexicon.
// Words missing from the lexicon are stemmed and retried against a
// stemmed index, so "terrifying" still hits "terrify".
type LexiconScorer struct {
	lexicon map[string]float64
	stemmed map[string]float64
}

// NewLexiconScorer builds the default scorer.
func NewLexiconScorer() *LexiconScorer {
	return newLexiconScorer(defaultLexicon)
}

func newLexiconScorer(lexicon map[string]float64) *LexiconScorer {
	stemmed := make(map[string]float64, len(lexicon))
	for word, valence := range lexicon {
		stem := english.Stem(word, false)
		if _, exists := stemmed[stem]; !exists {
			stemmed[stem] = valence
		}
	}
	return &LexiconScorer{lexicon: lexicon, stemmed: stemmed}
}

// Score sums the valence of every recognized word in the text.
func (s *LexiconScorer) Score(text string) float64 {
	var total float64
	for _, token := range tokenize(text) {
		if valence, ok := s.lexicon[token]; ok {
			total += valence
			continue
		}
		if valence, ok := s.stemmed[english.Stem(token, false)]; ok {
			total += valence
		}
	}
	return total
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.TrimFunc(field, func(r rune) bool {
			return r < 'a' || r > 'z'
		})
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// SplitSentences cuts text into sentence-like segments at terminal
// punctuation (".", "!", "?"), keeping the punctuation, trimming
// whitespace and dropping empty segments.
func SplitSentences(text string) []string {
	var segments []string
	var sb strings.Builder
	flush := func() {
		segment := strings.TrimSpace(sb.String())
		sb.Reset()
		if segment != "" && strings.Trim(segment, ".!?") != "" {
			segments = append(segments, segment)
		}
	}

	for _, r := range text {
		sb.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()
	return segments
}
