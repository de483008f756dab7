// Package heatmap groups enriched title records into the
// (runtime bucket, canonical word) cells the heatmap renders, plus the
// category and value-range views derived from them. Everything here is
// a pure function over its inputs; recomputation is the update model.
package heatmap

import (
	"math"
	"sort"

	"titleheat/models"
	"titleheat/pkg/buckets"
	"titleheat/pkg/words"
)

// Movie is the per-title detail kept inside a cell.
type Movie struct {
	Title                string                  `json:"title"`
	Views                int                     `json:"views"`
	Runtime              int                     `json:"runtime"`
	ID                   string                  `json:"id"`
	Poster               string                  `json:"poster,omitempty"`
	Sentences            []models.ScoredSentence `json:"sentences,omitempty"`
	TitleSentiment       float64                 `json:"title_sentiment"`
	DescriptionSentiment float64                 `json:"description_sentiment"`
	OverallSentiment     float64                 `json:"overall_sentiment"`
	SentimentPercent     int                     `json:"sentiment_percent,omitempty"`
	Countries            []string                `json:"countries,omitempty"`
	Language             string                  `json:"language,omitempty"`
	Word                 string                  `json:"word"`
	Categories           []string                `json:"categories,omitempty"`
}

// Cell is the aggregate of all movies sharing one (bucket, word) pair.
// Pairs nobody matched are simply absent; the display layer owns the
// full fixed grid.
type Cell struct {
	Bucket       int     `json:"bucket"`
	Word         string  `json:"word"`
	AverageViews int     `json:"average_views"`
	Movies       []Movie `json:"movies"`
}

type cellKey struct {
	bucket int
	word   string
}

// Aggregate groups records by (runtime bucket, matched word). A record
// matching two words contributes to two word rows at the same bucket;
// within a cell, movies are deduplicated by title key with the highest
// views winning. Records whose bucket falls off the configured axis
// are skipped, so every cell's bucket is drawn from the fixed grid.
// Cells come back sorted by bucket then word.
func Aggregate(records []models.EnrichedRecord, vocab *words.Vocabulary, config *models.Config) []Cell {
	groups := make(map[cellKey][]Movie)
	var order []cellKey

	for _, rec := range records {
		matched := vocab.ExtractTitleWords(rec.Title)
		if len(matched) == 0 {
			continue
		}
		bucket := buckets.Bucket(rec.Runtime)
		if config != nil && !config.Buckets.Contains(bucket) {
			continue
		}
		for _, word := range matched {
			key := cellKey{bucket: bucket, word: word}
			if _, exists := groups[key]; !exists {
				order = append(order, key)
			}
			groups[key] = append(groups[key], movieFor(rec, word, config))
		}
	}

	cells := make([]Cell, 0, len(order))
	for _, key := range order {
		movies := dedupeMovies(groups[key])
		cells = append(cells, Cell{
			Bucket:       key.bucket,
			Word:         key.word,
			AverageViews: averageViews(movies),
			Movies:       movies,
		})
	}

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Bucket != cells[j].Bucket {
			return cells[i].Bucket < cells[j].Bucket
		}
		return cells[i].Word < cells[j].Word
	})
	return cells
}

func movieFor(rec models.EnrichedRecord, word string, config *models.Config) Movie {
	var categories []string
	if config != nil {
		categories = config.CategoriesForWord(word)
	}
	return Movie{
		Title:                rec.Title,
		Views:                rec.Views,
		Runtime:              rec.Runtime,
		ID:                   rec.ExternalID,
		Poster:               rec.Metadata.Poster,
		Sentences:            rec.Metadata.Sentences,
		TitleSentiment:       rec.Metadata.TitleSentiment,
		DescriptionSentiment: rec.Metadata.DescriptionSentiment,
		OverallSentiment:     rec.Metadata.OverallSentiment,
		Countries:            rec.Metadata.Countries,
		Language:             rec.Language,
		Word:                 word,
		Categories:           categories,
	}
}

// dedupeMovies collapses movies sharing a title key. Highest views
// wins, ties keep the first-seen movie, order follows first occurrence.
func dedupeMovies(movies []Movie) []Movie {
	index := make(map[string]int, len(movies))
	deduped := make([]Movie, 0, len(movies))
	for _, m := range movies {
		key := words.TitleKey(m.Title)
		if i, seen := index[key]; seen {
			if m.Views > deduped[i].Views {
				deduped[i] = m
			}
			continue
		}
		index[key] = len(deduped)
		deduped = append(deduped, m)
	}
	return deduped
}

// averageViews is the half-up rounded mean, computed once.
func averageViews(movies []Movie) int {
	if len(movies) == 0 {
		return 0
	}
	var total float64
	for _, m := range movies {
		total += float64(m.Views)
	}
	return int(math.Round(total / float64(len(movies))))
}
